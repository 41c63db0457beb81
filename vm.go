// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ballotvm implements a ledger-resident voting state machine. An
// authority creates a timed, multi-candidate poll; each wallet can cast at
// most one vote per poll. Exactly-once voting rests on create-if-absent
// account creation at deterministically derived addresses, not on any
// coordinator.
package ballotvm

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/rpc/v2"

	"github.com/luxfi/database"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"github.com/luxfi/utils/json"

	"github.com/luxfi/ballotvm/config"
	"github.com/luxfi/ballotvm/metrics"
	"github.com/luxfi/ballotvm/state"
	"github.com/luxfi/ballotvm/txs"
	"github.com/luxfi/ballotvm/txs/executor"
	"github.com/luxfi/ballotvm/utils/timer/mockable"
)

// Version of the ballot VM
const Version = "1.0.0"

var errVMShutdown = errors.New("vm is shutting down")

// VM implements the ballot virtual machine.
type VM struct {
	config.Config

	log       log.Logger
	db        database.Database
	state     state.State
	programID ids.ID
	metrics   metrics.Metrics

	// clock is the ledger clock injected into vote execution. Tests pin it
	// with Set.
	clock mockable.Clock

	// stateLock serializes transaction application against reads, standing
	// in for the runtime's conflict serialization of overlapping accounts.
	stateLock sync.RWMutex

	rpcServer *rpc.Server

	shuttingDown bool
	shutdownLock sync.RWMutex
}

// Initialize sets up the VM on top of [db]. The program ID comes from the
// genesis blob when present and falls back to [chainID].
func (vm *VM) Initialize(
	_ context.Context,
	chainID ids.ID,
	db database.Database,
	genesisBytes []byte,
	registerer metric.Registerer,
) error {
	vm.log.Info("initializing ballot vm",
		log.String("version", Version),
		log.Stringer("chainID", chainID),
	)

	genesis, err := ParseGenesis(genesisBytes)
	if err != nil {
		return err
	}
	vm.programID = genesis.ProgramID
	if vm.programID == ids.Empty {
		vm.programID = chainID
	}

	vm.db = db
	vm.state = state.New(db)

	if vm.MetricsEnabled && registerer != nil {
		vm.metrics, err = metrics.New(registerer)
		if err != nil {
			return err
		}
	}

	return vm.initRPC()
}

func (vm *VM) initRPC() error {
	vm.rpcServer = rpc.NewServer()

	service := &Service{vm: vm}
	vm.rpcServer.RegisterCodec(json.NewCodec(), "application/json")
	vm.rpcServer.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	return vm.rpcServer.RegisterService(service, "ballot")
}

// CreateHandlers returns HTTP handlers for the VM.
func (vm *VM) CreateHandlers(context.Context) (map[string]http.Handler, error) {
	if !vm.APIEnabled {
		return nil, nil
	}
	return map[string]http.Handler{
		"/rpc": vm.rpcServer,
	}, nil
}

// HealthCheck reports whether the VM is serving.
func (vm *VM) HealthCheck(context.Context) (interface{}, error) {
	vm.shutdownLock.RLock()
	defer vm.shutdownLock.RUnlock()

	if vm.shuttingDown {
		return nil, errVMShutdown
	}
	return map[string]interface{}{
		"programID": vm.programID.String(),
		"version":   Version,
	}, nil
}

// Version returns the VM version.
func (vm *VM) Version(context.Context) (string, error) {
	return Version, nil
}

// Shutdown cleanly stops the VM.
func (vm *VM) Shutdown(context.Context) error {
	vm.shutdownLock.Lock()
	vm.shuttingDown = true
	vm.shutdownLock.Unlock()

	if vm.state == nil {
		return nil
	}
	return vm.state.Close()
}

// issueTx executes [tx] and commits its state changes. On any error the
// buffered changes are discarded, so the transaction has no effect. For a
// CreatePollTx the returned ID is the derived poll address.
func (vm *VM) issueTx(tx *txs.Tx) (ids.ID, error) {
	vm.shutdownLock.RLock()
	defer vm.shutdownLock.RUnlock()
	if vm.shuttingDown {
		return ids.Empty, errVMShutdown
	}

	vm.stateLock.Lock()
	defer vm.stateLock.Unlock()

	ex := &executor.Executor{
		ProgramID: vm.programID,
		State:     vm.state,
		Clock:     &vm.clock,
		Log:       vm.log,
		Tx:        tx,
	}
	if err := tx.Unsigned.Visit(ex); err != nil {
		vm.state.Abort()
		vm.markRejected(tx)
		return ids.Empty, err
	}
	if err := vm.state.Commit(); err != nil {
		vm.state.Abort()
		return ids.Empty, err
	}

	vm.markAccepted(tx)
	return ex.PollAddress, nil
}

func (vm *VM) markAccepted(tx *txs.Tx) {
	if vm.metrics == nil {
		return
	}
	if err := vm.metrics.MarkAccepted(tx); err != nil {
		vm.log.Warn("failed to mark tx accepted", log.Err(err))
	}
}

func (vm *VM) markRejected(tx *txs.Tx) {
	if vm.metrics == nil {
		return
	}
	if err := vm.metrics.MarkRejected(tx); err != nil {
		vm.log.Warn("failed to mark tx rejected", log.Err(err))
	}
}
