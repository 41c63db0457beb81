// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package run

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/luxfi/database"
	"github.com/luxfi/database/badgerdb"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"

	"github.com/luxfi/ballotvm"
	"github.com/luxfi/ballotvm/config"
	"github.com/luxfi/ballotvm/utils/hashing"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Runs a standalone ballot VM over HTTP",
		RunE:  runFunc,
	}
	AddFlags(c.Flags())
	return c
}

func runFunc(c *cobra.Command, _ []string) error {
	flags, err := getFlags(c.Flags())
	if err != nil {
		return err
	}

	logger := log.NewLogger("ballotvm")

	var db database.Database
	if flags.DBDir == "" {
		db = memdb.New()
	} else {
		db, err = badgerdb.New(flags.DBDir, nil, "", nil)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
	}

	chainID := ids.ID(hashing.ComputeHash256Array([]byte(flags.ChainIDSeed)))

	factory := &ballotvm.Factory{
		Config: config.DefaultConfig(),
	}
	vm := factory.New(logger)

	ctx := c.Context()
	if err := vm.Initialize(ctx, chainID, db, nil, metric.NewRegistry()); err != nil {
		return fmt.Errorf("failed to initialize vm: %w", err)
	}
	defer func() {
		_ = vm.Shutdown(ctx)
	}()

	handlers, err := vm.CreateHandlers(ctx)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.Handle(path, handler)
	}

	logger.Info("serving ballot API",
		log.String("addr", flags.HTTPAddr),
		log.Stringer("chainID", chainID),
	)
	return http.ListenAndServe(flags.HTTPAddr, mux)
}
