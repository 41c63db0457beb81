// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package executor applies ballot transactions to the account state. Each
// transaction executes to completion against a state buffer; the vm commits
// the buffer only if execution succeeds, so a failed precondition leaves no
// trace.
package executor

import (
	"errors"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/ballotvm/account"
	"github.com/luxfi/ballotvm/state"
	"github.com/luxfi/ballotvm/txs"
	"github.com/luxfi/ballotvm/utils/math"
	"github.com/luxfi/ballotvm/utils/timer/mockable"
)

var _ txs.Visitor = (*Executor)(nil)

// Executor executes a single transaction. It is not safe for concurrent use;
// the vm serializes transaction application.
type Executor struct {
	// ProgramID scopes all derived account addresses.
	ProgramID ids.ID
	State     state.State
	// Clock is the ledger's notion of current time. It is trusted as-is.
	Clock *mockable.Clock
	Log   log.Logger

	// Tx is the transaction being executed. Tx.Signer is the
	// runtime-authenticated wallet.
	Tx *txs.Tx

	// PollAddress is set to the derived poll address after a successful
	// CreatePollTx.
	PollAddress ids.ID
}

func (e *Executor) CreatePollTx(tx *txs.CreatePollTx) error {
	if err := tx.SyntacticVerify(); err != nil {
		return err
	}
	if e.Tx.Signer != tx.Authority {
		return txs.ErrUnauthorized
	}

	addr, bump, err := account.PollAddress(e.ProgramID, tx.Authority, tx.Title)
	if err != nil {
		return err
	}

	poll := &state.Poll{
		Authority:  tx.Authority,
		Title:      tx.Title,
		Candidates: tx.Candidates,
		Votes:      make([]uint64, len(tx.Candidates)),
		StartTime:  tx.StartTime,
		EndTime:    tx.EndTime,
		Bump:       bump,
	}
	if err := e.State.AddPoll(addr, poll); err != nil {
		return err
	}

	e.PollAddress = addr
	e.Log.Debug("created poll",
		log.Stringer("pollAddress", addr),
		log.Stringer("authority", tx.Authority),
		log.Int("numCandidates", len(tx.Candidates)),
	)
	return nil
}

func (e *Executor) VoteTx(tx *txs.VoteTx) error {
	if err := tx.SyntacticVerify(); err != nil {
		return err
	}

	poll, err := e.State.GetPoll(tx.Poll)
	if err != nil {
		return err
	}

	idx := int(tx.CandidateIndex)
	if idx >= len(poll.Candidates) {
		return txs.ErrInvalidCandidate
	}

	now := e.Clock.Unix()
	switch poll.Status(now) {
	case state.Unscheduled:
		return txs.ErrTooEarly
	case state.Closed:
		return txs.ErrPollClosed
	}

	markerAddr, bump, err := account.VoterAddress(e.ProgramID, tx.Poll, e.Tx.Signer)
	if err != nil {
		return err
	}
	marker := &state.VoterMarker{
		Poll:   tx.Poll,
		Wallet: e.Tx.Signer,
		Bump:   bump,
	}
	if err := e.State.AddVoterMarker(markerAddr, marker); err != nil {
		return err
	}

	tally, err := math.Add(poll.Votes[idx], 1)
	if err != nil {
		if errors.Is(err, math.ErrOverflow) {
			return txs.ErrVoteOverflow
		}
		return err
	}
	poll.Votes[idx] = tally
	if err := e.State.SetPoll(tx.Poll, poll); err != nil {
		return err
	}

	e.Log.Debug("cast vote",
		log.Stringer("pollAddress", tx.Poll),
		log.Stringer("wallet", e.Tx.Signer),
		log.Int("candidateIndex", idx),
	)
	return nil
}
