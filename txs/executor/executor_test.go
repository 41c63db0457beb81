// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/database"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/ballotvm/account"
	"github.com/luxfi/ballotvm/state"
	"github.com/luxfi/ballotvm/txs"
	"github.com/luxfi/ballotvm/utils/math"
	"github.com/luxfi/ballotvm/utils/timer/mockable"
)

const (
	testStart int64 = 1_700_000_000
	testEnd   int64 = testStart + 60
)

type testEnv struct {
	programID ids.ID
	state     state.State
	clock     *mockable.Clock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		programID: ids.GenerateTestID(),
		state:     state.New(memdb.New()),
		clock:     &mockable.Clock{},
	}
	env.clock.Set(time.Unix(testStart, 0))
	t.Cleanup(func() {
		require.NoError(t, env.state.Close())
	})
	return env
}

func (env *testEnv) execute(t *testing.T, unsigned txs.UnsignedTx, signer ids.ShortID) (ids.ID, error) {
	t.Helper()

	ex := &Executor{
		ProgramID: env.programID,
		State:     env.state,
		Clock:     env.clock,
		Log:       log.NoLog{},
		Tx: &txs.Tx{
			Unsigned: unsigned,
			Signer:   signer,
		},
	}
	if err := unsigned.Visit(ex); err != nil {
		env.state.Abort()
		return ids.Empty, err
	}
	if err := env.state.Commit(); err != nil {
		env.state.Abort()
		return ids.Empty, err
	}
	return ex.PollAddress, nil
}

func newCreatePollTx() *txs.CreatePollTx {
	return &txs.CreatePollTx{
		Authority:  ids.GenerateTestShortID(),
		Title:      "best dog name",
		Candidates: []string{"Ana", "Marko"},
		StartTime:  testStart,
		EndTime:    testEnd,
	}
}

func (env *testEnv) createPoll(t *testing.T, tx *txs.CreatePollTx) ids.ID {
	t.Helper()

	addr, err := env.execute(t, tx, tx.Authority)
	require.NoError(t, err)
	return addr
}

func TestCreatePollInitializesTallies(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	tx := newCreatePollTx()
	tx.Candidates = []string{"Ana", "Marko", "Iva"}
	addr := env.createPoll(t, tx)

	poll, err := env.state.GetPoll(addr)
	require.NoError(err)
	require.Equal(tx.Authority, poll.Authority)
	require.Equal(tx.Title, poll.Title)
	require.Equal(tx.Candidates, poll.Candidates)
	require.Len(poll.Votes, len(tx.Candidates))
	for _, v := range poll.Votes {
		require.Zero(v)
	}
	require.Equal(tx.StartTime, poll.StartTime)
	require.Equal(tx.EndTime, poll.EndTime)
}

func TestCreatePollUnauthorized(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	tx := newCreatePollTx()
	_, err := env.execute(t, tx, ids.GenerateTestShortID())
	require.ErrorIs(err, txs.ErrUnauthorized)

	// Nothing may have been written.
	addr, _, err := account.PollAddress(env.programID, tx.Authority, tx.Title)
	require.NoError(err)
	_, err = env.state.GetPoll(addr)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestCreatePollDuplicate(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	tx := newCreatePollTx()
	env.createPoll(t, tx)

	_, err := env.execute(t, tx, tx.Authority)
	require.ErrorIs(err, txs.ErrPollAlreadyExists)
}

func TestCreatePollSameTitleDifferentAuthorities(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	txA := newCreatePollTx()
	txB := newCreatePollTx()
	txB.Title = txA.Title

	addrA := env.createPoll(t, txA)
	addrB := env.createPoll(t, txB)
	require.NotEqual(addrA, addrB)
}

func TestVoteIncrementsOnlyTarget(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	tx := newCreatePollTx()
	tx.Candidates = []string{"Ana", "Marko", "Iva"}
	addr := env.createPoll(t, tx)

	_, err := env.execute(t, &txs.VoteTx{Poll: addr, CandidateIndex: 1}, ids.GenerateTestShortID())
	require.NoError(err)

	poll, err := env.state.GetPoll(addr)
	require.NoError(err)
	require.Equal([]uint64{0, 1, 0}, poll.Votes)
}

func TestVoteSchedule(t *testing.T) {
	tests := []struct {
		name string
		now  int64
		err  error
	}{
		{
			name: "before start",
			now:  testStart - 1,
			err:  txs.ErrTooEarly,
		},
		{
			name: "exactly at start",
			now:  testStart,
		},
		{
			name: "mid window",
			now:  testStart + 30,
		},
		{
			name: "exactly at end",
			now:  testEnd,
		},
		{
			name: "after end",
			now:  testEnd + 1,
			err:  txs.ErrPollClosed,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			env := newTestEnv(t)
			addr := env.createPoll(t, newCreatePollTx())

			env.clock.Set(time.Unix(test.now, 0))
			_, err := env.execute(t, &txs.VoteTx{Poll: addr}, ids.GenerateTestShortID())
			require.ErrorIs(err, test.err)
		})
	}
}

func TestVoteInvalidCandidate(t *testing.T) {
	tests := []struct {
		name  string
		index uint8
		err   error
	}{
		{
			name:  "last valid index",
			index: 1,
		},
		{
			name:  "index equal to count",
			index: 2,
			err:   txs.ErrInvalidCandidate,
		},
		{
			name:  "index past count",
			index: 5,
			err:   txs.ErrInvalidCandidate,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			env := newTestEnv(t)
			addr := env.createPoll(t, newCreatePollTx())

			_, err := env.execute(t, &txs.VoteTx{Poll: addr, CandidateIndex: test.index}, ids.GenerateTestShortID())
			require.ErrorIs(err, test.err)
		})
	}
}

func TestVoteExactlyOncePerWallet(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	addr := env.createPoll(t, newCreatePollTx())

	wallet := ids.GenerateTestShortID()
	_, err := env.execute(t, &txs.VoteTx{Poll: addr, CandidateIndex: 0}, wallet)
	require.NoError(err)

	markerAddr, _, err := account.VoterAddress(env.programID, addr, wallet)
	require.NoError(err)
	marker, err := env.state.GetVoterMarker(markerAddr)
	require.NoError(err)
	require.Equal(addr, marker.Poll)
	require.Equal(wallet, marker.Wallet)

	// A second vote fails no matter which candidate it targets.
	_, err = env.execute(t, &txs.VoteTx{Poll: addr, CandidateIndex: 1}, wallet)
	require.ErrorIs(err, txs.ErrAlreadyVoted)

	poll, err := env.state.GetPoll(addr)
	require.NoError(err)
	require.Equal([]uint64{1, 0}, poll.Votes)

	// After the window closes the schedule check fires first, but the vote
	// still fails and the tally still reads one.
	env.clock.Set(time.Unix(testEnd+1, 0))
	_, err = env.execute(t, &txs.VoteTx{Poll: addr, CandidateIndex: 0}, wallet)
	require.ErrorIs(err, txs.ErrPollClosed)

	poll, err = env.state.GetPoll(addr)
	require.NoError(err)
	require.Equal([]uint64{1, 0}, poll.Votes)
}

func TestVoteUnknownPoll(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	_, err := env.execute(t, &txs.VoteTx{Poll: ids.GenerateTestID()}, ids.GenerateTestShortID())
	require.ErrorIs(err, database.ErrNotFound)
}

func TestVoteOverflowAbortsWholeTransaction(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	addr := env.createPoll(t, newCreatePollTx())

	poll, err := env.state.GetPoll(addr)
	require.NoError(err)
	poll.Votes[0] = math.MaxUint[uint64]()
	require.NoError(env.state.SetPoll(addr, poll))
	require.NoError(env.state.Commit())

	wallet := ids.GenerateTestShortID()
	_, err = env.execute(t, &txs.VoteTx{Poll: addr, CandidateIndex: 0}, wallet)
	require.ErrorIs(err, txs.ErrVoteOverflow)

	// The overflow aborts the marker creation too, so the wallet has not
	// burned its vote.
	markerAddr, _, err := account.VoterAddress(env.programID, addr, wallet)
	require.NoError(err)
	voted, err := env.state.HasVoterMarker(markerAddr)
	require.NoError(err)
	require.False(voted)
}
