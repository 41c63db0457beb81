// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state is the account store of the ballot ledger. Accounts are keyed
// by their derived addresses; create-if-absent on that key space is what
// makes poll creation and vote marking atomic.
package state

import (
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"

	"github.com/luxfi/ballotvm/txs"
)

var (
	_ State = (*state)(nil)

	pollPrefix  = []byte("poll")
	voterPrefix = []byte("voter")
)

// State buffers account writes from a single transaction on top of the base
// database. Commit publishes the buffered writes; Abort discards them. A
// transaction that fails any precondition therefore has no observable effect.
type State interface {
	// GetPoll returns the poll at [addr], or database.ErrNotFound.
	GetPoll(addr ids.ID) (*Poll, error)

	// AddPoll creates the poll account at [addr]. It fails with
	// txs.ErrPollAlreadyExists if an account already occupies the address.
	AddPoll(addr ids.ID, poll *Poll) error

	// SetPoll overwrites the poll account at [addr].
	SetPoll(addr ids.ID, poll *Poll) error

	// GetVoterMarker returns the marker at [addr], or database.ErrNotFound.
	GetVoterMarker(addr ids.ID) (*VoterMarker, error)

	// HasVoterMarker reports whether a marker account exists at [addr].
	HasVoterMarker(addr ids.ID) (bool, error)

	// AddVoterMarker creates the marker account at [addr]. It fails with
	// txs.ErrAlreadyVoted if an account already occupies the address.
	AddVoterMarker(addr ids.ID, marker *VoterMarker) error

	// Commit atomically writes all buffered changes to the base database.
	Commit() error

	// Abort discards all buffered changes.
	Abort()

	// Close releases the underlying database handles.
	Close() error
}

type state struct {
	vdb     *versiondb.Database
	pollDB  database.Database
	voterDB database.Database
}

func New(db database.Database) State {
	vdb := versiondb.New(db)
	return &state{
		vdb:     vdb,
		pollDB:  prefixdb.New(pollPrefix, vdb),
		voterDB: prefixdb.New(voterPrefix, vdb),
	}
}

func (s *state) GetPoll(addr ids.ID) (*Poll, error) {
	bytes, err := s.pollDB.Get(addr[:])
	if err != nil {
		return nil, err
	}

	poll := &Poll{}
	if _, err := Codec.Unmarshal(bytes, poll); err != nil {
		return nil, fmt.Errorf("failed to parse poll account: %w", err)
	}
	return poll, nil
}

func (s *state) AddPoll(addr ids.ID, poll *Poll) error {
	has, err := s.pollDB.Has(addr[:])
	if err != nil {
		return err
	}
	if has {
		return txs.ErrPollAlreadyExists
	}
	return s.SetPoll(addr, poll)
}

func (s *state) SetPoll(addr ids.ID, poll *Poll) error {
	bytes, err := Codec.Marshal(CodecVersion, poll)
	if err != nil {
		return fmt.Errorf("failed to serialize poll account: %w", err)
	}
	return s.pollDB.Put(addr[:], bytes)
}

func (s *state) GetVoterMarker(addr ids.ID) (*VoterMarker, error) {
	bytes, err := s.voterDB.Get(addr[:])
	if err != nil {
		return nil, err
	}

	marker := &VoterMarker{}
	if _, err := Codec.Unmarshal(bytes, marker); err != nil {
		return nil, fmt.Errorf("failed to parse voter marker account: %w", err)
	}
	return marker, nil
}

func (s *state) HasVoterMarker(addr ids.ID) (bool, error) {
	return s.voterDB.Has(addr[:])
}

func (s *state) AddVoterMarker(addr ids.ID, marker *VoterMarker) error {
	has, err := s.voterDB.Has(addr[:])
	if err != nil {
		return err
	}
	if has {
		return txs.ErrAlreadyVoted
	}

	bytes, err := Codec.Marshal(CodecVersion, marker)
	if err != nil {
		return fmt.Errorf("failed to serialize voter marker account: %w", err)
	}
	return s.voterDB.Put(addr[:], bytes)
}

func (s *state) Commit() error {
	return s.vdb.Commit()
}

func (s *state) Abort() {
	s.vdb.Abort()
}

func (s *state) Close() error {
	return s.vdb.Close()
}
