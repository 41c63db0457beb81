// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"
)

const (
	// MaxTitleLen is the maximum byte length of a poll title.
	MaxTitleLen = 64

	// MinCandidates and MaxCandidates bound the candidate list length.
	MinCandidates = 2
	MaxCandidates = 8

	// MaxCandidateNameLen is the maximum byte length of a candidate name.
	MaxCandidateNameLen = 32
)

var _ UnsignedTx = (*CreatePollTx)(nil)

// CreatePollTx creates a new poll owned by the program at the address derived
// from (authority, title).
type CreatePollTx struct {
	// Authority is the wallet permitted to create this poll. It must match
	// the transaction signer.
	Authority ids.ShortID `serialize:"true" json:"authority"`
	// Title of the poll. A given authority can create at most one poll per
	// title.
	Title string `serialize:"true" json:"title"`
	// Candidates that can be voted for, in tally order.
	Candidates []string `serialize:"true" json:"candidates"`
	// StartTime and EndTime bound the voting window, as Unix seconds.
	StartTime int64 `serialize:"true" json:"startTime"`
	EndTime   int64 `serialize:"true" json:"endTime"`
}

func (tx *CreatePollTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case len(tx.Title) == 0, len(tx.Title) > MaxTitleLen:
		return ErrTitleTooLong
	case len(tx.Candidates) < MinCandidates, len(tx.Candidates) > MaxCandidates:
		return ErrInvalidCandidateCount
	}

	for _, name := range tx.Candidates {
		if len(name) == 0 || len(name) > MaxCandidateNameLen {
			return ErrCandidateNameTooLong
		}
	}

	if tx.StartTime >= tx.EndTime {
		return ErrInvalidSchedule
	}
	return nil
}

func (tx *CreatePollTx) Visit(visitor Visitor) error {
	return visitor.CreatePollTx(tx)
}
