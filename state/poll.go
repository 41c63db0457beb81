// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/ids"
)

// Status is the lifecycle phase of a poll relative to the ledger clock.
type Status uint8

const (
	// Unscheduled means the voting window has not opened yet.
	Unscheduled Status = iota

	// Open means votes are being accepted.
	Open

	// Closed means the voting window has passed. Closed is permanent; the
	// poll stays readable forever but can never be mutated again.
	Closed
)

func (s Status) String() string {
	switch s {
	case Unscheduled:
		return "Unscheduled"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Poll is the on-ledger record of a poll. It is created exactly once and
// mutated only by vote transactions, each of which increments exactly one
// counter in Votes.
type Poll struct {
	// Authority is the wallet that created this poll.
	Authority ids.ShortID `serialize:"true" json:"authority"`
	Title     string      `serialize:"true" json:"title"`
	// Candidates and Votes are index aligned.
	Candidates []string `serialize:"true" json:"candidates"`
	Votes      []uint64 `serialize:"true" json:"votes"`
	// StartTime and EndTime are Unix seconds. The window is inclusive on
	// both ends.
	StartTime int64 `serialize:"true" json:"startTime"`
	EndTime   int64 `serialize:"true" json:"endTime"`
	// Bump is the derivation nonce of this poll's address.
	Bump uint8 `serialize:"true" json:"bump"`
}

// Status returns the poll's phase at time [now], in Unix seconds.
func (p *Poll) Status(now int64) Status {
	switch {
	case now < p.StartTime:
		return Unscheduled
	case now > p.EndTime:
		return Closed
	default:
		return Open
	}
}

// VoterMarker records that a wallet has voted in a poll. Its existence at the
// derived (poll, wallet) address is the double-vote guard; the payload only
// mirrors the derivation inputs.
type VoterMarker struct {
	Poll   ids.ID      `serialize:"true" json:"poll"`
	Wallet ids.ShortID `serialize:"true" json:"wallet"`
	// Bump is the derivation nonce of this marker's address.
	Bump uint8 `serialize:"true" json:"bump"`
}
