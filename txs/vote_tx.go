// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/luxfi/ids"
)

var (
	_ UnsignedTx = (*VoteTx)(nil)

	errEmptyPollAddress = errors.New("empty poll address")
)

// VoteTx casts the signer's single vote for a candidate in a poll. The voting
// wallet is the transaction signer.
type VoteTx struct {
	// Poll is the derived address of the poll being voted on.
	Poll ids.ID `serialize:"true" json:"poll"`
	// CandidateIndex selects the candidate, zero based.
	CandidateIndex uint8 `serialize:"true" json:"candidateIndex"`
}

func (tx *VoteTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Poll == ids.Empty:
		return errEmptyPollAddress
	}
	return nil
}

func (tx *VoteTx) Visit(visitor Visitor) error {
	return visitor.VoteTx(tx)
}
