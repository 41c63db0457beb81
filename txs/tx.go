// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"
)

// Tx is a signed ballot transaction.
//
// Signature verification happens in the ledger runtime before a transaction
// reaches the state machine, so Signer carries the already-authenticated
// wallet address rather than a signature.
type Tx struct {
	Unsigned UnsignedTx  `serialize:"true" json:"unsigned"`
	Signer   ids.ShortID `serialize:"true" json:"signer"`
}

func (tx *Tx) SyntacticVerify() error {
	if tx == nil || tx.Unsigned == nil {
		return ErrNilTx
	}
	return tx.Unsigned.SyntacticVerify()
}

// Bytes returns the canonical serialization of this transaction.
func (tx *Tx) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, tx)
}

// Parse deserializes a transaction produced by Bytes.
func Parse(bytes []byte) (*Tx, error) {
	tx := &Tx{}
	if _, err := Codec.Unmarshal(bytes, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
