// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// UnsignedTx is an unsigned ballot transaction.
type UnsignedTx interface {
	// SyntacticVerify performs the stateless checks on this transaction.
	SyntacticVerify() error

	Visit(visitor Visitor) error
}
