// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package account implements deterministic derivation of program-owned
// account addresses from a tag and a list of seeds.
package account

import (
	"encoding/binary"
	"errors"

	"github.com/luxfi/ids"

	"github.com/luxfi/ballotvm/utils/hashing"
)

const (
	// PollTag namespaces poll account addresses.
	PollTag = "poll"

	// VoterTag namespaces voter marker account addresses.
	VoterTag = "voter"
)

// ErrDerivationExhausted is returned when no bump in [0, 255] yields an
// address the ledger accepts. With a 256-bit hash this should never be
// observed in practice.
var ErrDerivationExhausted = errors.New("account address derivation exhausted")

// Derive returns the address and bump for the account owned by [programID]
// that is uniquely identified by [tag] and [seeds].
//
// Bumps are tried from 255 downward and the first acceptable address wins, so
// the result is a pure function of the inputs. The ledger reserves the zero
// address; a candidate that hashes to it is skipped.
func Derive(programID ids.ID, tag string, seeds ...[]byte) (ids.ID, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		addr := deriveWithBump(programID, tag, seeds, uint8(bump))
		if addr != ids.Empty {
			return addr, uint8(bump), nil
		}
	}
	return ids.Empty, 0, ErrDerivationExhausted
}

// deriveWithBump hashes the derivation preimage for a single bump. Seeds are
// length-prefixed so that distinct seed lists can never collide on the same
// preimage.
func deriveWithBump(programID ids.ID, tag string, seeds [][]byte, bump uint8) ids.ID {
	size := ids.IDLen + 1 + len(tag) + 1
	for _, seed := range seeds {
		size += 2 + len(seed)
	}

	preimage := make([]byte, 0, size)
	preimage = append(preimage, programID[:]...)
	preimage = append(preimage, byte(len(tag)))
	preimage = append(preimage, tag...)
	for _, seed := range seeds {
		preimage = binary.BigEndian.AppendUint16(preimage, uint16(len(seed)))
		preimage = append(preimage, seed...)
	}
	preimage = append(preimage, bump)

	return ids.ID(hashing.ComputeHash256Array(preimage))
}

// PollAddress returns the derived address of the poll created by [authority]
// with [title].
func PollAddress(programID ids.ID, authority ids.ShortID, title string) (ids.ID, uint8, error) {
	return Derive(programID, PollTag, authority.Bytes(), []byte(title))
}

// VoterAddress returns the derived address of the voter marker for [wallet]
// in the poll at [poll].
func VoterAddress(programID ids.ID, poll ids.ID, wallet ids.ShortID) (ids.ID, uint8, error) {
	return Derive(programID, VoterTag, poll[:], wallet.Bytes())
}
