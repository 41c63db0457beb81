// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing provides the hash primitives used for account address
// derivation.
package hashing

import "crypto/sha256"

// HashLen is the number of bytes in a SHA-256 hash.
const HashLen = sha256.Size

// ComputeHash256Array computes the SHA-256 hash of [buf] and returns it as an
// array.
func ComputeHash256Array(buf []byte) [HashLen]byte {
	return sha256.Sum256(buf)
}

// ComputeHash256 computes the SHA-256 hash of [buf].
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}
