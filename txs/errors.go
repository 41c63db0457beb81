// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "errors"

// Every failed precondition aborts the whole transaction with no side
// effects; none of these errors is retryable with the same inputs, except
// ErrPollAlreadyExists which a client can avoid by choosing a new title.
var (
	ErrNilTx = errors.New("nil tx")

	// Create-poll preconditions.
	ErrTitleTooLong          = errors.New("poll title must be 1 to 64 bytes")
	ErrInvalidCandidateCount = errors.New("poll must have 2 to 8 candidates")
	ErrCandidateNameTooLong  = errors.New("candidate name must be 1 to 32 bytes")
	ErrInvalidSchedule       = errors.New("poll start must precede poll end")
	ErrUnauthorized          = errors.New("signer does not match poll authority")
	ErrPollAlreadyExists     = errors.New("poll already exists for this authority and title")

	// Vote preconditions.
	ErrInvalidCandidate = errors.New("candidate index out of range")
	ErrTooEarly         = errors.New("voting has not started")
	ErrPollClosed       = errors.New("voting is closed")
	ErrAlreadyVoted     = errors.New("wallet already voted in this poll")
	ErrVoteOverflow     = errors.New("vote counter overflow")
)
