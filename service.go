// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballotvm

import (
	"net/http"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/ballotvm/account"
	"github.com/luxfi/ballotvm/txs"
	"github.com/luxfi/ballotvm/utils/json"
)

// Service is the JSON-RPC API over the ballot VM.
//
// The Signer argument on the write calls is the wallet the ledger runtime
// authenticated for the transaction. This server trusts its caller to have
// done that verification; it is the runtime boundary, not an auth layer.
type Service struct {
	vm *VM
}

type CreatePollArgs struct {
	Authority  ids.ShortID `json:"authority"`
	Title      string      `json:"title"`
	Candidates []string    `json:"candidates"`
	StartTime  int64       `json:"startTime"`
	EndTime    int64       `json:"endTime"`
	Signer     ids.ShortID `json:"signer"`
}

type CreatePollReply struct {
	// Poll is the derived address of the new poll account.
	Poll ids.ID `json:"poll"`
}

// CreatePoll issues a poll creation transaction.
func (s *Service) CreatePoll(_ *http.Request, args *CreatePollArgs, reply *CreatePollReply) error {
	s.vm.log.Debug("API called",
		log.String("service", "ballot"),
		log.String("method", "createPoll"),
	)

	tx := &txs.Tx{
		Unsigned: &txs.CreatePollTx{
			Authority:  args.Authority,
			Title:      args.Title,
			Candidates: args.Candidates,
			StartTime:  args.StartTime,
			EndTime:    args.EndTime,
		},
		Signer: args.Signer,
	}

	addr, err := s.vm.issueTx(tx)
	if err != nil {
		return err
	}
	reply.Poll = addr
	return nil
}

type VoteArgs struct {
	Poll           ids.ID      `json:"poll"`
	CandidateIndex json.Uint8  `json:"candidateIndex"`
	Signer         ids.ShortID `json:"signer"`
}

type VoteReply struct {
	Accepted bool `json:"accepted"`
}

// Vote issues a vote transaction for the signer's wallet.
func (s *Service) Vote(_ *http.Request, args *VoteArgs, reply *VoteReply) error {
	s.vm.log.Debug("API called",
		log.String("service", "ballot"),
		log.String("method", "vote"),
	)

	tx := &txs.Tx{
		Unsigned: &txs.VoteTx{
			Poll:           args.Poll,
			CandidateIndex: uint8(args.CandidateIndex),
		},
		Signer: args.Signer,
	}

	if _, err := s.vm.issueTx(tx); err != nil {
		return err
	}
	reply.Accepted = true
	return nil
}

type DerivePollAddressArgs struct {
	Authority ids.ShortID `json:"authority"`
	Title     string      `json:"title"`
}

type DerivePollAddressReply struct {
	Poll ids.ID     `json:"poll"`
	Bump json.Uint8 `json:"bump"`
}

// DerivePollAddress computes the address a poll would occupy without touching
// state. Clients use it to address polls before they exist.
func (s *Service) DerivePollAddress(_ *http.Request, args *DerivePollAddressArgs, reply *DerivePollAddressReply) error {
	addr, bump, err := account.PollAddress(s.vm.programID, args.Authority, args.Title)
	if err != nil {
		return err
	}
	reply.Poll = addr
	reply.Bump = json.Uint8(bump)
	return nil
}

type GetPollArgs struct {
	Poll ids.ID `json:"poll"`
}

type GetPollReply struct {
	Authority  ids.ShortID   `json:"authority"`
	Title      string        `json:"title"`
	Candidates []string      `json:"candidates"`
	Votes      []json.Uint64 `json:"votes"`
	StartTime  int64         `json:"startTime"`
	EndTime    int64         `json:"endTime"`
	Status     string        `json:"status"`
}

// GetPoll returns the full contents of a poll account. Tallies are public;
// no authorization applies.
func (s *Service) GetPoll(_ *http.Request, args *GetPollArgs, reply *GetPollReply) error {
	s.vm.stateLock.RLock()
	defer s.vm.stateLock.RUnlock()

	poll, err := s.vm.state.GetPoll(args.Poll)
	if err != nil {
		return err
	}

	reply.Authority = poll.Authority
	reply.Title = poll.Title
	reply.Candidates = poll.Candidates
	reply.Votes = make([]json.Uint64, len(poll.Votes))
	for i, v := range poll.Votes {
		reply.Votes[i] = json.Uint64(v)
	}
	reply.StartTime = poll.StartTime
	reply.EndTime = poll.EndTime
	reply.Status = poll.Status(s.vm.clock.Unix()).String()
	return nil
}

type HasVotedArgs struct {
	Poll   ids.ID      `json:"poll"`
	Wallet ids.ShortID `json:"wallet"`
}

type HasVotedReply struct {
	Voted bool `json:"voted"`
}

// HasVoted reports whether a voter marker exists for (poll, wallet). Marker
// existence is the only readable fact about a voter.
func (s *Service) HasVoted(_ *http.Request, args *HasVotedArgs, reply *HasVotedReply) error {
	addr, _, err := account.VoterAddress(s.vm.programID, args.Poll, args.Wallet)
	if err != nil {
		return err
	}

	s.vm.stateLock.RLock()
	defer s.vm.stateLock.RUnlock()

	voted, err := s.vm.state.HasVoterMarker(addr)
	if err != nil {
		return err
	}
	reply.Voted = voted
	return nil
}
