// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballotvm

import (
	"encoding/json"
	"fmt"

	"github.com/luxfi/ids"
)

// Genesis configures a new ballot chain. ProgramID scopes every derived
// account address, so two chains with different program IDs can never collide
// on an account.
type Genesis struct {
	ProgramID ids.ID `json:"programID"`
}

// BuildGenesis serializes a genesis for ParseGenesis.
func BuildGenesis(g *Genesis) ([]byte, error) {
	return json.Marshal(g)
}

// ParseGenesis parses a JSON genesis blob. An empty blob is valid and leaves
// the program ID zero; Initialize then falls back to the chain ID.
func ParseGenesis(bytes []byte) (*Genesis, error) {
	g := &Genesis{}
	if len(bytes) == 0 {
		return g, nil
	}
	if err := json.Unmarshal(bytes, g); err != nil {
		return nil, fmt.Errorf("failed to parse genesis: %w", err)
	}
	return g, nil
}
