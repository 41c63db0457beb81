// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballotvm

import (
	"github.com/luxfi/log"

	"github.com/luxfi/ballotvm/config"
)

// Factory creates ballot VM instances
type Factory struct {
	Config config.Config
}

// New returns a new uninitialized VM
func (f *Factory) New(logger log.Logger) *VM {
	return &VM{
		Config: f.Config,
		log:    logger,
	}
}
