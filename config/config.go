// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// Config contains all the foundational parameters of the ballot VM
type Config struct {
	// Expose the JSON-RPC API
	APIEnabled bool

	// Register transaction metrics
	MetricsEnabled bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		APIEnabled:     true,
		MetricsEnabled: true,
	}
}
