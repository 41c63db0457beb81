// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package run

import (
	"github.com/spf13/pflag"
)

const (
	HTTPAddrKey = "http-addr"
	DBDirKey    = "db-dir"
	ChainIDKey  = "chain-id"

	defaultHTTPAddr = ":9750"
	defaultChainID  = "ballot"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(HTTPAddrKey, defaultHTTPAddr, "Address to serve the JSON-RPC API on")
	flags.String(DBDirKey, "", "Directory for the badger database; empty runs in-memory")
	flags.String(ChainIDKey, defaultChainID, "Seed string for the chain ID")
}

type flagValues struct {
	HTTPAddr    string
	DBDir       string
	ChainIDSeed string
}

func getFlags(flags *pflag.FlagSet) (*flagValues, error) {
	httpAddr, err := flags.GetString(HTTPAddrKey)
	if err != nil {
		return nil, err
	}
	dbDir, err := flags.GetString(DBDirKey)
	if err != nil {
		return nil, err
	}
	chainIDSeed, err := flags.GetString(ChainIDKey)
	if err != nil {
		return nil, err
	}
	return &flagValues{
		HTTPAddr:    httpAddr,
		DBDir:       dbDir,
		ChainIDSeed: chainIDSeed,
	}, nil
}
