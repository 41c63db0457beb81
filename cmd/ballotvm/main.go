// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/ballotvm/cmd/ballotvm/run"
)

func main() {
	root := &cobra.Command{
		Use:   "ballotvm",
		Short: "Ballot VM command line interface",
	}
	root.AddCommand(run.Command())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
