// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCommand = &cobra.Command{
	Use:   "resolve <locale>...",
	Short: "Print locales with likely script and region filled in",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range args {
			fmt.Println(parseArg(a).Maximize())
		}
	},
}

func init() {
	cmd.AddCommand(resolveCommand)
}
