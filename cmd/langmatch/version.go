// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the langmatch version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			fmt.Println(info.Main.Version)
			return
		}
		fmt.Println("(devel)")
	},
}

func init() {
	cmd.AddCommand(versionCommand)
}
