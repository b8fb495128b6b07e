// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command langmatch scores and ranks locales against each other using
// the CLDR enhanced language matching rules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:           "langmatch",
	Short:         "Score and rank locales with CLDR language matching",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
