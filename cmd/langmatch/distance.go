// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/langmatch/langmatch"
)

var distanceQuiet bool

var distanceCommand = &cobra.Command{
	Use:   "distance <desired> <supported>",
	Short: "Print the matching distance between two locales",
	Long: `Print the CLDR matching distance between a desired and a supported
locale, scaled so that one CLDR unit is 10. Zero means the locales are
interchangeable. Distances are directional: swapping the arguments may
change the result.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		desired := parseArg(args[0])
		supported := parseArg(args[1])
		d := langmatch.Distance(desired, supported)
		if distanceQuiet {
			fmt.Println(d)
			return
		}
		fmt.Printf("%s -> %s: %d\n", desired, supported, d)
	},
}

func init() {
	distanceCommand.Flags().BoolVarP(&distanceQuiet, "quiet", "q", false, "print the distance only")
	cmd.AddCommand(distanceCommand)
}

// parseArg parses a locale argument or exits with the usage status.
func parseArg(s string) langmatch.Locale {
	loc, err := langmatch.ParseLocale(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return loc
}
