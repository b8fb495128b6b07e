// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/langmatch/langmatch"
)

var matchAll bool

var matchCommand = &cobra.Command{
	Use:   "match <desired> <candidate>...",
	Short: "Pick the candidate locale closest to the desired one",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		desired := parseArg(args[0])
		candidates := make([]langmatch.Locale, 0, len(args)-1)
		for _, a := range args[1:] {
			candidates = append(candidates, parseArg(a))
		}

		best, index, distance := langmatch.Match(desired, candidates)
		if matchAll {
			renderRanking(desired, candidates, index)
		}
		if index < 0 {
			fmt.Fprintf(os.Stderr, "no usable match for %s\n", desired)
			os.Exit(1)
		}
		if !matchAll {
			fmt.Printf("%s (distance %d)\n", best, distance)
		}
	},
}

func init() {
	matchCommand.Flags().BoolVar(&matchAll, "all", false, "show every candidate ranked by distance")
	cmd.AddCommand(matchCommand)
}

func renderRanking(desired langmatch.Locale, candidates []langmatch.Locale, bestIndex int) {
	type ranked struct {
		pos      int
		locale   langmatch.Locale
		distance int
	}
	rows := make([]ranked, len(candidates))
	for i, c := range candidates {
		rows[i] = ranked{pos: i, locale: c, distance: langmatch.Distance(desired, c)}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].distance < rows[j].distance })

	data := pterm.TableData{{"candidate", "distance", ""}}
	for _, r := range rows {
		mark := ""
		if r.pos == bestIndex {
			mark = "chosen"
		}
		data = append(data, []string{r.locale.String(), strconv.Itoa(r.distance), mark})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
