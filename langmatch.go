// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langmatch

import (
	"fmt"
	"sync"

	"github.com/langmatch/langmatch/internal/matchdata"
)

// A Matcher computes distances between locale identifiers and selects
// the closest supported locale for a desired one, following the CLDR
// enhanced language matching algorithm. It is immutable and safe for
// concurrent use; one Matcher should be built and shared.
type Matcher struct {
	table *table
}

// NewMatcher builds a Matcher from the matching rules embedded in the
// module. The rules ship with the package, so a decode or compile
// failure can only mean the embedded data is corrupt; NewMatcher panics
// in that case rather than silently matching against a partial table.
func NewMatcher() *Matcher {
	rs, err := matchdata.Load()
	if err != nil {
		panic(fmt.Sprintf("langmatch: corrupt embedded match data: %v", err))
	}
	t, err := newTable(rs)
	if err != nil {
		panic(fmt.Sprintf("langmatch: corrupt embedded match data: %v", err))
	}
	return &Matcher{table: t}
}

// Distance returns the matching distance between the desired and the
// supported locale, scaled so that one CLDR distance unit is 10.
// Zero means the locales are interchangeable after maximization:
// Distance of "zh-CN" and "zh-Hans" is 0. Smaller is closer, and
// distances form a total order over candidates.
//
// Some rules apply in one direction only, so Distance(a, b) and
// Distance(b, a) may differ.
func (m *Matcher) Distance(desired, supported Locale) int {
	return m.distance(desired.Maximize(), supported.Maximize())
}

// Match returns the candidate closest to the desired locale, along with
// its position and distance. When several candidates are equally close,
// the earliest one wins. When candidates is empty, or even the best
// candidate is too distant to be usable (distance 1000 or more), Match
// returns index -1.
func (m *Matcher) Match(desired Locale, candidates []Locale) (best Locale, index, distance int) {
	des := desired.Maximize()
	index, distance = -1, matchThreshold
	for i, c := range candidates {
		if d := m.distance(des, c.Maximize()); d < distance {
			best, index, distance = c, i, d
		}
	}
	if index < 0 {
		return Locale{}, -1, 0
	}
	return best, index, distance
}

var (
	defaultMatcher     *Matcher
	defaultMatcherOnce sync.Once
)

func getDefaultMatcher() *Matcher {
	defaultMatcherOnce.Do(func() {
		defaultMatcher = NewMatcher()
	})
	return defaultMatcher
}

// Distance is shorthand for calling Distance on a process-wide shared
// Matcher, built on first use.
func Distance(desired, supported Locale) int {
	return getDefaultMatcher().Distance(desired, supported)
}

// Match is shorthand for calling Match on a process-wide shared
// Matcher, built on first use.
func Match(desired Locale, candidates []Locale) (best Locale, index, distance int) {
	return getDefaultMatcher().Match(desired, candidates)
}
