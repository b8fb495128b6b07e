// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langmatch

// Distances are CLDR matching distances scaled by 10, which leaves room
// for the paradigm-locale tie break (a matched distance is lowered by 1
// when exactly one side is a paradigm locale).
const (
	// Per-level distances when no rule matches a pair of unequal
	// subtags. The shipped table ends every level with a wildcard rule,
	// so these are a backstop against incomplete data, not a path taken
	// in normal operation.
	defaultLangDistance   = 800
	defaultScriptDistance = 500
	defaultRegionDistance = 40

	// matchThreshold is the distance from which a supported locale is
	// considered unusable for the desired one. A desired and supported
	// locale sharing nothing score 1340 (800+500+40).
	matchThreshold = 1000
)

// distance computes the scaled distance between two maximized locales.
// The levels are compared most specific first — region, then script,
// then language — and the compared subtag is dropped before moving on,
// so rule patterns only ever see identifiers of their own arity. Equal
// subtags contribute 0 without consulting the table. Variants never
// contribute; they only matter for Locale equality.
//
// The walk is a pure function of its inputs: the table is immutable and
// nothing else is consulted.
func (m *Matcher) distance(desired, supported Locale) int {
	desired.Variants, supported.Variants = "", ""

	total := 0
	if desired.Region != supported.Region {
		total += m.table.lookup(desired, supported, defaultRegionDistance)
	}
	desired.Region, supported.Region = "", ""

	if desired.Script != supported.Script {
		total += m.table.lookup(desired, supported, defaultScriptDistance)
	}
	desired.Script, supported.Script = "", ""

	if desired.Lang != supported.Lang {
		total += m.table.lookup(desired, supported, defaultLangDistance)
	}
	return total
}
