// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langmatch

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/langmatch/langmatch/internal/matchdata"
)

// The match table is built once from the decoded CLDR ruleset and is
// immutable afterward, so a single table may serve any number of
// concurrent readers.
//
// Rule patterns are kept symbolic: a match variable is resolved as a
// membership test at lookup time, never expanded into concrete rule
// copies, which keeps the table exactly as large as the source data.

type patternKind uint8

const (
	patAbsent  patternKind = iota // subtag must be absent
	patLiteral                    // subtag must equal value
	patAny                        // "*": any subtag, present or not
	patVar                        // "$id": region in the variable set
	patVarNot                     // "$!id": region not in the variable set
)

type subtagPattern struct {
	kind  patternKind
	value string // literal subtag or variable name
}

type rulePattern struct {
	lang, script, region subtagPattern
}

type rule struct {
	desired   rulePattern
	supported rulePattern
	distance  int // scaled ×10
	oneway    bool
}

// A matchVar is a named set of region codes. Members that are UN M49
// macro regions (such as 019) also match any region they contain.
type matchVar struct {
	members map[string]bool
	groups  []language.Region
}

func (v *matchVar) contains(subtag string) bool {
	if v.members[subtag] {
		return true
	}
	if len(v.groups) == 0 {
		return false
	}
	r, err := language.ParseRegion(subtag)
	if err != nil {
		return false
	}
	for _, g := range v.groups {
		if g.Contains(r) {
			return true
		}
	}
	return false
}

type table struct {
	rules    []rule
	vars     map[string]*matchVar
	paradigm map[Locale]bool
}

// newTable compiles the decoded ruleset. It fails only on malformed
// data: an unknown pattern form, a reference to an undefined variable,
// or an unparsable paradigm locale.
func newTable(rs *matchdata.Ruleset) (*table, error) {
	t := &table{
		vars:     make(map[string]*matchVar, len(rs.Variables)),
		paradigm: make(map[Locale]bool, len(rs.ParadigmLocales)),
	}

	for _, v := range rs.Variables {
		mv := &matchVar{members: make(map[string]bool, len(v.Regions))}
		for _, rg := range v.Regions {
			mv.members[rg] = true
			if r, err := language.ParseRegion(rg); err == nil && r.IsGroup() {
				mv.groups = append(mv.groups, r)
			}
		}
		t.vars[v.ID] = mv
	}

	for _, p := range rs.ParadigmLocales {
		loc, err := ParseLocale(p)
		if err != nil {
			return nil, fmt.Errorf("langmatch: bad paradigm locale %q: %w", p, err)
		}
		loc = loc.Maximize()
		loc.Variants = ""
		t.paradigm[loc] = true
	}

	t.rules = make([]rule, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		desired, err := t.compileRulePattern(r.Desired)
		if err != nil {
			return nil, err
		}
		supported, err := t.compileRulePattern(r.Supported)
		if err != nil {
			return nil, err
		}
		t.rules = append(t.rules, rule{
			desired:   desired,
			supported: supported,
			distance:  r.Distance * 10,
			oneway:    r.Oneway,
		})
	}
	return t, nil
}

func (t *table) compileRulePattern(s string) (rulePattern, error) {
	parts := strings.Split(s, "_")
	p := rulePattern{
		script: subtagPattern{kind: patAbsent},
		region: subtagPattern{kind: patAbsent},
	}
	var err error
	if p.lang, err = t.compileSubtag(parts[0]); err != nil {
		return rulePattern{}, fmt.Errorf("langmatch: pattern %q: %w", s, err)
	}
	if len(parts) > 1 {
		if p.script, err = t.compileSubtag(parts[1]); err != nil {
			return rulePattern{}, fmt.Errorf("langmatch: pattern %q: %w", s, err)
		}
	}
	if len(parts) > 2 {
		if p.region, err = t.compileSubtag(parts[2]); err != nil {
			return rulePattern{}, fmt.Errorf("langmatch: pattern %q: %w", s, err)
		}
	}
	return p, nil
}

func (t *table) compileSubtag(s string) (subtagPattern, error) {
	switch {
	case s == "":
		return subtagPattern{}, fmt.Errorf("empty subtag")
	case s == "*":
		return subtagPattern{kind: patAny}, nil
	case strings.HasPrefix(s, "$!"):
		return t.varPattern(patVarNot, s[len("$!"):])
	case strings.HasPrefix(s, "$"):
		return t.varPattern(patVar, s[len("$"):])
	default:
		return subtagPattern{kind: patLiteral, value: s}, nil
	}
}

func (t *table) varPattern(kind patternKind, name string) (subtagPattern, error) {
	if t.vars[name] == nil {
		return subtagPattern{}, fmt.Errorf("undefined match variable $%s", name)
	}
	return subtagPattern{kind: kind, value: name}, nil
}

func (t *table) subtagMatches(p subtagPattern, subtag string) bool {
	switch p.kind {
	case patAbsent:
		return subtag == ""
	case patAny:
		return true
	case patLiteral:
		return p.value == subtag
	case patVar:
		return subtag != "" && t.vars[p.value].contains(subtag)
	case patVarNot:
		return subtag != "" && !t.vars[p.value].contains(subtag)
	}
	return false
}

func (t *table) patternMatches(p rulePattern, loc Locale) bool {
	return t.subtagMatches(p.lang, loc.Lang) &&
		t.subtagMatches(p.script, loc.Script) &&
		t.subtagMatches(p.region, loc.Region)
}

// lookup returns the scaled distance of the first rule covering the
// pair, scanning in declaration order. Rules not marked oneway also
// apply with the sides swapped. When exactly one of the two locales is
// a paradigm locale the distance is lowered by one, which breaks ties
// in favor of paradigm locales. The def distance applies when no rule
// matches; the shipped table terminates every level with a wildcard
// rule, so that only happens with incomplete data.
func (t *table) lookup(desired, supported Locale, def int) int {
	for i := range t.rules {
		r := &t.rules[i]
		ok := t.patternMatches(r.desired, desired) && t.patternMatches(r.supported, supported)
		if !ok && !r.oneway {
			ok = t.patternMatches(r.desired, supported) && t.patternMatches(r.supported, desired)
		}
		if !ok {
			continue
		}
		d := r.distance
		if t.isParadigm(desired) != t.isParadigm(supported) {
			d--
		}
		return d
	}
	return def
}

// isParadigm reports whether the maximized locale is one of the CLDR
// paradigm locales. Variants do not participate.
func (t *table) isParadigm(loc Locale) bool {
	loc.Variants = ""
	return t.paradigm[loc]
}
