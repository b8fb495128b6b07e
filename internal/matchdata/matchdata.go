// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matchdata holds the language matching rules extracted from the
// CLDR supplemental data (languageMatching, type "written_new") and
// decodes them into a structured form. The data ships with the module;
// regenerating it from upstream CLDR is out of scope.
package matchdata

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"strings"
)

//go:embed languageInfo.xml
var languageInfo []byte

// matchType selects the rule list used by enhanced language matching.
const matchType = "written_new"

// A Rule is a single languageMatch entry: a desired and a supported
// pattern of equal arity, a distance in CLDR units (0..100), and whether
// the rule applies in the desired→supported direction only. Pattern
// subtags are separated by '_' and may be a literal, "*", or a match
// variable reference "$id" or "$!id".
type Rule struct {
	Desired   string
	Supported string
	Distance  int
	Oneway    bool
}

// A Variable is a named set of region codes, referenced from rule
// patterns as $id or, inverted, $!id.
type Variable struct {
	ID      string // without the leading '$'
	Regions []string
}

// A Ruleset is the decoded languageMatching data. Rules keep their
// declaration order; the order is significant, as the first matching
// rule wins.
type Ruleset struct {
	ParadigmLocales []string
	Variables       []Variable
	Rules           []Rule
}

type supplementalData struct {
	XMLName          xml.Name `xml:"supplementalData"`
	LanguageMatching struct {
		Matches []languageMatches `xml:"languageMatches"`
	} `xml:"languageMatching"`
}

type languageMatches struct {
	Type            string `xml:"type,attr"`
	ParadigmLocales []struct {
		Locales string `xml:"locales,attr"`
	} `xml:"paradigmLocales"`
	MatchVariable []struct {
		ID    string `xml:"id,attr"`
		Value string `xml:"value,attr"`
	} `xml:"matchVariable"`
	LanguageMatch []struct {
		Desired   string `xml:"desired,attr"`
		Supported string `xml:"supported,attr"`
		Distance  int    `xml:"distance,attr"`
		Oneway    bool   `xml:"oneway,attr"`
	} `xml:"languageMatch"`
}

// Load decodes the embedded CLDR data.
func Load() (*Ruleset, error) {
	return Decode(languageInfo)
}

// Decode parses CLDR languageInfo data and returns the written_new
// ruleset. It validates the structure so that a malformed table is
// rejected at construction time instead of producing wrong distances.
func Decode(data []byte) (*Ruleset, error) {
	var sd supplementalData
	if err := xml.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("matchdata: decoding languageInfo: %w", err)
	}
	var lm *languageMatches
	for i := range sd.LanguageMatching.Matches {
		if sd.LanguageMatching.Matches[i].Type == matchType {
			lm = &sd.LanguageMatching.Matches[i]
			break
		}
	}
	if lm == nil {
		return nil, fmt.Errorf("matchdata: no languageMatches of type %q", matchType)
	}

	rs := &Ruleset{}
	for _, p := range lm.ParadigmLocales {
		rs.ParadigmLocales = append(rs.ParadigmLocales, strings.Fields(p.Locales)...)
	}
	if len(rs.ParadigmLocales) == 0 {
		return nil, fmt.Errorf("matchdata: empty paradigmLocales")
	}

	for _, v := range lm.MatchVariable {
		id, ok := strings.CutPrefix(v.ID, "$")
		if !ok || id == "" {
			return nil, fmt.Errorf("matchdata: matchVariable id %q must start with '$'", v.ID)
		}
		regions := strings.Split(v.Value, "+")
		for _, r := range regions {
			if r == "" {
				return nil, fmt.Errorf("matchdata: matchVariable %s has an empty region", v.ID)
			}
		}
		rs.Variables = append(rs.Variables, Variable{ID: id, Regions: regions})
	}

	for _, m := range lm.LanguageMatch {
		// Older CLDR releases separate subtags with '-'.
		desired := strings.ReplaceAll(m.Desired, "-", "_")
		supported := strings.ReplaceAll(m.Supported, "-", "_")
		dn := strings.Count(desired, "_")
		if desired == "" || supported == "" || dn != strings.Count(supported, "_") || dn > 2 {
			return nil, fmt.Errorf("matchdata: mismatched patterns %q / %q", m.Desired, m.Supported)
		}
		if m.Distance < 0 || m.Distance > 100 {
			return nil, fmt.Errorf("matchdata: rule %q / %q has distance %d out of range", m.Desired, m.Supported, m.Distance)
		}
		rs.Rules = append(rs.Rules, Rule{
			Desired:   desired,
			Supported: supported,
			Distance:  m.Distance,
			Oneway:    m.Oneway,
		})
	}
	if len(rs.Rules) == 0 {
		return nil, fmt.Errorf("matchdata: no languageMatch rules")
	}
	return rs, nil
}
