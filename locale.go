// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langmatch

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// A Locale is an immutable locale identifier: a language subtag with
// optional script, region and variant subtags, for example
// "zh-Hans-CN" or "de-CH-1901". The zero value is the root locale
// ("und").
//
// Locales are comparable with ==. The constructors normalize subtag
// case (lowercase language, title-case script, uppercase region,
// lowercase variants), so two Locales are equal exactly when their
// normalized subtags, including variants, are equal. Code constructing
// Locale values directly must supply normalized subtags.
type Locale struct {
	Lang   string // ISO 639 code, or "" for und
	Script string // ISO 15924 code, or ""
	Region string // ISO 3166-1 or UN M49 code, or ""

	// Variants holds the variant subtags in their given order, joined
	// by '-', or "" if there are none.
	Variants string
}

// ParseLocale parses a locale identifier such as "zh-Hans-CN",
// "sr_Latn_RS" or "de-CH-1901" into a Locale. Both '-' and '_' work as
// subtag separators. Subtags are validated and normalized with the
// golang.org/x/text/language parsers; subtags that are well formed but
// not registered are kept as given. Extension and private-use subtags
// (everything from the first single-character subtag on) are dropped:
// they play no role in matching.
func ParseLocale(s string) (Locale, error) {
	if s == "" {
		return Locale{}, errors.New("langmatch: empty locale identifier")
	}
	parts := strings.Split(strings.ReplaceAll(s, "_", "-"), "-")

	var loc Locale
	lang, err := parseSubtag(parts[0], "language",
		func(s string) (fmt.Stringer, error) { return language.ParseBase(s) })
	if err != nil {
		return Locale{}, err
	}
	if lang != "und" {
		loc.Lang = lang
	}

	rest := parts[1:]
	if len(rest) > 0 && isScriptForm(rest[0]) {
		loc.Script, err = parseSubtag(rest[0], "script",
			func(s string) (fmt.Stringer, error) { return language.ParseScript(s) })
		if err != nil {
			return Locale{}, err
		}
		rest = rest[1:]
	}
	if len(rest) > 0 && isRegionForm(rest[0]) {
		loc.Region, err = parseSubtag(rest[0], "region",
			func(s string) (fmt.Stringer, error) { return language.ParseRegion(s) })
		if err != nil {
			return Locale{}, err
		}
		rest = rest[1:]
	}
	var variants []string
	for _, p := range rest {
		if len(p) == 1 {
			break // extension or private-use: not part of the identifier
		}
		v, err := parseSubtag(p, "variant",
			func(s string) (fmt.Stringer, error) { return language.ParseVariant(s) })
		if err != nil {
			return Locale{}, err
		}
		variants = append(variants, v)
	}
	loc.Variants = strings.Join(variants, "-")
	return loc, nil
}

// MustParseLocale is like ParseLocale, but panics if the identifier
// cannot be parsed. It simplifies safe initialization of static values.
func MustParseLocale(s string) Locale {
	loc, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// parseSubtag normalizes one subtag with the given x/text parser. A
// well-formed but unregistered subtag (ValueError) is kept as given,
// case-normalized; matching is total over well-formed identifiers.
func parseSubtag(s, kind string, parse func(string) (fmt.Stringer, error)) (string, error) {
	v, err := parse(s)
	if err == nil {
		return v.String(), nil
	}
	var verr language.ValueError
	if errors.As(err, &verr) {
		switch kind {
		case "script":
			return strings.ToUpper(s[:1]) + strings.ToLower(s[1:]), nil
		case "region":
			return strings.ToUpper(s), nil
		default:
			return strings.ToLower(s), nil
		}
	}
	return "", fmt.Errorf("langmatch: bad %s subtag %q: %w", kind, s, err)
}

// FromTag converts a parsed language.Tag into a Locale. Only the raw
// base language, script and region carry over; variant, extension and
// private-use subtags are dropped.
func FromTag(t language.Tag) Locale {
	b, s, r := t.Raw()
	var loc Locale
	if b != (language.Base{}) {
		loc.Lang = b.String()
	}
	if s != (language.Script{}) {
		loc.Script = s.String()
	}
	if r != (language.Region{}) {
		loc.Region = r.String()
	}
	return loc
}

func isScriptForm(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if !isAlpha(c) {
			return false
		}
	}
	return true
}

func isRegionForm(s string) bool {
	switch len(s) {
	case 2:
		return isAlpha(rune(s[0])) && isAlpha(rune(s[1]))
	case 3:
		return s[0] >= '0' && s[0] <= '9' &&
			s[1] >= '0' && s[1] <= '9' &&
			s[2] >= '0' && s[2] <= '9'
	}
	return false
}

func isAlpha(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// String returns the identifier in canonical hyphenated form. The zero
// Locale prints as "und".
func (l Locale) String() string {
	lang := l.Lang
	if lang == "" {
		lang = "und"
	}
	parts := []string{lang}
	if l.Script != "" {
		parts = append(parts, l.Script)
	}
	if l.Region != "" {
		parts = append(parts, l.Region)
	}
	if l.Variants != "" {
		parts = append(parts, l.Variants)
	}
	return strings.Join(parts, "-")
}
