// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langmatch implements the CLDR enhanced language matching
// algorithm: it scores how well a supported locale serves a user who
// asked for another one, and picks the best candidate from a list.
//
// Distances come from the CLDR languageInfo rules, scaled by 10: a raw
// CLDR distance of 4 is reported as 40. A distance of 0 means the
// locales are interchangeable once likely subtags are filled in, which
// is why "zh-CN" matches "zh-Hans" exactly. The matcher knows that a
// reader of Hong Kong Chinese is well served by "zh-MO" (distance 40),
// tolerably by "zh-Hant" (50), and poorly by "zh-Hans"; that British
// English is a better fallback than American English for an Australian
// user; and that some relations only hold in one direction: a German
// speaker may be offered Swiss German, but Swiss German speakers are
// not assumed to want German content scored the same way.
//
//	matcher := langmatch.NewMatcher()
//	supported := []langmatch.Locale{
//		langmatch.MustParseLocale("en"),
//		langmatch.MustParseLocale("ja"),
//		langmatch.MustParseLocale("zh-Hans"),
//		langmatch.MustParseLocale("zh-Hant"),
//	}
//	best, _, _ := matcher.Match(langmatch.MustParseLocale("zh-CN"), supported)
//	// best is zh-Hans
//
// Variant subtags take part in Locale equality but carry no weight in
// distances: "de-CH-1901" and "de-CH" are distinct identifiers at
// distance 0.
//
// The matching rules are embedded in the module; locale parsing,
// normalization and likely-subtag data are consumed from
// golang.org/x/text/language.
package langmatch
