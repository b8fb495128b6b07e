// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langmatch

import "golang.org/x/text/language"

// Maximize returns l with missing subtags filled in with their most
// likely values, so that language, script and region are all present:
// "zh-CN" becomes "zh-Hans-CN", "sr" becomes "sr-Cyrl-RS" and "und"
// becomes "en-Latn-US". Subtags already present are never altered and
// variants carry through untouched.
//
// The likely-subtag data is consumed from golang.org/x/text/language.
// A language that data does not know keeps its language subtag and
// takes the script and region of the generic und entry, mirroring ICU:
// maximizing never fails.
func (l Locale) Maximize() Locale {
	if l.Lang != "" && l.Lang != "und" && l.Script != "" && l.Region != "" {
		return l
	}
	var parts []interface{}
	if b, err := language.ParseBase(l.Lang); l.Lang != "" && err == nil {
		parts = append(parts, b)
	}
	if s, err := language.ParseScript(l.Script); l.Script != "" && err == nil {
		parts = append(parts, s)
	}
	if r, err := language.ParseRegion(l.Region); l.Region != "" && err == nil {
		parts = append(parts, r)
	}
	// Unrecognized subtags are left out of the query tag: the answers
	// for the remaining subtags are then the und-based defaults.
	tag, _ := language.Compose(parts...)

	out := l
	if out.Lang == "" || out.Lang == "und" {
		b, _ := tag.Base()
		out.Lang = b.String()
	}
	if out.Script == "" {
		s, _ := tag.Script()
		out.Script = s.String()
	}
	if out.Region == "" {
		r, _ := tag.Region()
		out.Region = r.String()
	}
	return out
}
