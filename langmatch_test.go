// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langmatch_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langmatch/langmatch"
)

// One shared matcher: it is immutable, and sharing it across parallel
// tests doubles as a light race check.
var matcher = langmatch.NewMatcher()

func loc(t *testing.T, s string) langmatch.Locale {
	t.Helper()
	return langmatch.MustParseLocale(s)
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desired, supported string
		want               int
	}{
		{"en", "en", 0},
		// Likely-subtag resolution makes these interchangeable.
		{"zh-CN", "zh-Hans", 0},
		{"zh-TW", "zh-Hant", 0},
		// Region-level rule, scaled ×10.
		{"zh-HK", "zh-MO", 40},
		{"zh-HK", "zh-Hant", 50},
		{"en-US", "en-GB", 50},
		// en-CA sits in the American English group; the paradigm tie
		// break takes one off the scaled rule distance.
		{"en-US", "en-CA", 39},
		{"en-AU", "en-GB", 29},
		{"no", "nb", 10},
		{"ru", "uk", 240},
		{"en", "ja", 1339},
	}
	for _, tt := range tests {
		got := matcher.Distance(loc(t, tt.desired), loc(t, tt.supported))
		require.Equal(t, tt.want, got, "Distance(%s, %s)", tt.desired, tt.supported)
	}
}

func TestDistanceIdentity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"en", "zh-Hans-CN", "de-CH-1901", "qq-QQ", "und", "es-419"} {
		l := loc(t, s)
		require.Zero(t, matcher.Distance(l, l), "Distance(%s, %[1]s)", s)
	}
}

func TestDistanceIsDirectional(t *testing.T) {
	t.Parallel()

	// German speakers can be offered Swiss German; the reverse rule
	// does not exist, so the fallback costs the full language default.
	require.Equal(t, 80, matcher.Distance(loc(t, "de"), loc(t, "gsw")))
	require.Equal(t, 840, matcher.Distance(loc(t, "gsw"), loc(t, "de")))
}

func TestDistanceIgnoresVariants(t *testing.T) {
	t.Parallel()

	base := matcher.Distance(loc(t, "en-US"), loc(t, "en-GB"))
	require.Equal(t, base, matcher.Distance(loc(t, "en-US-posix"), loc(t, "en-GB")))

	require.Zero(t, matcher.Distance(loc(t, "de-CH-1901"), loc(t, "de-CH")))
	require.NotEqual(t, loc(t, "de-CH-1901"), loc(t, "de-CH"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	supported := []langmatch.Locale{
		langmatch.MustParseLocale("en"),
		langmatch.MustParseLocale("ja"),
		langmatch.MustParseLocale("zh-Hans"),
		langmatch.MustParseLocale("zh-Hant"),
	}

	t.Run("picks the equivalent candidate", func(t *testing.T) {
		t.Parallel()
		best, index, distance := matcher.Match(loc(t, "zh-CN"), supported)
		require.Equal(t, supported[2], best)
		require.Equal(t, 2, index)
		require.Zero(t, distance)

		best, index, distance = matcher.Match(loc(t, "zh-TW"), supported)
		require.Equal(t, supported[3], best)
		require.Equal(t, 3, index)
		require.Zero(t, distance)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		t.Parallel()
		_, index, _ := matcher.Match(loc(t, "en"), nil)
		require.Equal(t, -1, index)
	})

	t.Run("nothing usable", func(t *testing.T) {
		t.Parallel()
		_, index, _ := matcher.Match(loc(t, "ja"), []langmatch.Locale{loc(t, "mt")})
		require.Equal(t, -1, index)
	})

	t.Run("ties keep the earliest candidate", func(t *testing.T) {
		t.Parallel()
		candidates := []langmatch.Locale{loc(t, "zh-Hans-CN"), loc(t, "zh-CN")}
		best, index, distance := matcher.Match(loc(t, "zh"), candidates)
		require.Equal(t, candidates[0], best)
		require.Zero(t, index)
		require.Zero(t, distance)
	})

	t.Run("macro-region containment ranks pt-PT over pt-BR for pt-AO", func(t *testing.T) {
		t.Parallel()
		candidates := []langmatch.Locale{loc(t, "pt-BR"), loc(t, "pt-PT")}
		best, index, distance := matcher.Match(loc(t, "pt-AO"), candidates)
		require.Equal(t, candidates[1], best)
		require.Equal(t, 1, index)
		require.Equal(t, 39, distance)
	})
}

func TestMatchReturnsTrueMinimum(t *testing.T) {
	t.Parallel()

	desired := loc(t, "es-MX")
	candidates := []langmatch.Locale{
		loc(t, "en"), loc(t, "es-ES"), loc(t, "es-419"), loc(t, "pt-BR"), loc(t, "es"),
	}
	best, index, distance := matcher.Match(desired, candidates)
	require.GreaterOrEqual(t, index, 0)
	require.Equal(t, candidates[index], best)

	min, at := -1, -1
	for i, c := range candidates {
		if d := matcher.Distance(desired, c); min < 0 || d < min {
			min, at = d, i
		}
	}
	require.Equal(t, min, distance)
	require.Equal(t, at, index)
}

func TestSharedDefaultMatcher(t *testing.T) {
	t.Parallel()

	desired := langmatch.MustParseLocale("zh-CN")
	supported := []langmatch.Locale{
		langmatch.MustParseLocale("en"),
		langmatch.MustParseLocale("zh-Hans"),
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if d := langmatch.Distance(desired, supported[1]); d != 0 {
					t.Errorf("Distance = %d; want 0", d)
					return
				}
				if _, index, _ := langmatch.Match(desired, supported); index != 1 {
					t.Errorf("Match index = %d; want 1", index)
					return
				}
			}
		}()
	}
	wg.Wait()
}
