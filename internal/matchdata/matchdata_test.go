// Copyright 2026 The Langmatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	rs, err := Load()
	require.NoError(t, err)

	require.Contains(t, rs.ParadigmLocales, "en")
	require.Contains(t, rs.ParadigmLocales, "en_GB")
	require.Contains(t, rs.ParadigmLocales, "pt_BR")

	vars := map[string][]string{}
	for _, v := range rs.Variables {
		vars[v.ID] = v.Regions
	}
	require.Equal(t, []string{"HK", "MO"}, vars["cnsar"])
	require.Equal(t, []string{"019"}, vars["americas"])
	require.Contains(t, vars["enUS"], "US")
	require.Contains(t, vars["enUS"], "CA")

	// Rule order is the tie break between equally specific rules, so
	// the decoder must preserve declaration order.
	require.Equal(t, Rule{Desired: "no", Supported: "nb", Distance: 1}, rs.Rules[0])

	idx := func(desired, supported string) int {
		for i, r := range rs.Rules {
			if r.Desired == desired && r.Supported == supported {
				return i
			}
		}
		return -1
	}
	lang, script, region := idx("*", "*"), idx("*_*", "*_*"), idx("*_*_*", "*_*_*")
	require.GreaterOrEqual(t, lang, 0)
	require.Greater(t, script, lang)
	require.Greater(t, region, script)
	require.Equal(t, len(rs.Rules)-1, region, "region catch-all must close the table")

	i := idx("de", "gsw")
	require.GreaterOrEqual(t, i, 0)
	require.True(t, rs.Rules[i].Oneway)
	require.Equal(t, 4, rs.Rules[i].Distance)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	wrap := func(body string) []byte {
		return []byte(`<supplementalData><languageMatching>` +
			`<languageMatches type="written_new">` + body +
			`</languageMatches></languageMatching></supplementalData>`)
	}

	t.Run("malformed xml", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte("<supplementalData>"))
		require.Error(t, err)
	})

	t.Run("missing written_new", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte(`<supplementalData><languageMatching>` +
			`<languageMatches type="written"/>` +
			`</languageMatching></supplementalData>`))
		require.ErrorContains(t, err, "written_new")
	})

	t.Run("no paradigm locales", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(wrap(`<languageMatch desired="*" supported="*" distance="80"/>`))
		require.ErrorContains(t, err, "paradigmLocales")
	})

	t.Run("variable without dollar prefix", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(wrap(`<paradigmLocales locales="en"/>` +
			`<matchVariable id="cnsar" value="HK+MO"/>` +
			`<languageMatch desired="*" supported="*" distance="80"/>`))
		require.ErrorContains(t, err, "cnsar")
	})

	t.Run("pattern arity mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(wrap(`<paradigmLocales locales="en"/>` +
			`<languageMatch desired="en_Latn" supported="en" distance="10"/>`))
		require.ErrorContains(t, err, "mismatched")
	})

	t.Run("distance out of range", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(wrap(`<paradigmLocales locales="en"/>` +
			`<languageMatch desired="*" supported="*" distance="200"/>`))
		require.ErrorContains(t, err, "out of range")
	})

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(wrap(`<paradigmLocales locales="en"/>`))
		require.ErrorContains(t, err, "no languageMatch rules")
	})
}
