// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, spec PatternSpec) *Matcher {
	t.Helper()
	m, err := Compile(spec)
	require.NoError(t, err)
	return m
}

func TestMatcher_LiteralCaseSensitive(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: "Keyword", CaseSensitive: true})

	spans := m.Find("Keyword keyword KEYWORD Keyword")
	assert.Equal(t, []Span{{0, 7}, {24, 31}}, spans)
}

func TestMatcher_LiteralCaseInsensitive(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: "Keyword"})

	spans := m.Find("KEYWORD then keyword then KeyWord")
	require.Len(t, spans, 3, "one hit per occurrence regardless of case")
	assert.Equal(t, Span{0, 7}, spans[0])
	assert.Equal(t, Span{13, 20}, spans[1])
	assert.Equal(t, Span{26, 33}, spans[2])
}

func TestMatcher_LiteralOverlapping(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: "aa", CaseSensitive: true})

	// the search advances one position past each hit, so overlapping
	// occurrences are all reported
	spans := m.Find("aaa")
	assert.Equal(t, []Span{{0, 2}, {1, 3}}, spans)
}

func TestMatcher_LiteralNoMatch(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: "absent", CaseSensitive: true})
	assert.Empty(t, m.Find("some page text"))
}

func TestMatcher_EmptyLiteral(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: ""})
	assert.Empty(t, m.Find("anything"))
}

func TestMatcher_Regex(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: `foo.*bar`, CaseSensitive: true, UseRegex: true})

	spans := m.Find("xx foo middle bar yy")
	assert.Equal(t, []Span{{3, 17}}, spans)
}

func TestMatcher_RegexCaseInsensitiveFlag(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: `inv[0-9]+`, UseRegex: true})

	spans := m.Find("INV123 and inv456")
	assert.Equal(t, []Span{{0, 6}, {11, 17}}, spans)
}

func TestMatcher_SpansAscending(t *testing.T) {
	m := mustCompile(t, PatternSpec{Text: "x", CaseSensitive: true})

	spans := m.Find("x.x.x")
	for i := 1; i < len(spans); i++ {
		assert.Less(t, spans[i-1].Start, spans[i].Start)
	}
}

func TestCompile_InvalidRegex(t *testing.T) {
	_, err := Compile(PatternSpec{Text: `[unclosed`, UseRegex: true})
	require.Error(t, err)

	var patErr *PatternError
	require.True(t, errors.As(err, &patErr))
	assert.Equal(t, `[unclosed`, patErr.Pattern)
}

func TestCompile_LiteralNeverFails(t *testing.T) {
	// an invalid regex used as a literal is just a substring
	m := mustCompile(t, PatternSpec{Text: `[unclosed`, CaseSensitive: true})
	assert.Equal(t, []Span{{5, 14}}, m.Find("text [unclosed text"))
}
