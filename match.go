// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"regexp"
	"strings"
)

// PatternSpec describes what to search for.
type PatternSpec struct {
	Text          string
	CaseSensitive bool
	UseRegex      bool
}

// A Span is a half-open [Start, End) offset range into a page's text.
type Span struct {
	Start int
	End   int
}

// A Matcher finds occurrence spans of a compiled pattern in page text.
// It is compiled once per run and is safe for concurrent use.
// Exactly one of the two kinds is active: a literal substring search or a
// compiled regular expression.
type Matcher struct {
	literal       string
	caseSensitive bool
	re            *regexp.Regexp
}

// Compile builds a Matcher from a pattern specification. For regular
// expressions, case-insensitivity is expressed as a matcher flag rather
// than by folding the text. An invalid expression yields a PatternError,
// which must surface before any file is processed.
func Compile(spec PatternSpec) (*Matcher, error) {
	if !spec.UseRegex {
		lit := spec.Text
		if !spec.CaseSensitive {
			lit = strings.ToLower(lit)
		}
		return &Matcher{literal: lit, caseSensitive: spec.CaseSensitive}, nil
	}
	expr := spec.Text
	if !spec.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: spec.Text, Err: err}
	}
	return &Matcher{re: re}, nil
}

// Find returns every occurrence span of the pattern in text, ordered by
// ascending start offset. Literal search advances one position past each
// hit, so overlapping occurrences are all reported; regex matches follow
// the usual leftmost non-overlapping rule.
func (m *Matcher) Find(text string) []Span {
	if m.re != nil {
		var spans []Span
		for _, loc := range m.re.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{Start: loc[0], End: loc[1]})
		}
		return spans
	}

	src := text
	if !m.caseSensitive {
		src = strings.ToLower(src)
	}
	if m.literal == "" {
		return nil
	}
	var spans []Span
	for idx := strings.Index(src, m.literal); idx != -1; {
		spans = append(spans, Span{Start: idx, End: idx + len(m.literal)})
		next := strings.Index(src[idx+1:], m.literal)
		if next == -1 {
			break
		}
		idx += 1 + next
	}
	return spans
}
