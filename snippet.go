// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import "strings"

// DefaultContextChars is the trailing context length used when a run does
// not specify one.
const DefaultContextChars = 30

// snippetLookback is the fixed number of characters shown before a match.
const snippetLookback = 10

var crlfReplacer = strings.NewReplacer("\n", " ", "\r", " ")

// Snippet renders a bounded-context excerpt around a match span: up to 10
// characters before the match, the match itself, and up to context
// characters after it. Newlines and carriage returns become spaces. A
// leading "..." marks text cut off before the excerpt, a trailing "..."
// marks text cut off after it.
func Snippet(text string, sp Span, context int) string {
	if context < 0 {
		context = DefaultContextChars
	}
	start := sp.Start - snippetLookback
	if start < 0 {
		start = 0
	}
	end := sp.End + context
	if end > len(text) {
		end = len(text)
	}

	snippet := crlfReplacer.Replace(text[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(text) {
		snippet = snippet + "..."
	}
	return snippet
}
