// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	reTextRegion = regexp.MustCompile(`(?s)BT(.*?)ET`)
	// A literal string: "(" then any run of escaped pairs or
	// non-backslash bytes, non-greedy, then ")".
	reLiteralString = regexp.MustCompile(`(?s)\((?:\\.|[^\\])*?\)`)
)

// DecodeContentText scans a decoded content stream for BT..ET text regions
// and concatenates the decoded literal string operands found inside them.
// No separator is inserted between strings; spacing operators are not
// interpreted.
func DecodeContentText(data []byte) string {
	var b strings.Builder
	for _, region := range reTextRegion.FindAllSubmatch(data, -1) {
		for _, lit := range reLiteralString.FindAll(region[1], -1) {
			b.WriteString(unescapeString(lit[1 : len(lit)-1]))
		}
	}
	return b.String()
}

// unescapeString applies the PDF literal-string escape grammar to the bytes
// between the enclosing parentheses: \( \) \\ pass the escaped byte through,
// \n \r \t \b \f map to their control characters, a backslash followed by
// one to three octal digits encodes a byte, and any other escaped byte is
// taken literally. The decoded bytes are interpreted as UTF-8, falling back
// to Latin-1, which accepts any byte sequence.
func unescapeString(b []byte) string {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		if c != '\\' || i+1 >= len(b) {
			out = append(out, c)
			i++
			continue
		}
		i++
		switch esc := b[i]; {
		case esc == '(' || esc == ')' || esc == '\\':
			out = append(out, esc)
			i++
		case esc == 'n':
			out = append(out, '\n')
			i++
		case esc == 'r':
			out = append(out, '\r')
			i++
		case esc == 't':
			out = append(out, '\t')
			i++
		case esc == 'b':
			out = append(out, '\b')
			i++
		case esc == 'f':
			out = append(out, '\f')
			i++
		case esc >= '0' && esc <= '7':
			v := int(esc - '0')
			i++
			for d := 0; d < 2 && i < len(b) && b[i] >= '0' && b[i] <= '7'; d++ {
				v = v<<3 | int(b[i]-'0')
				i++
			}
			if v <= 0xFF {
				out = append(out, byte(v))
			}
		default:
			out = append(out, esc)
			i++
		}
	}

	if utf8.Valid(out) {
		return string(out)
	}
	// Latin-1 maps every byte to a rune, so this decode cannot fail.
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(out)
	if err != nil {
		return string(out)
	}
	return string(s)
}
