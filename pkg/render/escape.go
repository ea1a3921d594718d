// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-sshfixture.
//
// go-sshfixture is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package render

import "strings"

// EscapeLines splits encoded key text into lines, terminators included, and
// returns one double-quoted literal per line. Concatenating the unescaped
// segments reproduces the input byte-for-byte, trailing newline included.
//
// Only backslashes and newlines become escape tokens. Double quotes pass
// through untouched: segments never contain literal line breaks, so the
// concatenation format has no further characters to protect.
func EscapeLines(text string) []string {
	var segments []string
	for len(text) > 0 {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i+1], text[i+1:]
		} else {
			line, text = text, ""
		}
		segments = append(segments, `"`+escapeLine(line)+`"`)
	}
	return segments
}

func escapeLine(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 2)
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(line[i])
		}
	}
	return b.String()
}
