// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package align

import "strings"

// SplitLines splits text into lines, each keeping its own terminator
// ("\n", "\r\n" or a lone "\r"). Concatenating the result yields text.
// An empty string has no lines.
func SplitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}
		end := i + 1
		if text[i] == '\r' && end < len(text) && text[end] == '\n' {
			end++
		}
		lines = append(lines, text[:end])
		text = text[end:]
	}
	return lines
}

// TerminatorLength returns the length of line's trailing terminator.
func TerminatorLength(line string) int {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return 2
	case strings.HasSuffix(line, "\n"), strings.HasSuffix(line, "\r"):
		return 1
	}
	return 0
}

// trimTerminator drops one trailing terminator, if any.
func trimTerminator(s string) string {
	return s[:len(s)-TerminatorLength(s)]
}
