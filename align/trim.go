// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package align

import (
	"strings"
	"unicode/utf8"
)

// blank reports whether r is a space or a control character. Terminators
// count as blank.
func blank(r rune) bool {
	return r <= ' '
}

// TrimEnd removes trailing characters whose code point is <= U+0020.
// Leading whitespace is kept.
func TrimEnd(s string) string {
	return strings.TrimRightFunc(s, blank)
}

// trim removes blanks from both ends.
func trim(s string) string {
	return strings.TrimFunc(s, blank)
}

// width is the column width of s, in runes.
func width(s string) int {
	return utf8.RuneCountInString(s)
}

// pad right-pads s with spaces to w runes.
func pad(s string, w int) string {
	if n := w - width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
