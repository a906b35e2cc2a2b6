// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package align

import "strings"

// splitKey splits line at the first delim. The value keeps any later
// occurrences of delim verbatim.
func splitKey(line, delim string) (key, value string) {
	k, v, _ := strings.Cut(line, delim)
	return TrimEnd(k), trim(v)
}

// alignKeys is the single-split strategy: only the key column is padded and
// the value after the delimiter stays one unit. Lines are rebuilt as
// "key<pad> <delim> value" with trailing blanks removed, so an empty value
// yields "key =" rather than "key = ".
func alignKeys(lines []string, delim string) ([]string, int) {
	type entry struct {
		key, value string
		ok         bool
	}
	entries := make([]entry, len(lines))
	maxKey := 0
	for i, ln := range lines {
		if !strings.Contains(ln, delim) {
			continue
		}
		k, v := splitKey(ln, delim)
		entries[i] = entry{key: k, value: v, ok: true}
		if w := width(k); w > maxKey {
			maxKey = w
		}
	}

	out := make([]string, len(lines))
	rewritten := 0
	for i, e := range entries {
		if !e.ok {
			out[i] = lines[i]
			continue
		}
		rebuilt := pad(e.key, maxKey) + " " + delim + " " + e.value
		out[i] = TrimEnd(rebuilt) + "\n"
		rewritten++
	}
	return out, rewritten
}
