// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package align

import "strings"

// Strategy selects the padding algorithm for a delimiter.
type Strategy int

const (
	// SingleSplit pads only the key in front of the first delimiter.
	SingleSplit Strategy = iota
	// MultiField pads every field except the last.
	MultiField
)

func (s Strategy) String() string {
	switch s {
	case SingleSplit:
		return "single-split"
	case MultiField:
		return "multi-field"
	}
	return "unknown"
}

// Delimiter pairs a literal token with its strategy.
type Delimiter struct {
	Token    string
	Strategy Strategy
}

// Candidates lists the delimiters in priority order.
var Candidates = []Delimiter{
	{"=", SingleSplit},
	{":", SingleSplit},
	{"as", SingleSplit},
	{"import", SingleSplit},
	{",", MultiField},
}

// Detect returns the first candidate contained in line.
func Detect(line string) (Delimiter, bool) {
	for _, d := range Candidates {
		if strings.Contains(line, d.Token) {
			return d, true
		}
	}
	return Delimiter{}, false
}
