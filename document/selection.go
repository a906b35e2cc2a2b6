// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package document

// Selection is a byte range [Start, End) in a document.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection covers nothing.
func (s Selection) Empty() bool {
	return s.End <= s.Start
}

// Spans returns the first and last line touched by the selection. A
// selection ending exactly at the start of a line does not touch that line.
func (s Selection) Spans(d *Document) (first, last int) {
	start, end := s.Start, s.End
	if end < start {
		start, end = end, start
	}
	first, last = d.LineNumber(start), d.LineNumber(end)
	if last > first && end == d.LineStartOffset(last) {
		last--
	}
	return first, last
}

// MultiLine reports whether the selection spans more than one line.
func (s Selection) MultiLine(d *Document) bool {
	if s.Empty() {
		return false
	}
	first, last := s.Spans(d)
	return last > first
}

// SelectLines returns a selection from the start of first to the end of
// last.
func SelectLines(d *Document, first, last int) Selection {
	return Selection{Start: d.LineStartOffset(first), End: d.LineEndOffset(last)}
}
