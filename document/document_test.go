// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package document

import (
	"errors"
	"testing"
)

func TestLineGeometry(t *testing.T) {
	d := New("ab\r\ncd\nef")
	if got := d.LineCount(); got != 3 {
		t.Fatalf("LineCount: got %d, want 3", got)
	}
	tests := []struct {
		line, start, end, sep int
		text                  string
	}{
		{0, 0, 2, 2, "ab\r\n"},
		{1, 4, 6, 1, "cd\n"},
		{2, 7, 9, 0, "ef"},
	}
	for _, tt := range tests {
		if got := d.LineStartOffset(tt.line); got != tt.start {
			t.Errorf("line %d start: got %d, want %d", tt.line, got, tt.start)
		}
		if got := d.LineEndOffset(tt.line); got != tt.end {
			t.Errorf("line %d end: got %d, want %d", tt.line, got, tt.end)
		}
		if got := d.LineSeparatorLength(tt.line); got != tt.sep {
			t.Errorf("line %d separator: got %d, want %d", tt.line, got, tt.sep)
		}
		if got := d.Line(tt.line); got != tt.text {
			t.Errorf("line %d text: got %q, want %q", tt.line, got, tt.text)
		}
	}
}

func TestTrailingTerminatorAddsEmptyLine(t *testing.T) {
	d := New("a\nb\n")
	if got := d.LineCount(); got != 3 {
		t.Fatalf("LineCount: got %d, want 3", got)
	}
	if got := d.Line(2); got != "" {
		t.Fatalf("last line: got %q, want empty", got)
	}
	if got := New("").LineCount(); got != 1 {
		t.Fatalf("empty document LineCount: got %d, want 1", got)
	}
}

func TestLineNumber(t *testing.T) {
	d := New("ab\ncd\n")
	tests := map[int]int{0: 0, 2: 0, 3: 1, 5: 1, 6: 2, 100: 2, -1: 0}
	for off, want := range tests {
		if got := d.LineNumber(off); got != want {
			t.Errorf("LineNumber(%d) = %d, want %d", off, got, want)
		}
	}
}

func TestLines(t *testing.T) {
	d := New("a\nb\nc")
	got := d.Lines(1, 5)
	if len(got) != 2 || got[0] != "b\n" || got[1] != "c" {
		t.Fatalf("Lines: got %q", got)
	}
}

func TestReplaceAndInverse(t *testing.T) {
	d := New("x = 1\nyy = 2\n")
	e, err := d.Replace(0, 5, "x  = 1")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := d.Text(); got != "x  = 1\nyy = 2\n" {
		t.Fatalf("after replace: %q", got)
	}
	if err := d.Apply(e.Inverse()); err != nil {
		t.Fatalf("Apply inverse: %v", err)
	}
	if got := d.Text(); got != "x = 1\nyy = 2\n" {
		t.Fatalf("after inverse: %q", got)
	}
}

func TestReplaceOutOfRange(t *testing.T) {
	d := New("abc")
	for _, r := range [][2]int{{-1, 1}, {2, 1}, {0, 4}} {
		if _, err := d.Replace(r[0], r[1], ""); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Replace(%d,%d): expected ErrOutOfRange, got %v", r[0], r[1], err)
		}
	}
}

func TestApplyConflict(t *testing.T) {
	d := New("abc")
	err := d.Apply(Edit{Offset: 0, Old: "zz", New: "y"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSelectionSpans(t *testing.T) {
	d := New("a\nb\nc\n")
	tests := []struct {
		sel         Selection
		first, last int
		multi       bool
	}{
		{Selection{0, 1}, 0, 0, false},
		{Selection{0, 2}, 0, 0, false},
		{Selection{0, 3}, 0, 1, true},
		{Selection{0, 4}, 0, 1, true},
		{Selection{0, 6}, 0, 2, true},
		{Selection{3, 0}, 0, 1, false},
		{Selection{2, 2}, 1, 1, false},
	}
	for _, tt := range tests {
		first, last := tt.sel.Spans(d)
		if first != tt.first || last != tt.last {
			t.Errorf("Spans(%v) = %d,%d, want %d,%d", tt.sel, first, last, tt.first, tt.last)
		}
		if got := tt.sel.MultiLine(d); got != tt.multi {
			t.Errorf("MultiLine(%v) = %v, want %v", tt.sel, got, tt.multi)
		}
	}
}

func TestSelectLines(t *testing.T) {
	d := New("a\nbb\nc\n")
	sel := SelectLines(d, 1, 2)
	if sel.Start != 2 || sel.End != 6 {
		t.Fatalf("SelectLines: got %+v", sel)
	}
}
