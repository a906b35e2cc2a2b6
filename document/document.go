// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package document models the editor surface the format action runs
// against: a text with line boundaries, a selection, and undoable edits.

package document

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/framegrace/elastic/align"
)

// Errors returned by document operations.
var (
	ErrOutOfRange = errors.New("offset out of range")
	ErrConflict   = errors.New("edit does not match document text")
)

// Document is a text split into lines. Offsets are byte offsets. A document
// whose text is empty or ends with a terminator has an empty last line,
// like an editor buffer.
type Document struct {
	mu     sync.RWMutex
	text   string
	starts []int // start offset of each line
}

// New creates a Document holding text.
func New(text string) *Document {
	d := &Document{}
	d.reset(text)
	return d
}

func (d *Document) reset(text string) {
	d.text = text
	d.starts = d.starts[:0]
	off := 0
	for _, ln := range align.SplitLines(text) {
		d.starts = append(d.starts, off)
		off += len(ln)
	}
	if len(text) == 0 || align.TerminatorLength(text) > 0 {
		d.starts = append(d.starts, len(text))
	}
}

// Text returns the current text.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// Len returns the text length in bytes.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.text)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.starts)
}

// LineNumber returns the line containing offset. Offsets past the end map
// to the last line.
func (d *Document) LineNumber(offset int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lineNumberLocked(offset)
}

func (d *Document) lineNumberLocked(offset int) int {
	n := sort.Search(len(d.starts), func(i int) bool { return d.starts[i] > offset })
	if n == 0 {
		return 0
	}
	return n - 1
}

// LineStartOffset returns the offset of the first byte of line.
func (d *Document) LineStartOffset(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	start, _, _ := d.boundsLocked(line)
	return start
}

// LineEndOffset returns the offset just past the content of line, before
// its terminator.
func (d *Document) LineEndOffset(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, end, _ := d.boundsLocked(line)
	return end
}

// LineSeparatorLength returns the length of the terminator of line, 0 for
// the last line of a text without a trailing terminator.
func (d *Document) LineSeparatorLength(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, end, next := d.boundsLocked(line)
	return next - end
}

// Line returns line including its terminator.
func (d *Document) Line(line int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	start, _, next := d.boundsLocked(line)
	return d.text[start:next]
}

// Lines returns lines first..last inclusive, each with its terminator.
func (d *Document) Lines(first, last int) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if first < 0 {
		first = 0
	}
	if last >= len(d.starts) {
		last = len(d.starts) - 1
	}
	var out []string
	for i := first; i <= last; i++ {
		start, _, next := d.boundsLocked(i)
		out = append(out, d.text[start:next])
	}
	return out
}

// boundsLocked returns the start, content end and next line start of line.
// Out of range lines are clamped.
func (d *Document) boundsLocked(line int) (start, end, next int) {
	if line < 0 {
		line = 0
	}
	if line >= len(d.starts) {
		line = len(d.starts) - 1
	}
	start = d.starts[line]
	next = len(d.text)
	if line+1 < len(d.starts) {
		next = d.starts[line+1]
	}
	end = next - align.TerminatorLength(d.text[start:next])
	return start, end, next
}

// Replace substitutes text for the byte range [start, end) and returns the
// applied edit.
func (d *Document) Replace(start, end int, text string) (Edit, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if start < 0 || end < start || end > len(d.text) {
		return Edit{}, fmt.Errorf("replace [%d,%d) in %d bytes: %w", start, end, len(d.text), ErrOutOfRange)
	}
	e := Edit{Offset: start, Old: d.text[start:end], New: text}
	d.reset(d.text[:start] + text + d.text[end:])
	return e, nil
}

// Apply performs e. The text at e.Offset must match e.Old.
func (d *Document) Apply(e Edit) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	end := e.Offset + len(e.Old)
	if e.Offset < 0 || end > len(d.text) {
		return fmt.Errorf("apply at %d: %w", e.Offset, ErrOutOfRange)
	}
	if d.text[e.Offset:end] != e.Old {
		return fmt.Errorf("apply at %d: %w", e.Offset, ErrConflict)
	}
	d.reset(d.text[:e.Offset] + e.New + d.text[end:])
	return nil
}

// Edit is a single replacement.
type Edit struct {
	Offset int
	Old    string
	New    string
}

// Inverse returns the edit that undoes e.
func (e Edit) Inverse() Edit {
	return Edit{Offset: e.Offset, Old: e.New, New: e.Old}
}
