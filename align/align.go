// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package align is a delimiter-based column aligner ("elastic tabstops").
// Given an ordered block of lines it picks a delimiter from the first line,
// splits every line that contains it into fields and rewrites the block so
// that corresponding fields line up. Lines without the delimiter pass through
// untouched.
//
// The package is pure: it performs no I/O, keeps no state between calls and
// is safe for concurrent use.
package align

import (
	"errors"
	"strings"
)

// LegacyMaxColumns is the historical column cap of the comma strategy. Columns
// past the cap are emitted verbatim, neither trimmed nor padded.
const LegacyMaxColumns = 42

var (
	// ErrNoDelimiter is returned when the first line contains none of the
	// candidate delimiters. The caller must leave its text untouched.
	ErrNoDelimiter = errors.New("align: no eligible delimiter")
	// ErrTooFewLines is returned for blocks of fewer than two lines.
	ErrTooFewLines = errors.New("align: need at least two lines")
)

// IsNoOp reports whether err asks the caller to skip the edit.
func IsNoOp(err error) bool {
	return errors.Is(err, ErrNoDelimiter) || errors.Is(err, ErrTooFewLines)
}

// Options tunes an Aligner.
type Options struct {
	// MaxColumns caps the number of tracked columns for the comma strategy.
	// Zero means unbounded.
	MaxColumns int
}

// Result is a realigned block.
type Result struct {
	// Text is the replacement for the byte range covering all input lines,
	// without the block's trailing terminator.
	Text string
	// Delimiter is the delimiter chosen from the first line.
	Delimiter Delimiter
	// Rewritten counts the lines that contained the delimiter.
	Rewritten int
}

// Aligner realigns blocks of lines.
type Aligner struct {
	opts Options
}

// New creates an Aligner. Negative column caps are treated as unbounded.
func New(opts Options) *Aligner {
	if opts.MaxColumns < 0 {
		opts.MaxColumns = 0
	}
	return &Aligner{opts: opts}
}

var defaultAligner = New(Options{})

// Align realigns lines with an unbounded column table.
func Align(lines []string) (Result, error) {
	return defaultAligner.Align(lines)
}

// AlignText splits text with SplitLines and realigns it.
func AlignText(text string) (Result, error) {
	return defaultAligner.Align(SplitLines(text))
}

// Options returns the options the Aligner was built with.
func (a *Aligner) Options() Options {
	return a.opts
}

// Align realigns lines. Each line may carry its own terminator. On success
// the output has exactly as many lines as the input, in the same order.
func (a *Aligner) Align(lines []string) (Result, error) {
	if len(lines) < 2 {
		return Result{}, ErrTooFewLines
	}
	delim, ok := Detect(lines[0])
	if !ok {
		return Result{}, ErrNoDelimiter
	}

	var out []string
	var rewritten int
	switch delim.Strategy {
	case MultiField:
		out, rewritten = alignColumns(lines, delim.Token, a.opts.MaxColumns)
	default:
		out, rewritten = alignKeys(lines, delim.Token)
	}

	return Result{
		Text:      join(out),
		Delimiter: delim,
		Rewritten: rewritten,
	}, nil
}

// join concatenates lines and drops the terminator of the last line. An
// empty last line stays a line of its own.
func join(lines []string) string {
	var b strings.Builder
	last := len(lines) - 1
	for i, ln := range lines {
		if i == last {
			ln = trimTerminator(ln)
		}
		b.WriteString(ln)
	}
	return b.String()
}
