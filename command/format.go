// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"log"

	"github.com/framegrace/elastic/align"
	"github.com/framegrace/elastic/config"
	"github.com/framegrace/elastic/document"
)

// FormatLinesID is the registry id of the format command.
const FormatLinesID = "format-lines"

// FormatLinesName is the title of the format command.
const FormatLinesName = "Format Lines with Elastic Tabs"

func init() {
	Register(FormatLinesID, func(cfg config.Config) (Command, error) {
		maxCols := cfg.GetInt("align", "max_columns", 0)
		return NewFormatLines(align.New(align.Options{MaxColumns: maxCols})), nil
	})
}

// Compile-time interface verification.
var _ Command = (*FormatLines)(nil)

// FormatLines aligns the lines touched by a selection on a shared
// delimiter.
type FormatLines struct {
	aligner *align.Aligner
}

// NewFormatLines creates the command. A nil aligner uses the defaults.
func NewFormatLines(a *align.Aligner) *FormatLines {
	if a == nil {
		a = align.New(align.Options{})
	}
	return &FormatLines{aligner: a}
}

// Name implements Command.
func (f *FormatLines) Name() string {
	return FormatLinesName
}

// Enabled implements Command. The selection must span more than one line.
func (f *FormatLines) Enabled(d *document.Document, sel document.Selection) bool {
	return d != nil && sel.MultiLine(d)
}

// Perform implements Command. The lines are replaced in one edit covering
// the start of the first line to the end of the last, excluding the last
// line's terminator.
func (f *FormatLines) Perform(h *document.History, sel document.Selection) (Outcome, error) {
	if h == nil || h.Document() == nil {
		return Outcome{}, ErrNoHistory
	}
	d := h.Document()
	first, last := sel.Spans(d)
	out := Outcome{First: first, Last: last}

	if !f.Enabled(d, sel) {
		out.Skipped = align.ErrTooFewLines
		log.Printf("[FORMAT] Skipping lines %d-%d: %v", first, last, out.Skipped)
		return out, nil
	}

	res, err := f.aligner.Align(d.Lines(first, last))
	if err != nil {
		if align.IsNoOp(err) {
			out.Skipped = err
			log.Printf("[FORMAT] Skipping lines %d-%d: %v", first, last, err)
			return out, nil
		}
		return out, err
	}
	out.Rewritten = res.Rewritten
	out.Detail = res.Delimiter.Token + " (" + res.Delimiter.Strategy.String() + ")"

	start, end := d.LineStartOffset(first), d.LineEndOffset(last)
	if d.Text()[start:end] == res.Text {
		log.Printf("[FORMAT] Lines %d-%d already aligned on %q", first, last, res.Delimiter.Token)
		return out, nil
	}

	err = h.Do(f.Name(), func(d *document.Document) ([]document.Edit, error) {
		e, err := d.Replace(start, end, res.Text)
		if err != nil {
			return nil, err
		}
		return []document.Edit{e}, nil
	})
	if err != nil {
		return out, err
	}
	out.Changed = true
	log.Printf("[FORMAT] Aligned lines %d-%d on %q, %d rewritten", first, last, res.Delimiter.Token, res.Rewritten)
	return out, nil
}
