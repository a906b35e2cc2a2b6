// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"errors"
	"testing"

	"github.com/framegrace/elastic/align"
	"github.com/framegrace/elastic/config"
	"github.com/framegrace/elastic/document"
)

func TestFormatLines_AlignsSelection(t *testing.T) {
	d := document.New("header\nx = 1\nlongname = 2\nfooter\n")
	h := document.NewHistory(d)
	cmd := NewFormatLines(nil)

	sel := document.SelectLines(d, 1, 2)
	if !cmd.Enabled(d, sel) {
		t.Fatalf("expected command to be enabled")
	}
	out, err := cmd.Perform(h, sel)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if !out.Changed || out.Rewritten != 2 || out.First != 1 || out.Last != 2 {
		t.Fatalf("unexpected outcome %+v", out)
	}
	want := "header\nx        = 1\nlongname = 2\nfooter\n"
	if got := d.Text(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	name, err := h.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if name != FormatLinesName {
		t.Errorf("transaction name: got %q", name)
	}
	if got := d.Text(); got != "header\nx = 1\nlongname = 2\nfooter\n" {
		t.Fatalf("after undo: %q", got)
	}
}

func TestFormatLines_KeepsTrailingNewlineOfWholeDocument(t *testing.T) {
	text := "a, bb, c\naaa, b, cc\n"
	d := document.New(text)
	h := document.NewHistory(d)
	cmd := NewFormatLines(nil)

	if _, err := cmd.Perform(h, document.Selection{Start: 0, End: len(text)}); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if got, want := d.Text(), "a  , bb, c\naaa, b , cc\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatLines_NoDelimiterLeavesDocument(t *testing.T) {
	text := "foo\nbar\n"
	d := document.New(text)
	h := document.NewHistory(d)

	out, err := NewFormatLines(nil).Perform(h, document.Selection{Start: 0, End: len(text)})
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if out.Changed || !errors.Is(out.Skipped, align.ErrNoDelimiter) {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if d.Text() != text || h.CanUndo() {
		t.Fatalf("document must be untouched")
	}
}

func TestFormatLines_SingleLineSelectionIsDisabled(t *testing.T) {
	d := document.New("x = 1\nyy = 2\n")
	h := document.NewHistory(d)
	cmd := NewFormatLines(nil)
	sel := document.Selection{Start: 0, End: 3}
	if cmd.Enabled(d, sel) {
		t.Fatalf("single line selection must be disabled")
	}
	out, err := cmd.Perform(h, sel)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if out.Changed || !errors.Is(out.Skipped, align.ErrTooFewLines) {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestFormatLines_AlreadyAlignedRecordsNothing(t *testing.T) {
	text := "x        = 1\nlongname = 2"
	d := document.New(text)
	h := document.NewHistory(d)
	out, err := NewFormatLines(nil).Perform(h, document.Selection{Start: 0, End: len(text)})
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if out.Changed || h.CanUndo() {
		t.Fatalf("aligned text must not create a transaction: %+v", out)
	}
}

func TestFormatLines_NoHistory(t *testing.T) {
	if _, err := NewFormatLines(nil).Perform(nil, document.Selection{}); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestBuild_FormatLinesFromConfig(t *testing.T) {
	cfg := config.Config{"align": map[string]interface{}{"max_columns": float64(2)}}
	cmd, err := Build(FormatLinesID, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fl, ok := cmd.(*FormatLines)
	if !ok {
		t.Fatalf("expected *FormatLines, got %T", cmd)
	}
	if got := fl.aligner.Options().MaxColumns; got != 2 {
		t.Fatalf("MaxColumns: got %d, want 2", got)
	}
	if cmd.Name() != FormatLinesName {
		t.Fatalf("Name: got %q", cmd.Name())
	}
}

func TestBuild_Unknown(t *testing.T) {
	_, err := Build("no-such-command", nil)
	var unknown *UnknownError
	if !errors.As(err, &unknown) || unknown.ID != "no-such-command" {
		t.Fatalf("expected UnknownError, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	Register(FormatLinesID, nil)
}

func TestIDs(t *testing.T) {
	ids := IDs()
	found := false
	for _, id := range ids {
		if id == FormatLinesID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q in %v", FormatLinesID, ids)
	}
}
