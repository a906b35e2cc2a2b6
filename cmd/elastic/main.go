// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/elastic/main.go
// Summary: Command line host for the elastic tabstop aligner.
// Usage: elastic [-lines FROM:TO] [-w | -check | -preview] [-save-config] [file]

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/framegrace/elastic/command"
	"github.com/framegrace/elastic/config"
	"github.com/framegrace/elastic/document"
	"github.com/framegrace/elastic/preview"
)

var errNotAligned = errors.New("input is not aligned")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("elastic", flag.ContinueOnError)
	fs.SetOutput(stderr)

	lines := fs.String("lines", "", "Line range FROM:TO to align, 1-based and inclusive (default: whole input)")
	write := fs.Bool("w", false, "Write the result back to the file instead of stdout")
	showPreview := fs.Bool("preview", false, "Print only the aligned lines, highlighted")
	colorMode := fs.String("color", "", "Preview colour: auto, always or never (default from config)")
	style := fs.String("style", "", "Chroma style for previews (default from config)")
	maxColumns := fs.Int("max-columns", -1, "Column cap for comma alignment, 0 for unbounded (default from config)")
	check := fs.Bool("check", false, "Report whether the input is aligned and write nothing")
	saveConfig := fs.Bool("save-config", false, "Store the effective settings in the default config file and exit")
	configPath := fs.String("config", "", "Config file (default: $XDG_CONFIG_HOME/elastic/elastic.json)")
	verbose := fs.Bool("v", false, "Log to stderr")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	log.SetOutput(io.Discard)
	if *verbose {
		log.SetOutput(stderr)
	}

	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	filename := fs.Arg(0)
	if *write && (filename == "" || filename == "-") {
		return errors.New("-w needs a file argument")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *maxColumns >= 0 {
		cfg.Set("align", "max_columns", *maxColumns)
	}
	if *colorMode != "" {
		cfg.Set("preview", "color", *colorMode)
	}
	if *style != "" {
		cfg.Set("preview", "style", *style)
	}
	if *saveConfig {
		config.Set(cfg)
		if err := config.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		if path, err := config.Path(); err == nil {
			log.Printf("[ELASTIC] Saved config to %s", path)
		}
		return nil
	}

	input, err := readInput(filename, stdin)
	if err != nil {
		return err
	}

	doc := document.New(string(input))
	sel, err := selectRange(doc, *lines)
	if err != nil {
		return err
	}

	cmd, err := command.Build(command.FormatLinesID, cfg)
	if err != nil {
		return err
	}
	history := document.NewHistory(doc)
	out, err := cmd.Perform(history, sel)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	if out.Skipped != nil {
		log.Printf("[ELASTIC] Nothing to align: %v", out.Skipped)
	}

	switch {
	case *check:
		if !out.Changed {
			return nil
		}
		if _, err := history.Undo(); err != nil {
			return err
		}
		return errNotAligned
	case *showPreview:
		block := doc.Text()[doc.LineStartOffset(out.First):doc.LineEndOffset(out.Last)] + "\n"
		opts := preview.FromConfig(cfg, asFile(stdout))
		opts.Filename = filename
		return preview.Highlight(stdout, block, opts)
	case *write:
		if !out.Changed {
			return nil
		}
		return writeFile(filename, doc.Text())
	default:
		_, err := io.WriteString(stdout, doc.Text())
		return err
	}
}

// loadConfig returns a private copy of the config so flag overrides never
// leak into the shared store.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Clone(config.System())
	if err := config.Err(); err != nil {
		log.Printf("[ELASTIC] Using defaults, config unreadable: %v", err)
	}
	return cfg, nil
}

func readInput(filename string, stdin io.Reader) ([]byte, error) {
	if filename == "" || filename == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return data, nil
}

func writeFile(filename, text string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	log.Printf("[ELASTIC] Wrote %s", filename)
	return nil
}

// selectRange turns a FROM:TO argument into a selection. Either bound may be
// omitted; an empty argument selects the whole document.
func selectRange(doc *document.Document, arg string) (document.Selection, error) {
	if arg == "" {
		return document.Selection{Start: 0, End: doc.Len()}, nil
	}
	from, to, found := strings.Cut(arg, ":")
	if !found {
		to = from
	}
	first, err := parseBound(from, 1)
	if err != nil {
		return document.Selection{}, fmt.Errorf("invalid -lines %q: %w", arg, err)
	}
	last, err := parseBound(to, doc.LineCount())
	if err != nil {
		return document.Selection{}, fmt.Errorf("invalid -lines %q: %w", arg, err)
	}
	if last > doc.LineCount() {
		last = doc.LineCount()
	}
	if first > last {
		return document.Selection{}, fmt.Errorf("invalid -lines %q: start after end", arg)
	}
	return document.SelectLines(doc, first-1, last-1), nil
}

func parseBound(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("line %d out of range", n)
	}
	return n, nil
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
