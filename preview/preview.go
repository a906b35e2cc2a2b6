// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package preview renders aligned blocks for a terminal, optionally with
// syntax highlighting. Language detection uses go-enry and tokenising and
// formatting use Chroma.
package preview

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
	"golang.org/x/term"

	"github.com/framegrace/elastic/config"
)

const (
	defaultStyleName     = "catppuccin-mocha"
	defaultFormatterName = "terminal256"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options controls how a block is rendered.
type Options struct {
	// Filename and Language guide lexer selection. Language wins when set.
	Filename string
	Language string
	// Color enables highlighting.
	Color bool
	// Style and Formatter name a Chroma style and terminal formatter.
	Style     string
	Formatter string
}

// FromConfig fills style, formatter and colour from the preview section.
// out decides colour in auto mode.
func FromConfig(cfg config.Config, out *os.File) Options {
	return Options{
		Color:     ColorEnabled(cfg.GetString("preview", "color", ColorAuto), out),
		Style:     cfg.GetString("preview", "style", defaultStyleName),
		Formatter: cfg.GetString("preview", "formatter", defaultFormatterName),
	}
}

// ColorEnabled resolves a colour mode. In auto mode colour is used when f is
// a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// DetectLanguage guesses the language of a file from its name and content.
// It returns "" when unsure.
func DetectLanguage(filename string, content []byte) string {
	if filename == "" && len(content) == 0 {
		return ""
	}
	return enry.GetLanguage(filename, content)
}

// Highlight writes text to w. Without colour the text is written as is.
func Highlight(w io.Writer, text string, opts Options) error {
	if !opts.Color {
		_, err := io.WriteString(w, text)
		return err
	}

	lexer := chroma.Coalesce(resolveLexer(opts, text))
	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		log.Printf("[PREVIEW] Tokenise failed, writing plain text: %v", err)
		_, err = io.WriteString(w, text)
		return err
	}
	return resolveFormatter(opts.Formatter).Format(w, resolveStyle(opts.Style), it)
}

// resolveLexer picks a lexer by language name, then by filename, then by
// analysing the text.
func resolveLexer(opts Options, text string) chroma.Lexer {
	lang := opts.Language
	if lang == "" && opts.Filename != "" {
		lang = DetectLanguage(opts.Filename, []byte(text))
	}
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if opts.Filename != "" {
		if l := lexers.Match(opts.Filename); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// resolveStyle resolves a style name, falling back to the default.
func resolveStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	s := styles.Get(name)
	if s == styles.Fallback && !strings.EqualFold(name, styles.Fallback.Name) {
		log.Printf("[PREVIEW] Unknown style %q, using %s", name, defaultStyleName)
		return styles.Get(defaultStyleName)
	}
	return s
}

// resolveFormatter resolves a formatter name, falling back to the default.
func resolveFormatter(name string) chroma.Formatter {
	if name == "" {
		name = defaultFormatterName
	}
	if f, ok := formatters.Registry[name]; ok {
		return f
	}
	log.Printf("[PREVIEW] Unknown formatter %q, using %s", name, defaultFormatterName)
	return formatters.Get(defaultFormatterName)
}
