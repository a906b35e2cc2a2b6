// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package command provides editor commands that run against a document
// selection. Commands self-register at init time and are looked up by id,
// so hosts can build them from config without importing each one.
package command

import (
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/framegrace/elastic/config"
	"github.com/framegrace/elastic/document"
)

// ErrNoHistory is returned when a command runs without a document history.
var ErrNoHistory = errors.New("command: no document history")

// Command is an undoable editor command.
type Command interface {
	// Name is the user-visible title, also used for the undo transaction.
	Name() string
	// Enabled reports whether the command applies to sel.
	Enabled(d *document.Document, sel document.Selection) bool
	// Perform runs the command in a single history transaction.
	Perform(h *document.History, sel document.Selection) (Outcome, error)
}

// Outcome describes what a command did.
type Outcome struct {
	// Changed is false when the document was left untouched.
	Changed bool
	// Skipped holds the no-op reason when Changed is false.
	Skipped error
	// First and Last are the lines the command covered.
	First, Last int
	// Rewritten counts the lines that were rebuilt.
	Rewritten int
	// Detail is a short command-specific note for logs.
	Detail string
}

// Factory creates a Command from config.
type Factory func(config.Config) (Command, error)

// --- Registry ---

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a command factory to the global registry.
// Panics on duplicate registration.
func Register(id string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[id]; exists {
		panic("command: duplicate registration for " + id)
	}
	registry[id] = factory
}

// Lookup returns the factory for a given command ID.
func Lookup(id string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[id]
	return f, ok
}

// IDs returns the registered command IDs, sorted.
func IDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Build looks up id and creates the command from cfg.
func Build(id string, cfg config.Config) (Command, error) {
	factory, found := Lookup(id)
	if !found {
		log.Printf("[COMMAND] Unknown command %q", id)
		return nil, &UnknownError{ID: id}
	}
	cmd, err := factory(cfg)
	if err != nil {
		log.Printf("[COMMAND] Failed to create %q: %v", id, err)
		return nil, err
	}
	return cmd, nil
}

// UnknownError reports a lookup of an unregistered command.
type UnknownError struct {
	ID string
}

func (e *UnknownError) Error() string {
	return "command: unknown command " + e.ID
}
