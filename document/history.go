// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package document

import (
	"errors"
	"sync"
)

// ErrNothingToUndo is returned by Undo on an empty history.
var ErrNothingToUndo = errors.New("nothing to undo")

// Transaction is a named group of edits undone as one unit.
type Transaction struct {
	Name  string
	Edits []Edit
}

// History records undoable transactions for one document.
type History struct {
	mu   sync.Mutex
	doc  *Document
	undo []Transaction
}

// NewHistory creates a history for d.
func NewHistory(d *Document) *History {
	return &History{doc: d}
}

// Document returns the document the history edits.
func (h *History) Document() *Document {
	return h.doc
}

// Do runs fn as one transaction. fn returns the edits it applied, in order.
// If fn fails, those edits are rolled back and nothing is recorded. A
// transaction without edits is not recorded either.
func (h *History) Do(name string, fn func(d *Document) ([]Edit, error)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	edits, err := fn(h.doc)
	if err != nil {
		if rbErr := h.revert(edits); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	if len(edits) == 0 {
		return nil
	}
	h.undo = append(h.undo, Transaction{Name: name, Edits: edits})
	return nil
}

// Undo reverts the last transaction and returns its name.
func (h *History) Undo() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return "", ErrNothingToUndo
	}
	tx := h.undo[len(h.undo)-1]
	if err := h.revert(tx.Edits); err != nil {
		return "", err
	}
	h.undo = h.undo[:len(h.undo)-1]
	return tx.Name, nil
}

// CanUndo reports whether a transaction can be undone.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// revert applies the inverses of edits in reverse order.
func (h *History) revert(edits []Edit) error {
	for i := len(edits) - 1; i >= 0; i-- {
		if err := h.doc.Apply(edits[i].Inverse()); err != nil {
			return err
		}
	}
	return nil
}
