// Package workflow implements the guarded clear-month state machine.
package workflow

import (
	apperrors "github.com/noamashri/workhours/internal/errors"
	"github.com/noamashri/workhours/internal/model"
	"github.com/noamashri/workhours/internal/storage"
)

// State of the clear-month workflow.
type State int

const (
	// Idle means no destructive action is armed.
	Idle State = iota
	// ConfirmPending means a clear has been requested and is waiting
	// for an explicit confirmation or a dismissal.
	ConfirmPending
)

// ClearMonth guards bulk deletion behind a two-step confirmation so a
// single accidental activation can never remove a month of entries.
type ClearMonth struct {
	state     State
	yearMonth string
	store     *storage.EntryStore
}

// NewClearMonth creates an idle clear workflow over the given store.
func NewClearMonth(store *storage.EntryStore) *ClearMonth {
	return &ClearMonth{store: store}
}

// State returns the current workflow state.
func (w *ClearMonth) State() State {
	return w.state
}

// YearMonth returns the armed month, empty while idle.
func (w *ClearMonth) YearMonth() string {
	if w.state != ConfirmPending {
		return ""
	}
	return w.yearMonth
}

// Request arms the workflow for the given month. It takes no
// destructive action by itself.
func (w *ClearMonth) Request(yearMonth string) {
	w.yearMonth = yearMonth
	w.state = ConfirmPending
}

// Confirm removes every entry in the armed month, persists the
// remainder and disarms the workflow. It returns the surviving snapshot
// and the removed count. Confirming while idle is rejected.
func (w *ClearMonth) Confirm() ([]model.Entry, int, error) {
	if w.state != ConfirmPending {
		return nil, 0, apperrors.ErrNoPendingClear
	}
	w.state = Idle
	return w.store.ClearMonth(w.yearMonth)
}

// Cancel disarms the workflow without touching the store. Every
// interaction read as a dismissal routes through here.
func (w *ClearMonth) Cancel() {
	w.state = Idle
}
