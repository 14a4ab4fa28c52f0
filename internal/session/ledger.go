package session

import (
	"github.com/google/uuid"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// PendingKind says what a staged entry will become once confirmed.
type PendingKind int

const (
	PendingExpenses PendingKind = iota
	PendingIncome
)

// Pending is a set of extracted entries waiting for the user's yes or no.
// Exactly one of Items or Income is populated depending on Kind.
type Pending struct {
	ID       uuid.UUID
	Kind     PendingKind
	Items    []domain.ExpenseItem
	Income   *domain.IncomeItem
	StagedAt domain.Instant
}

// Ledger holds at most one Pending per user. Staging a new entry while one
// is already pending replaces it: the newest extraction is the one the
// confirmation prompt on screen describes.
type Ledger struct {
	store *Store[Pending]
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{store: NewStore[Pending]()}
}

// StageExpenses stages extracted expenses for confirmation and returns the
// staged entry.
func (l *Ledger) StageExpenses(userID int64, items []domain.ExpenseItem) Pending {
	p := Pending{
		ID:       uuid.New(),
		Kind:     PendingExpenses,
		Items:    items,
		StagedAt: domain.NowInstant(),
	}
	l.store.Set(userID, p)
	return p
}

// StageIncome stages an extracted income for confirmation.
func (l *Ledger) StageIncome(userID int64, item domain.IncomeItem) Pending {
	p := Pending{
		ID:       uuid.New(),
		Kind:     PendingIncome,
		Income:   &item,
		StagedAt: domain.NowInstant(),
	}
	l.store.Set(userID, p)
	return p
}

// Get returns the pending entry without removing it.
func (l *Ledger) Get(userID int64) (Pending, bool) {
	return l.store.Get(userID)
}

// Has reports whether the user has an entry awaiting confirmation.
func (l *Ledger) Has(userID int64) bool {
	_, ok := l.store.Get(userID)
	return ok
}

// Take removes and returns the user's pending entry. Both confirm and reject
// go through Take, so a decision always clears the slot.
func (l *Ledger) Take(userID int64) (Pending, bool) {
	return l.store.Take(userID)
}

// Drop discards the user's pending entry if any.
func (l *Ledger) Drop(userID int64) {
	l.store.Delete(userID)
}
