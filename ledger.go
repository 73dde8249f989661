package wallet

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/wallet/date"
	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned by Remove for a row index that does not exist.
var ErrIndexOutOfRange = errors.New("row index out of range")

// Ledger runs the wallet operations over a Store.
//
// Each operation reads the whole table from the store, and mutating
// operations write it back. Nothing is cached between calls.
type Ledger struct {
	store Store
	// Today returns the current date, used to default and bound entry dates.
	Today func() date.Date
}

// NewLedger creates a ledger on top of store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, Today: date.Today}
}

// Entries returns all entries in insertion order. An empty ledger returns a
// nil slice and no error.
func (l *Ledger) Entries() ([]Entry, error) {
	return l.store.Read()
}

// Add validates raw, appends the resulting entry and persists the ledger.
//
// A validation failure is returned as a *ValidationError and the store is
// left untouched.
func (l *Ledger) Add(raw RawEntry) (Entry, error) {
	e, err := Validate(raw, l.Today())
	if err != nil {
		return Entry{}, err
	}
	entries, err := l.Entries()
	if err != nil {
		return Entry{}, err
	}
	entries = append(entries, e)
	if err := l.store.Write(entries); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Balance returns the sum of incomes minus the sum of expenses.
func (l *Ledger) Balance() (decimal.Decimal, error) {
	entries, err := l.Entries()
	if err != nil {
		return decimal.Zero, err
	}
	return Balance(entries), nil
}

// BalanceOver returns the balance of the entries dated within r.
func (l *Ledger) BalanceOver(r date.Range) (decimal.Decimal, error) {
	entries, err := l.Entries()
	if err != nil {
		return decimal.Zero, err
	}
	return Balance(slices.DeleteFunc(entries, func(e Entry) bool { return !r.Contains(e.Date) })), nil
}

// Balance computes incomes minus expenses over entries.
func Balance(entries []Entry) decimal.Decimal {
	incomes, expenses := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Category {
		case Income:
			incomes = incomes.Add(decimal.NewFromFloat(e.Amount))
		case Expense:
			expenses = expenses.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return incomes.Sub(expenses)
}

// Remove deletes the entry at the zero-based index and persists the ledger.
// It returns the removed entry.
func (l *Ledger) Remove(index int) (Entry, error) {
	entries, err := l.Entries()
	if err != nil {
		return Entry{}, err
	}
	if index < 0 || index >= len(entries) {
		return Entry{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(entries))
	}
	removed := entries[index]
	entries = slices.Delete(entries, index, index+1)
	if err := l.store.Write(entries); err != nil {
		return Entry{}, err
	}
	return removed, nil
}
