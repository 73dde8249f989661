package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/wallet/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLedger returns a ledger on an initialized file in a temp dir, with a fixed today.
func newTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallet.csv")
	store := NewFileStore(path)
	require.NoError(t, store.Init())
	l := NewLedger(store)
	l.Today = func() date.Date { return today }
	return l, path
}

func mustAdd(t *testing.T, l *Ledger, cat Category, amount, desc string) Entry {
	t.Helper()
	e, err := l.Add(RawEntry{Category: cat, Amount: amount, Description: desc})
	require.NoError(t, err)
	return e
}

func TestLedger_AddThenEntries(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, Income, "100", "first")

	added, err := l.Add(RawEntry{Date: "2025-01-31", Category: Expense, Amount: "19.99", Description: "books"})
	require.NoError(t, err)

	entries, err := l.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	last := entries[len(entries)-1]
	assert.Equal(t, added, last)
	assert.Equal(t, Entry{Date: date.MustParse("2025-01-31"), Category: Expense, Amount: 19.99, Description: "Books"}, last)
}

func TestLedger_AddInvalidLeavesFileUnchanged(t *testing.T) {
	invalid := []RawEntry{
		{Category: Income, Amount: "0"},
		{Category: Income, Amount: "-10"},
		{Category: Expense, Amount: "lots"},
		{Date: "2025-06-16", Category: Expense, Amount: "10"},
		{Date: "2099-01-01", Category: Income, Amount: "10"},
		{Category: Income, Amount: "1e-400"},
		{Category: Income, Amount: "1e400"},
	}
	l, path := newTestLedger(t)
	mustAdd(t, l, Income, "10", "seed")

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, raw := range invalid {
		_, err := l.Add(raw)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "input %+v", raw)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after, "input %+v changed the file", raw)
	}
}

func TestLedger_Balance(t *testing.T) {
	l, _ := newTestLedger(t)

	bal, err := l.Balance()
	require.NoError(t, err)
	assert.True(t, bal.IsZero(), "empty balance = %v", bal)

	mustAdd(t, l, Income, "100", "")
	mustAdd(t, l, Expense, "30", "")

	bal, err = l.Balance()
	require.NoError(t, err)
	assert.True(t, bal.Equal(decimal.NewFromInt(70)), "balance = %v, want 70", bal)
}

func TestBalance_IsExact(t *testing.T) {
	entries := []Entry{
		{Category: Income, Amount: 0.1},
		{Category: Income, Amount: 0.2},
		{Category: Expense, Amount: 0.3},
	}
	assert.True(t, Balance(entries).IsZero(), "balance = %v", Balance(entries))
}

func TestLedger_Remove(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, Income, "1", "a")
	mustAdd(t, l, Income, "2", "b")
	mustAdd(t, l, Expense, "3", "c")
	mustAdd(t, l, Expense, "4", "d")

	removed, err := l.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Description)

	entries, err := l.Entries()
	require.NoError(t, err)
	var descs []string
	for _, e := range entries {
		descs = append(descs, e.Description)
	}
	assert.Equal(t, []string{"A", "C", "D"}, descs)
}

func TestLedger_RemoveOutOfRange(t *testing.T) {
	l, path := newTestLedger(t)
	mustAdd(t, l, Income, "1", "a")
	mustAdd(t, l, Income, "2", "b")

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, index := range []int{-1, 2, 100} {
		_, err := l.Remove(index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLedger_SalaryScenario(t *testing.T) {
	l, _ := newTestLedger(t)

	e := mustAdd(t, l, Income, "500", "Salary")
	assert.Equal(t, today, e.Date)

	bal, err := l.Balance()
	require.NoError(t, err)
	assert.True(t, bal.Equal(decimal.NewFromInt(500)))

	entries, err := l.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = l.Remove(0)
	require.NoError(t, err)

	bal, err = l.Balance()
	require.NoError(t, err)
	assert.True(t, bal.IsZero())

	entries, err = l.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLedger_MissingFile(t *testing.T) {
	l := NewLedger(NewFileStore(filepath.Join(t.TempDir(), "nope.csv")))

	_, err := l.Entries()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.Add(RawEntry{Category: Income, Amount: "1"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLedger_BalanceOver(t *testing.T) {
	l, _ := newTestLedger(t)
	for _, raw := range []RawEntry{
		{Date: "2025-05-31", Category: Income, Amount: "1000"},
		{Date: "2025-06-01", Category: Income, Amount: "500"},
		{Date: "2025-06-10", Category: Expense, Amount: "120.5"},
		{Date: "2025-06-15", Category: Expense, Amount: "10"},
	} {
		_, err := l.Add(raw)
		require.NoError(t, err)
	}

	june, err := l.BalanceOver(date.NewRange(today, date.Monthly))
	require.NoError(t, err)
	assert.Equal(t, "369.50", june.StringFixed(2))

	day, err := l.BalanceOver(date.NewRange(today, date.Daily))
	require.NoError(t, err)
	assert.Equal(t, "-10.00", day.StringFixed(2))

	// the ledger itself is not filtered
	entries, err := l.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}
