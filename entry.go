package wallet

import (
	"fmt"
	"strings"

	"github.com/etnz/wallet/date"
)

// Category tells whether an entry adds to or subtracts from the balance.
type Category int

// Categories. The zero value is not a valid category.
const (
	Income Category = iota + 1
	Expense
)

// Categories lists the valid categories in menu order.
var Categories = []Category{Income, Expense}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool { return c == Income || c == Expense }

// String returns the english label, mostly for logs and debugging.
func (c Category) String() string { return DefaultLabels.Label(c) }

// ParseCategory parses a category code as used on the command line ("income" or "expense").
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	}
	return 0, fmt.Errorf("unknown category %q want income or expense", s)
}

// Labels holds the display labels of the categories, as persisted in the ledger file.
type Labels struct {
	Income  string
	Expense string
}

// DefaultLabels are the english labels.
var DefaultLabels = Labels{Income: "Income", Expense: "Expense"}

// Label returns the display label of c, or "" for an invalid category.
func (l Labels) Label(c Category) string {
	switch c {
	case Income:
		return l.Income
	case Expense:
		return l.Expense
	}
	return ""
}

// Category returns the category whose label is s.
func (l Labels) Category(s string) (Category, bool) {
	switch s {
	case l.Income:
		return Income, true
	case l.Expense:
		return Expense, true
	}
	return 0, false
}

// Entry is one line of the ledger.
type Entry struct {
	Date        date.Date
	Category    Category
	Amount      float64
	Description string
}

// RawEntry holds user input for an entry, before validation.
type RawEntry struct {
	Date        string // YYYY-MM-DD, blank for today
	Category    Category
	Amount      string
	Description string
}
