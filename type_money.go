package wallet

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount attached to a display currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the money for value in the ISO currency cur. An empty currency is
// displayed as a plain two digits number.
func M[T float64 | int | int64 | decimal.Decimal](value T, cur string) Money {
	return Money{value: newDecimal(value), cur: cur}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// Value returns the amount in major units.
func (m Money) Value() decimal.Decimal { return m.value }

// Currency returns the display currency code.
func (m Money) Currency() string { return m.cur }

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := money.GetCurrency(strings.ToUpper(m.cur))
	if cur == nil {
		// unknown code: keep the digits, and show the code.
		return m.value.StringFixed(2) + " " + strings.ToUpper(m.cur)
	}
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}
