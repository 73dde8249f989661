package wallet

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/wallet/date"
	"github.com/shopspring/decimal"
)

// ErrorKind identifies a validation failure. It doubles as the message key
// used to localize the failure.
type ErrorKind string

// Validation failures.
const (
	KindDateFormat      ErrorKind = "date.format"
	KindDateMonth       ErrorKind = "date.month"
	KindDateDay         ErrorKind = "date.day"
	KindDateFuture      ErrorKind = "date.future"
	KindAmountNumeric   ErrorKind = "amount.numeric"
	KindAmountPositive  ErrorKind = "amount.positive"
	KindCategoryUnknown ErrorKind = "category.unknown"
)

// FieldError is a single field violation.
type FieldError struct {
	Field string    // date, amount or category
	Kind  ErrorKind // what went wrong
	Value string    // offending raw input
	Err   error     // underlying cause, if any
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %s: %v", e.Field, e.Value, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Kind)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationError reports every violation found in a RawEntry.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid entry: " + strings.Join(msgs, "; ")
}

// Unwrap exposes each field error to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

// ErrFutureDate is the cause of a KindDateFuture violation.
var ErrFutureDate = errors.New("date is after today")

// ErrOutOfRange is the cause of a KindAmountNumeric violation for numbers
// too large to be stored.
var ErrOutOfRange = errors.New("amount is too large")

// ErrNotPositive is the cause of a KindAmountPositive violation.
var ErrNotPositive = errors.New("amount must be greater than zero")

// Validate checks raw and returns the normalized Entry, or a *ValidationError
// listing all the violations.
func Validate(raw RawEntry, today date.Date) (Entry, error) {
	var errs []*FieldError

	day, ferr := validateDate(raw.Date, today)
	if ferr != nil {
		errs = append(errs, ferr)
	}
	amount, ferr := validateAmount(raw.Amount)
	if ferr != nil {
		errs = append(errs, ferr)
	}
	if !raw.Category.Valid() {
		errs = append(errs, &FieldError{Field: "category", Kind: KindCategoryUnknown, Value: fmt.Sprint(int(raw.Category))})
	}

	if len(errs) > 0 {
		return Entry{}, &ValidationError{Fields: errs}
	}
	return Entry{
		Date:        day,
		Category:    raw.Category,
		Amount:      amount,
		Description: Capitalize(strings.TrimSpace(raw.Description)),
	}, nil
}

func validateDate(raw string, today date.Date) (date.Date, *FieldError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return today, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		kind := KindDateFormat
		switch {
		case errors.Is(err, date.ErrMonth):
			kind = KindDateMonth
		case errors.Is(err, date.ErrDay):
			kind = KindDateDay
		}
		return date.Date{}, &FieldError{Field: "date", Kind: kind, Value: raw, Err: err}
	}
	if d.After(today) {
		return date.Date{}, &FieldError{Field: "date", Kind: KindDateFuture, Value: raw, Err: ErrFutureDate}
	}
	return d, nil
}

func validateAmount(raw string) (float64, *FieldError) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, &FieldError{Field: "amount", Kind: KindAmountNumeric, Value: raw, Err: err}
	}
	f := v.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, &FieldError{Field: "amount", Kind: KindAmountNumeric, Value: raw, Err: ErrOutOfRange}
	}
	// the stored value is the float: tiny decimals round to zero.
	if f <= 0 {
		return 0, &FieldError{Field: "amount", Kind: KindAmountPositive, Value: raw, Err: ErrNotPositive}
	}
	return f, nil
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
