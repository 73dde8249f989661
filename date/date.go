package date

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Parse failures, classified so that callers can report them separately.
var (
	ErrFormat = errors.New("date does not match format YYYY-MM-DD")
	ErrMonth  = errors.New("month must be in 1..12")
	ErrDay    = errors.New("day is out of range for month")
)

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a strict YYYY-MM-DD string.
//
// The returned error wraps ErrFormat, ErrMonth or ErrDay.
func Parse(str string) (Date, error) {
	if len(str) != len(DateFormat) || str[4] != '-' || str[7] != '-' {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, ErrFormat)
	}
	y, okY := digits(str[0:4])
	m, okM := digits(str[5:7])
	d, okD := digits(str[8:10])
	if !okY || !okM || !okD || y == 0 {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, ErrFormat)
	}
	if m < 1 || m > 12 {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, ErrMonth)
	}
	if d < 1 || d > daysIn(y, time.Month(m)) {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, ErrDay)
	}
	return Date{y, time.Month(m), d}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// digits decodes an unsigned base 10 number made only of ASCII digits.
func digits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// daysIn returns the number of days in month m of year y.
func daysIn(y int, m time.Month) int {
	// day 0 of the next month is the last day of m.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
