package date

import (
	"errors"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, 2, 29)
	if want := New(2025, 3, 1); got != want {
		t.Errorf("New(2025, 2, 29) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr error
	}{
		{input: "2024-02-29", want: New(2024, time.February, 29)},
		{input: "1999-12-31", want: New(1999, time.December, 31)},
		{input: "2025-01-01", want: New(2025, time.January, 1)},
		{input: "2023-02-29", wantErr: ErrDay},
		{input: "2025-04-31", wantErr: ErrDay},
		{input: "2025-01-00", wantErr: ErrDay},
		{input: "2025-13-01", wantErr: ErrMonth},
		{input: "2025-00-10", wantErr: ErrMonth},
		{input: "2025-1-1", wantErr: ErrFormat},
		{input: "01-01-2025", wantErr: ErrFormat},
		{input: "2025/01/01", wantErr: ErrFormat},
		{input: "abcd-ef-gh", wantErr: ErrFormat},
		{input: "0000-01-01", wantErr: ErrFormat},
		{input: "", wantErr: ErrFormat},
		{input: "2025-01-01 ", wantErr: ErrFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if got.String() != tc.input {
				t.Errorf("String() = %q, want %q", got.String(), tc.input)
			}
		})
	}
}

func TestAfterBefore(t *testing.T) {
	d := MustParse("2025-06-15")
	if !d.Add(1).After(d) {
		t.Errorf("%v should be after %v", d.Add(1), d)
	}
	if !d.Add(-1).Before(d) {
		t.Errorf("%v should be before %v", d.Add(-1), d)
	}
	if d.After(d) || d.Before(d) {
		t.Errorf("%v should be neither before nor after itself", d)
	}
}

func TestIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today() should not be zero")
	}
}
