package wallet

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/etnz/wallet/date"
)

var russian = Labels{Income: "Доходы", Expense: "Расходы"}

func TestDecodeEntries(t *testing.T) {
	stream := `date;category;amount;description
2025-08-01;Income;5000.0;Salary
2025-08-02;Expense;12.5;"Groceries; fruit"
2025-08-03;Expense;;Unknown amount

`
	entries, err := Codec{Labels: DefaultLabels}.DecodeEntries(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeEntries() returned an unexpected error: %v", err)
	}

	want := []Entry{
		{Date: date.MustParse("2025-08-01"), Category: Income, Amount: 5000, Description: "Salary"},
		{Date: date.MustParse("2025-08-02"), Category: Expense, Amount: 12.5, Description: "Groceries; fruit"},
		{Date: date.MustParse("2025-08-03"), Category: Expense, Amount: 0, Description: "Unknown amount"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("DecodeEntries() =\n%v\nwant\n%v", entries, want)
	}
}

func TestDecodeEntries_HeaderOnly(t *testing.T) {
	entries, err := Codec{Labels: DefaultLabels}.DecodeEntries(strings.NewReader("date;category;amount;description\n"))
	if err != nil {
		t.Fatalf("DecodeEntries() returned an unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want none", len(entries))
	}
}

func TestDecodeEntries_Malformed(t *testing.T) {
	testCases := []struct {
		name   string
		stream string
	}{
		{"empty file", ""},
		{"wrong header", "when;what;how much;why\n"},
		{"comma separated", "date,category,amount,description\n"},
		{"missing column", "date;category;amount;description\n2025-01-01;Income;3\n"},
		{"extra column", "date;category;amount;description\n2025-01-01;Income;3;x;y\n"},
		{"bad date", "date;category;amount;description\n2025-02-30;Income;3;x\n"},
		{"bad category", "date;category;amount;description\n2025-01-01;Transfer;3;x\n"},
		{"bad amount", "date;category;amount;description\n2025-01-01;Income;three;x\n"},
		{"infinite amount", "date;category;amount;description\n2025-01-01;Income;1e400;x\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Codec{Labels: DefaultLabels}.DecodeEntries(strings.NewReader(tc.stream))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("DecodeEntries() error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestEncodeEntries(t *testing.T) {
	entries := []Entry{
		{Date: date.MustParse("2025-08-01"), Category: Income, Amount: 500, Description: "Salary"},
		{Date: date.MustParse("2025-08-02"), Category: Expense, Amount: 0.1, Description: `Say "hi"; bye`},
	}
	var b bytes.Buffer
	if err := (Codec{Labels: DefaultLabels}).EncodeEntries(&b, entries); err != nil {
		t.Fatalf("EncodeEntries() returned an unexpected error: %v", err)
	}

	want := "date;category;amount;description\n" +
		"2025-08-01;Income;500;Salary\n" +
		"2025-08-02;Expense;0.1;\"Say \"\"hi\"\"; bye\"\n"
	if b.String() != want {
		t.Errorf("EncodeEntries() =\n%s\nwant\n%s", b.String(), want)
	}
}

func TestEncodeEntries_InvalidCategory(t *testing.T) {
	var b bytes.Buffer
	err := Codec{Labels: DefaultLabels}.EncodeEntries(&b, []Entry{{Date: date.MustParse("2025-08-01"), Amount: 1}})
	if err == nil {
		t.Error("EncodeEntries() should fail on an entry without category")
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Date: date.MustParse("2024-02-29"), Category: Income, Amount: 1234.56, Description: "Bonus"},
		{Date: date.MustParse("2024-03-01"), Category: Expense, Amount: 0.07, Description: "Multi\nline"},
		{Date: date.MustParse("2024-03-01"), Category: Expense, Amount: 1e-7, Description: ""},
		{Date: date.MustParse("1999-12-31"), Category: Income, Amount: 99999999.99, Description: "ünïcode; and quotes \""},
	}

	for _, labels := range []Labels{DefaultLabels, russian} {
		codec := Codec{Labels: labels}
		var b bytes.Buffer
		if err := codec.EncodeEntries(&b, entries); err != nil {
			t.Fatalf("EncodeEntries() returned an unexpected error: %v", err)
		}
		got, err := codec.DecodeEntries(&b)
		if err != nil {
			t.Fatalf("DecodeEntries() returned an unexpected error: %v", err)
		}
		if len(got) != len(entries) {
			t.Fatalf("got %d entries, want %d", len(got), len(entries))
		}
		for i := range entries {
			w, g := entries[i], got[i]
			if g.Date != w.Date || g.Category != w.Category || g.Description != w.Description {
				t.Errorf("row %d: got %+v, want %+v", i, g, w)
			}
			if math.Abs(g.Amount-w.Amount) > 1e-9 {
				t.Errorf("row %d: amount %v, want %v", i, g.Amount, w.Amount)
			}
		}
	}
}

func TestCodec_Aliases(t *testing.T) {
	stream := "date;category;amount;description\n2025-01-01;Доходы;10;\n2025-01-02;Expense;4;\n"
	codec := Codec{Labels: DefaultLabels, Aliases: []Labels{russian}}

	entries, err := codec.DecodeEntries(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeEntries() returned an unexpected error: %v", err)
	}
	if entries[0].Category != Income || entries[1].Category != Expense {
		t.Errorf("categories = %v, %v; want Income, Expense", entries[0].Category, entries[1].Category)
	}
}
