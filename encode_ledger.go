package wallet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/etnz/wallet/date"
	"github.com/shopspring/decimal"
)

// Separator is the field delimiter of the ledger file.
const Separator = ';'

// Header is the fixed column set of the ledger file.
var Header = []string{"date", "category", "amount", "description"}

// ErrMalformed reports a ledger file whose header or rows cannot be decoded.
var ErrMalformed = errors.New("malformed ledger file")

// Codec converts entries to and from the ledger file format.
type Codec struct {
	Labels  Labels   // labels written to the file
	Aliases []Labels // extra labels accepted when reading
}

// category decodes a category label, trying the codec labels first.
func (c Codec) category(s string) (Category, bool) {
	if cat, ok := c.Labels.Category(s); ok {
		return cat, true
	}
	for _, l := range c.Aliases {
		if cat, ok := l.Category(s); ok {
			return cat, true
		}
	}
	return 0, false
}

// EncodeEntries writes the header and every entry to w.
func (c Codec) EncodeEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, e := range entries {
		label := c.Labels.Label(e.Category)
		if label == "" {
			return fmt.Errorf("row %d: cannot encode category %d", i, e.Category)
		}
		record := []string{
			e.Date.String(),
			label,
			decimal.NewFromFloat(e.Amount).String(),
			e.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeEntries reads a ledger file content from r.
//
// The header must be exactly Header. An empty amount cell decodes as 0.
func (c Codec) DecodeEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: header %q want %q", ErrMalformed, strings.Join(header, ";"), strings.Join(Header, ";"))
	}

	var entries []Entry
	for row := 0; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		e, err := c.decodeRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, row, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (c Codec) decodeRecord(record []string) (Entry, error) {
	on, err := date.Parse(record[0])
	if err != nil {
		return Entry{}, err
	}
	cat, ok := c.category(record[1])
	if !ok {
		return Entry{}, fmt.Errorf("unknown category %q", record[1])
	}
	var amount float64
	if s := strings.TrimSpace(record[2]); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid amount %q: %w", record[2], err)
		}
		amount = v.InexactFloat64()
		if math.IsInf(amount, 0) {
			return Entry{}, fmt.Errorf("amount %q out of range", record[2])
		}
	}
	return Entry{Date: on, Category: cat, Amount: amount, Description: record[3]}, nil
}
