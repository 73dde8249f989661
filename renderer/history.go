package renderer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/locale"
	md "github.com/nao1215/markdown"
)

// History renders entries as a markdown table, with one row per entry
// prefixed by its row index. Amounts are displayed in currency.
func History(entries []wallet.Entry, p *locale.Printer, currency string) string {
	return HistoryFrom(entries, 0, p, currency)
}

// HistoryFrom is like History but only renders the entries from row first.
func HistoryFrom(entries []wallet.Entry, first int, p *locale.Printer, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Header: []string{
			p.Sprintf(locale.ColumnIndex),
			p.Sprintf(locale.ColumnDate),
			p.Sprintf(locale.ColumnCategory),
			p.Sprintf(locale.ColumnAmount),
			p.Sprintf(locale.ColumnDescription),
		},
		Rows: [][]string{},
	}
	for i := max(first, 0); i < len(entries); i++ {
		e := entries[i]
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i),
			e.Date.String(),
			p.Label(e.Category),
			wallet.M(e.Amount, currency).String(),
			cell(e.Description),
		})
	}
	doc.Table(table)

	return doc.String()
}

// cell escapes text so that it stays in a single table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
