package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/locale"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	category    string
	date        string
	amount      string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `wlt add -c <income|expense> [-d <date>] -a <amount> [-m <description>]

  Appends one entry to the ledger. Every invalid field is reported and
  nothing is recorded.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category: income or expense.")
	f.StringVar(&c.date, "d", "", "Date of the entry (YYYY-MM-DD), defaults to today.")
	f.StringVar(&c.amount, "a", "", "Amount, strictly positive.")
	f.StringVar(&c.description, "m", "", "Description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := wallet.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	e, err := a.ledger.Add(wallet.RawEntry{
		Date:        c.date,
		Category:    category,
		Amount:      c.amount,
		Description: c.description,
	})
	if msgs := a.p.Errors(err); msgs != nil {
		for _, msg := range msgs {
			printError(stderr, msg)
		}
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error adding entry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "%s %s %s %s\n", e.Date, a.p.Label(e.Category), a.amount(decimal.NewFromFloat(e.Amount)), e.Description)
	printSuccess(stdout, a.p.Sprintf(locale.Done))
	return subcommands.ExitSuccess
}
