package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallet/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type balanceCmd struct {
	period string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance, incomes minus expenses" }
func (*balanceCmd) Usage() string {
	return `wlt balance [-period <day|week|month|quarter|year>]

  Displays the sum of all incomes minus the sum of all expenses. With
  -period, only the entries of the current period are counted.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "", "Only count the entries of the current day, week, month, quarter or year.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	var balance decimal.Decimal
	if c.period == "" {
		balance, err = a.ledger.Balance()
	} else {
		period, perr := date.ParsePeriod(c.period)
		if perr != nil {
			fmt.Fprintln(stderr, perr)
			return subcommands.ExitUsageError
		}
		balance, err = a.ledger.BalanceOver(date.NewRange(a.ledger.Today(), period))
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error computing balance: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, a.amount(balance))
	return subcommands.ExitSuccess
}
