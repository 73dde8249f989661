package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallet/locale"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	tail int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display all entries with their row index" }
func (*historyCmd) Usage() string {
	return `wlt history [-tail <n>]

  Displays the entries of the ledger in insertion order. The first column is
  the row index expected by 'wlt remove'.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 0, "Show only the last N entries.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	entries, err := a.ledger.Entries()
	if err != nil {
		fmt.Fprintf(stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(entries) == 0 {
		fmt.Fprintln(stdout, a.p.Sprintf(locale.HistoryEmpty))
		return subcommands.ExitSuccess
	}

	first := 0
	if c.tail > 0 {
		first = len(entries) - c.tail
	}
	printMarkdown(stdout, renderer.HistoryFrom(entries, first, a.p, a.cfg.Currency))
	return subcommands.ExitSuccess
}
