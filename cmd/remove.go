package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/locale"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete an entry by row index" }
func (*removeCmd) Usage() string {
	return `wlt remove <index>

  Deletes the entry at the given row index, as displayed by 'wlt history'.
  The deletion is immediate and cannot be undone.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "remove requires exactly one row index")
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "invalid row index %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	removed, err := a.ledger.Remove(index)
	if errors.Is(err, wallet.ErrIndexOutOfRange) {
		printError(stderr, a.p.Sprintf(locale.IndexRange, index))
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error removing entry: %v\n", err)
		return subcommands.ExitFailure
	}

	a.logger.Debug("entry removed", "index", index, "date", removed.Date)
	printSuccess(stdout, a.p.Sprintf(locale.Done))
	return subcommands.ExitSuccess
}
