package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/wallet/locale"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

// command identifies an entry of the main menu.
type command int

const (
	cmdQuit command = iota
	cmdBalance
	cmdHistory
	cmdCreate
	cmdRemove
)

// menuEntry binds a main menu number to its label and handler.
type menuEntry struct {
	cmd   command
	label locale.Key
	run   func(*shell) error // nil quits
}

// mainMenu is the main menu, in display order. The menu number of an entry
// is its command.
var mainMenu = []menuEntry{
	{cmdBalance, locale.MenuBalance, (*shell).showBalance},
	{cmdHistory, locale.MenuHistory, (*shell).showHistory},
	{cmdCreate, locale.MenuCreate, (*shell).createEntries},
	{cmdRemove, locale.MenuRemove, (*shell).removeEntries},
	{cmdQuit, locale.MenuQuit, nil},
}

// handlers maps a main menu number to its handler.
var handlers = func() map[command]func(*shell) error {
	m := make(map[command]func(*shell) error, len(mainMenu))
	for _, e := range mainMenu {
		m[e.cmd] = e.run
	}
	return m
}()

// run is the main menu loop. It returns nil when the user quits or the
// input ends.
func (s *shell) run() error {
	defer s.stop()
	fmt.Fprintln(s.out, s.p.Sprintf(locale.Welcome))

	options := make([]option, len(mainMenu))
	for i, e := range mainMenu {
		options[i] = option{n: int(e.cmd), label: s.p.Sprintf(e.label)}
	}

	for {
		s.title(locale.MainMenu)
		n, err := s.choose(locale.PromptChoice, options)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		handler := handlers[command(n)]
		if handler == nil {
			return nil
		}
		if err := handler(s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if fatal(err) {
				return err
			}
			s.storageFailed(err)
		}
	}
}

func (s *shell) showBalance() error {
	balance, err := s.ledger.Balance()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\n>>> %s: %s\n", s.p.Sprintf(locale.MenuBalance), successStyle.Render(s.amount(balance)))
	return nil
}

func (s *shell) showHistory() error {
	s.title(locale.MenuHistory)
	_, err := s.printHistory()
	return err
}

// printHistory prints the history table, and returns false if it is empty.
func (s *shell) printHistory() (bool, error) {
	entries, err := s.ledger.Entries()
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		printError(s.out, s.p.Sprintf(locale.HistoryEmpty))
		return false, nil
	}
	printMarkdown(s.out, renderer.History(entries, s.p, s.cfg.Currency))
	return true, nil
}

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "open the interactive menu (default)" }
func (*menuCmd) Usage() string {
	return `wlt [menu]

  Opens the interactive menu to display the balance and the history, and to
  create or delete entries. Ctrl+C leaves at any time.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = newShell(ctx, a, stdin, stdout).run()
	if errors.Is(err, ErrInterrupted) {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, a.p.Sprintf(locale.Bye))
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
