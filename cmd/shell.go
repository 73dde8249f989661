package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/etnz/wallet/locale"
)

// ErrInterrupted is returned by the interactive shell when its context is
// cancelled while waiting for input.
var ErrInterrupted = errors.New("interrupted")

// ErrInput is returned by the interactive shell when stdin cannot be read.
var ErrInput = errors.New("cannot read input")

// shell is the interactive menu over an app.
type shell struct {
	*app
	ctx     context.Context
	stop    context.CancelFunc
	lines   <-chan string // closed at the end of input
	readErr error         // set before lines is closed
	out     io.Writer
}

// newShell starts reading in. The reader stops when run returns.
func newShell(ctx context.Context, a *app, in io.Reader, out io.Writer) *shell {
	ctx, stop := context.WithCancel(ctx)
	lines := make(chan string)
	s := &shell{app: a, ctx: ctx, stop: stop, lines: lines, out: out}
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.readErr = fmt.Errorf("%w: %w", ErrInput, err)
		}
	}()
	return s
}

// ask prints prompt and waits for one line of input.
//
// It returns io.EOF at the end of input, ErrInterrupted when the context
// is done, and ErrInput when stdin failed.
func (s *shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, promptStyle.Render(prompt))
	select {
	case <-s.ctx.Done():
		return "", ErrInterrupted
	case line, ok := <-s.lines:
		if !ok {
			if s.ctx.Err() != nil {
				return "", ErrInterrupted
			}
			if s.readErr != nil {
				return "", s.readErr
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// confirm asks the continue question.
func (s *shell) confirm() (bool, error) {
	printSuccess(s.out, s.p.Sprintf(locale.Done))
	answer, err := s.ask(s.p.Sprintf(locale.PromptContinue))
	if err != nil {
		return false, err
	}
	return locale.IsYes(answer), nil
}

// title prints a section title.
func (s *shell) title(key locale.Key) {
	fmt.Fprintf(s.out, "\n>>> %s\n", s.p.Sprintf(key))
}

// option is one numbered line of a menu.
type option struct {
	n     int
	label string
}

func (o option) String() string { return fmt.Sprintf("[%d] %s", o.n, o.label) }

// showMenu prints options framed by two rules as wide as the longest option.
func (s *shell) showMenu(options []option) {
	width := 0
	lines := make([]string, len(options))
	for i, o := range options {
		lines[i] = o.String()
		width = max(width, utf8.RuneCountInString(lines[i]))
	}
	rule := strings.Repeat("#", width)
	fmt.Fprintln(s.out, rule)
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
	fmt.Fprintln(s.out, rule)
}

// choose shows options until the user types the number of one of them.
func (s *shell) choose(prompt locale.Key, options []option) (int, error) {
	for {
		s.showMenu(options)
		answer, err := s.ask(s.p.Sprintf(prompt))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			for _, o := range options {
				if o.n == n {
					return n, nil
				}
			}
		}
		printError(s.out, s.p.Sprintf(locale.InvalidInput))
	}
}

// fatal reports whether err must end the shell.
func fatal(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, ErrInput) || errors.Is(err, io.EOF)
}

// storageFailed reports a ledger file failure to the user and the logs.
func (s *shell) storageFailed(err error) {
	s.logger.Error("ledger operation failed", "path", s.cfg.LedgerFile, "err", err)
	printError(s.out, s.p.Sprintf(locale.StorageFailed, s.cfg.LedgerFile))
}
