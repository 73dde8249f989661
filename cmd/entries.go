package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/locale"
)

// createEntries runs the create entry flow until the user goes back or stops.
func (s *shell) createEntries() error {
	options := []option{
		{1, s.p.Label(wallet.Income)},
		{2, s.p.Label(wallet.Expense)},
		{0, s.p.Sprintf(locale.MenuBack)},
	}
	for {
		s.title(locale.MenuCreate)
		n, err := s.choose(locale.PromptCategory, options)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		category := wallet.Categories[n-1]

		added, err := s.createEntry(category)
		if err != nil {
			return err
		}
		if !added {
			continue
		}
		more, err := s.confirm()
		if err != nil || !more {
			return err
		}
	}
}

// createEntry asks the fields of one entry and adds it. It returns false
// when the fields were rejected.
func (s *shell) createEntry(category wallet.Category) (bool, error) {
	fmt.Fprintf(s.out, "\n>>> %s\n", s.p.Label(category))
	fmt.Fprintln(s.out, s.p.Sprintf(locale.HintToday))

	raw := wallet.RawEntry{Category: category}
	prompts := []struct {
		key   locale.Key
		field *string
	}{
		{locale.PromptDate, &raw.Date},
		{locale.PromptAmount, &raw.Amount},
		{locale.PromptDescription, &raw.Description},
	}
	for _, p := range prompts {
		answer, err := s.ask(s.p.Sprintf(p.key))
		if err != nil {
			return false, err
		}
		*p.field = answer
	}

	e, err := s.ledger.Add(raw)
	if msgs := s.p.Errors(err); msgs != nil {
		for _, msg := range msgs {
			printError(s.out, msg)
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.logger.Debug("entry added", "date", e.Date, "category", e.Category, "amount", e.Amount)
	return true, nil
}

// removeEntries runs the delete entry flow until the user goes back or stops.
func (s *shell) removeEntries() error {
	for {
		s.title(locale.MenuRemove)
		ok, err := s.printHistory()
		if err != nil || !ok {
			return err
		}

		fmt.Fprintln(s.out, s.p.Sprintf(locale.HintCancel))
		answer, err := s.ask(s.p.Sprintf(locale.PromptIndex))
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil
		}
		index, err := strconv.Atoi(answer)
		if err != nil {
			printError(s.out, s.p.Sprintf(locale.InvalidInput))
			continue
		}
		removed, err := s.ledger.Remove(index)
		if errors.Is(err, wallet.ErrIndexOutOfRange) {
			printError(s.out, s.p.Sprintf(locale.IndexRange, index))
			continue
		}
		if err != nil {
			return err
		}
		s.logger.Debug("entry removed", "index", index, "date", removed.Date, "amount", removed.Amount)

		more, err := s.confirm()
		if err != nil || !more {
			return err
		}
	}
}
