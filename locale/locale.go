// Package locale holds the user facing texts of wlt, in every supported
// language, and the printer that resolves them.
//
// Texts are looked up by Key. Validation failures are resolved from their
// wallet.ErrorKind, so that validation rules and wording stay independent.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/wallet"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a text in the catalog.
type Key string

// Supported lists the available languages, the first one is the default.
var Supported = []language.Tag{language.English, language.Russian}

// ErrUnsupported is returned by Parse for a language without translation.
var ErrUnsupported = errors.New("unsupported locale")

var matcher = language.NewMatcher(Supported)

var texts = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(fmt.Sprintf("invalid translation %s %q: %v", tag, key, err))
			}
		}
	}
	return b
}()

// Parse returns the supported language closest to s (like "ru", "ru-RU" or "en_GB").
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %v", ErrUnsupported, s, err)
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%w %q", ErrUnsupported, s)
	}
	return Supported[i], nil
}

// Printer formats texts in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Printer for tag. Missing texts fall back to english.
func New(tag language.Tag) *Printer {
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(texts))}
}

// Tag returns the printer language.
func (p *Printer) Tag() language.Tag { return p.tag }

// Sprintf formats the text for key.
func (p *Printer) Sprintf(key Key, args ...any) string {
	return p.p.Sprintf(string(key), args...)
}

// FieldError returns the message for a single validation failure.
func (p *Printer) FieldError(e *wallet.FieldError) string {
	return p.Sprintf(Key(e.Kind), e.Value)
}

// Errors returns one message per field of err when it is a
// *wallet.ValidationError, and nil otherwise.
func (p *Printer) Errors(err error) []string {
	var verr *wallet.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	msgs := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		msgs[i] = p.FieldError(f)
	}
	return msgs
}

// Labels returns the category labels in the printer language.
func (p *Printer) Labels() wallet.Labels {
	return wallet.Labels{Income: p.Sprintf(Income), Expense: p.Sprintf(Expense)}
}

// Label returns the display label of c.
func (p *Printer) Label(c wallet.Category) string { return p.Labels().Label(c) }

// AllLabels returns the category labels of every supported language.
func AllLabels() []wallet.Labels {
	labels := make([]wallet.Labels, len(Supported))
	for i, tag := range Supported {
		labels[i] = New(tag).Labels()
	}
	return labels
}

var yes = []string{"y", "yes", "д", "да"}

// IsYes reports whether s is a positive answer, in any supported language.
func IsYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, y := range yes {
		if s == y {
			return true
		}
	}
	return false
}
