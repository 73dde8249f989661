// Package cmd implements the CLI application to manage a wallet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/log"
	"github.com/etnz/wallet"
	"github.com/etnz/wallet/locale"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// commands are the wlt subcommands with their group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"ledger", &menuCmd{}},
	{"ledger", &balanceCmd{}},
	{"ledger", &historyCmd{}},
	{"ledger", &addCmd{}},
	{"ledger", &removeCmd{}},
	{"documentation", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// Environment variables providing the defaults of the global flags.
const (
	EnvLedgerFile = "WALLET_LEDGER_FILE"
	EnvLocale     = "WALLET_LOCALE"
	EnvCurrency   = "WALLET_CURRENCY"
	EnvVerbose    = "WALLET_VERBOSE"
)

// DefaultLedgerFile is used when neither the flag nor the environment set a file.
const DefaultLedgerFile = "wallet.csv"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (default $"+EnvLedgerFile+" or "+DefaultLedgerFile+")")
var localeName = flag.String("locale", "", "Language of the texts and category labels, en or ru (default $"+EnvLocale+" or en)")
var currency = flag.String("currency", "", "ISO currency code used to display amounts (default $"+EnvCurrency+")")
var Verbose = flag.Bool("v", false, "Log debug information to stderr (default $"+EnvVerbose+")")

// Standard streams of the commands, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Config is the resolved configuration of a run.
type Config struct {
	LedgerFile string
	Locale     string
	Currency   string
	Verbose    bool
}

// LoadConfig resolves the configuration from the flags, the environment and
// an optional .env file in the working directory, in that order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env file: %w", err)
	}

	envVerbose, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	cfg := &Config{
		LedgerFile: firstOf(*ledgerFile, os.Getenv(EnvLedgerFile), DefaultLedgerFile),
		Locale:     firstOf(*localeName, os.Getenv(EnvLocale), "en"),
		Currency:   strings.ToUpper(firstOf(*currency, os.Getenv(EnvCurrency))),
		Verbose:    *Verbose || envVerbose,
	}
	return cfg, cfg.Validate()
}

// Validate returns an error listing every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.LedgerFile) == "" {
		errs = append(errs, errors.New("ledger file cannot be empty"))
	}
	if _, err := locale.Parse(c.Locale); err != nil {
		errs = append(errs, err)
	}
	if c.Currency != "" && money.GetCurrency(c.Currency) == nil {
		errs = append(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	return errors.Join(errs...)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// app bundles what every command needs.
type app struct {
	cfg    *Config
	p      *locale.Printer
	store  *wallet.FileStore
	ledger *wallet.Ledger
	logger *log.Logger
}

// newApp loads the configuration and opens the ledger, creating its file if needed.
func newApp() (*app, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return openApp(cfg, stderr)
}

func openApp(cfg *Config, logs io.Writer) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := newLogger(logs, cfg.Verbose)
	tag, _ := locale.Parse(cfg.Locale)
	p := locale.New(tag)

	store := wallet.NewFileStore(cfg.LedgerFile,
		wallet.WithLabels(p.Labels()),
		wallet.WithAliases(locale.AllLabels()...),
		wallet.WithLogger(logger),
	)
	if err := store.Init(); err != nil {
		return nil, err
	}
	logger.Debug("ledger opened", "path", cfg.LedgerFile, "locale", tag, "currency", cfg.Currency)

	return &app{
		cfg:    cfg,
		p:      p,
		store:  store,
		ledger: wallet.NewLedger(store),
		logger: logger,
	}, nil
}

// amount formats v in the display currency.
func (a *app) amount(v decimal.Decimal) string { return wallet.M(v, a.cfg.Currency).String() }
