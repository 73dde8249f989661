package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix is the prefix of the external binaries that extend wlt.
const ExtensionPrefix = "wlt-"

// Builtin reports whether name is a subcommand of wlt itself.
func Builtin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, e := range commands {
		if e.cmd.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external wlt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved configuration is passed to the extension through the
// environment, so that it works on the same ledger file.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+cfg.LedgerFile,
		EnvLocale+"="+cfg.Locale,
		EnvCurrency+"="+cfg.Currency,
		EnvVerbose+"="+strconv.FormatBool(cfg.Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
