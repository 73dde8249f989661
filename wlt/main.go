package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wallet/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("wlt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if flag.NArg() == 0 {
		// no subcommand opens the interactive menu
		flag.CommandLine.Parse(append(os.Args[1:], "menu"))
	}
	if name := flag.Arg(0); !cmd.Builtin(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
