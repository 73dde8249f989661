package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/wallet/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded documentation.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the wlt documentation" }
func (*topicCmd) Usage() string {
	return `wlt topic [-list] [<topic>...]

  Without topic, prints the documentation index. '*' prints every topic,
  one after the other.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "Only print the topic names, one per line.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	known, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		fmt.Fprintln(stdout, strings.Join(known, "\n"))
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{docs.Readme}
	}
	content, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintf(stderr, "Known topics: %s\n", strings.Join(known, ", "))
		return subcommands.ExitFailure
	}
	printMarkdown(stdout, content)
	return subcommands.ExitSuccess
}
