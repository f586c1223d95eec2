package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/nechh42/akilli-finans-asistan/session"
)

type simulateCmd struct {
	script string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "trade with virtual cash in the simulator" }
func (*simulateCmd) Usage() string {
	return `asistan simulate [-f <script>]

  Starts the paper-trading simulator with a virtual cash balance. Commands
  are read from the terminal, or from a script file with -f (use - for
  stdin). Type 'help' in the simulator for the list of commands.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.script, "f", "", "Read simulator commands from this file instead of the terminal.")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	s := settings()
	catalog, err := loadCatalog(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := newLedger(s, catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var in io.Reader = os.Stdin
	opts := []session.Option{session.WithMarkdown(writeMarkdown)}
	if c.script != "" {
		opts = append(opts, session.WithoutPrompt())
		if c.script != "-" {
			file, err := os.Open(c.script)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
				return subcommands.ExitFailure
			}
			defer file.Close()
			in = file
		}
	}

	shell := session.New(os.Stdout, in, ledger, catalog, opts...)
	if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Simulator failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
