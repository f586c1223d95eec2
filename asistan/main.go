// Command asistan is a personal finance assistant for the terminal: market
// ticker, investment recommendations, an education library, a paper-trading
// simulator and an AI tutor.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/google/subcommands"
	"github.com/nechh42/akilli-finans-asistan/cmd"
)

func main() {
	// COMP_INSTALL=1 asistan installs the shell completion, COMP_LINE is set by the shell when completing.
	cmd.Completion(flag.CommandLine, cmd.Commands()...).Complete("asistan")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
