package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nechh42/akilli-finans-asistan/agent"
	"github.com/nechh42/akilli-finans-asistan/library"
	"google.golang.org/genai"
)

type askCmd struct{}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask the AI finance tutor" }
func (*askCmd) Usage() string {
	return `asistan ask [<question>...]

  Starts an interactive session with the AI finance tutor. The optional
  question is asked first. Type 'bye' to exit.

  Requires a Gemini API key in the GEMINI_API_KEY environment variable.
`
}

func (*askCmd) SetFlags(_ *flag.FlagSet) {}

func (*askCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := settings()
	catalog, err := loadCatalog(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	tutor := agent.NewTutor(os.Stdout, os.Stdin, library.Default(), catalog)
	if s.Model != "" {
		tutor.Model = s.Model
	}
	if err := tutor.Run(ctx, client, joinArgs(f)); err != nil {
		fmt.Fprintln(os.Stderr, "Tutor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
