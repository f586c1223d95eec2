package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	finans "github.com/nechh42/akilli-finans-asistan"
	"github.com/nechh42/akilli-finans-asistan/renderer"
)

type recommendCmd struct{}

func (*recommendCmd) Name() string     { return "recommend" }
func (*recommendCmd) Synopsis() string { return "display investment recommendations" }
func (*recommendCmd) Usage() string {
	return `asistan recommend

  Displays the investment recommendations with their target price and
  potential return. Recommendations are informational only.
`
}

func (*recommendCmd) SetFlags(_ *flag.FlagSet) {}

func (*recommendCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RecommendationsMarkdown(finans.Recommendations()))
	return subcommands.ExitSuccess
}
