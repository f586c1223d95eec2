package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nechh42/akilli-finans-asistan/renderer"
)

type marketCmd struct {
	kind string
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the market ticker" }
func (*marketCmd) Usage() string {
	return `asistan market [-kind <kind>]

  Displays the current price and daily change of every asset, grouped by
  kind (Kripto, Döviz, Değerli Madenler).
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Only display assets of this kind.")
}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	catalog, err := loadCatalog(settings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}

	m := renderer.NewMarket(catalog)
	if c.kind != "" {
		groups := m.Groups[:0]
		for _, g := range m.Groups {
			if strings.EqualFold(g.Kind, c.kind) {
				groups = append(groups, g)
			}
		}
		if len(groups) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no asset of kind %q\n", c.kind)
			return subcommands.ExitFailure
		}
		m.Groups = groups
	}
	printMarkdown(renderer.MarketMarkdown(m))
	return subcommands.ExitSuccess
}
