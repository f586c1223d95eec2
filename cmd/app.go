// Package cmd implements the asistan command line application: the market
// ticker, investment recommendations, the education library, the
// paper-trading simulator and the AI tutor.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	finans "github.com/nechh42/akilli-finans-asistan"
)

// Commands returns every subcommand of the application, in help order.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&marketCmd{},
		&recommendCmd{},
		&learnCmd{},
		&simulateCmd{},
		&askCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, "")
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFlag         = flag.String("config", "", "Path to the YAML configuration file. If missing it will read the environment variable \""+envConfig+"\", then "+defaultConfigFile+".")
	pricesFlag         = flag.String("prices", "", "Path to a JSON price document replacing the built-in market data. If missing it will read the environment variable \""+envPrices+"\".")
	jsonPathFlag       = flag.String("jsonpath", "", "JSONPath expression selecting the assets in the price document (default "+finans.DefaultAssetsPath+").")
	initialBalanceFlag = flag.String("initial-balance", "", "Initial cash of the simulator. If missing it will read the environment variable \""+envInitialBalance+"\".")
	plainFlag          = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")
	verboseFlag        = flag.Bool("v", false, "Verbose logging on stderr.")
)

// SetupLogging enables logs only in verbose mode.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("asistan: ")
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
}

// printMarkdown prints a markdown document on stdout, rendered for the
// terminal unless plain output is configured.
func printMarkdown(md string) {
	writeMarkdown(os.Stdout, md)
}

func writeMarkdown(w io.Writer, md string) {
	if settings().Plain {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("cannot create markdown renderer, printing raw markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown, printing raw markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// loadCatalog returns the configured market data.
func loadCatalog(s Settings) (*finans.Catalog, error) {
	if s.Prices == "" {
		return finans.BuiltinCatalog(), nil
	}
	f, err := os.Open(s.Prices)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	log.Printf("loading prices from %s", s.Prices)
	c, err := finans.DecodeCatalog(f, s.JSONPath, s.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid price document %q: %w", s.Prices, err)
	}
	return c, nil
}

// newLedger creates the simulator ledger for the configured initial balance.
func newLedger(s Settings, c *finans.Catalog) (*finans.Ledger, error) {
	currency := c.Currency()
	initial := finans.M(finans.DefaultInitialBalance.Decimal(), currency)
	if s.InitialBalance != "" {
		q, err := finans.ParseQuantity(s.InitialBalance)
		if err != nil || q.IsNegative() {
			return nil, fmt.Errorf("invalid initial balance %q", s.InitialBalance)
		}
		initial = finans.M(q.Decimal(), currency)
	}
	return finans.NewLedger(c, finans.WithInitialBalance(initial)), nil
}

// joinArgs joins the remaining command line arguments.
func joinArgs(f *flag.FlagSet) string {
	return strings.TrimSpace(strings.Join(f.Args(), " "))
}
