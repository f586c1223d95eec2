package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nechh42/akilli-finans-asistan/library"
	"github.com/nechh42/akilli-finans-asistan/renderer"
)

type learnCmd struct {
	query string
	faq   bool
}

func (*learnCmd) Name() string     { return "learn" }
func (*learnCmd) Synopsis() string { return "browse the education library" }
func (*learnCmd) Usage() string {
	return `asistan learn [-q <term>] [-faq] [<article>]

  Lists the education articles and courses. With -q, only the articles whose
  title, excerpt or category contains the term. With -faq, the frequently
  asked questions. With an article name, the full article.
`
}

func (c *learnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search articles by title, excerpt or category.")
	f.BoolVar(&c.faq, "faq", false, "Display the frequently asked questions.")
}

func (c *learnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lib := library.Default()

	switch {
	case c.faq:
		printMarkdown(renderer.FAQMarkdown(lib.FAQ))
	case f.NArg() == 1:
		a, ok := lib.Article(f.Arg(0))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown article %q\n", f.Arg(0))
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.ArticleMarkdown(a))
	case f.NArg() > 1:
		fmt.Fprintln(os.Stderr, "Error: at most one article can be displayed")
		return subcommands.ExitUsageError
	case c.query != "":
		printMarkdown(renderer.LibraryMarkdown(&renderer.Library{Term: c.query, Articles: lib.Search(c.query)}))
	default:
		printMarkdown(renderer.LibraryMarkdown(&renderer.Library{Articles: lib.Articles, Courses: lib.Courses}))
	}
	return subcommands.ExitSuccess
}
