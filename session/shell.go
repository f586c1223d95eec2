// Package session implements the interactive paper-trading simulator.
//
// A Shell owns one Ledger for its whole lifetime and reads one command per
// line. Rejected orders and malformed commands are reported and the session
// goes on.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	finans "github.com/nechh42/akilli-finans-asistan"
	"github.com/nechh42/akilli-finans-asistan/renderer"
)

const prompt = "simulate> "

// Shell is the simulator REPL.
type Shell struct {
	w        io.Writer
	r        *bufio.Reader
	ledger   *finans.Ledger
	catalog  *finans.Catalog
	markdown func(io.Writer, string)
	create   func(name string) (io.WriteCloser, error)
	quiet    bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithMarkdown sets how markdown documents are printed. By default they are
// written as is.
func WithMarkdown(print func(w io.Writer, md string)) Option {
	return func(s *Shell) { s.markdown = print }
}

// WithFiles sets how export files are created.
func WithFiles(create func(name string) (io.WriteCloser, error)) Option {
	return func(s *Shell) { s.create = create }
}

// WithoutPrompt disables the prompt and the welcome message, for scripts.
func WithoutPrompt() Option {
	return func(s *Shell) { s.quiet = true }
}

// New creates a Shell trading on ledger with the assets of catalog.
func New(w io.Writer, r io.Reader, ledger *finans.Ledger, catalog *finans.Catalog, opts ...Option) *Shell {
	s := &Shell{
		w:        w,
		r:        bufio.NewReader(r),
		ledger:   ledger,
		catalog:  catalog,
		markdown: func(w io.Writer, md string) { fmt.Fprint(w, md) },
		create:   func(name string) (io.WriteCloser, error) { return os.Create(name) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ledger returns the ledger the shell trades on.
func (s *Shell) Ledger() *finans.Ledger { return s.ledger }

// Run reads and executes commands until "quit", end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	if !s.quiet {
		fmt.Fprintf(s.w, "Simülasyon modu: %s sanal bakiye ile risk almadan yatırım yapın. Yardım için 'help' yazın.\n", s.ledger.InitialBalance())
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.quiet {
			fmt.Fprint(s.w, prompt)
		}
		line, err := readLine(ctx, s.r)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if strings.TrimSpace(line) != "" {
			if quit := s.Exec(line); quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil // Clean exit on Ctrl+D
		}
	}
}

// readLine reads the next line of r, or returns ctx's error as soon as ctx is
// done. An interrupted read is left pending and its line is lost.
func readLine(ctx context.Context, r *bufio.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	read := make(chan result, 1)
	go func() {
		line, err := r.ReadString('\n')
		read <- result{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-read:
		return res.line, res.err
	}
}

// Exec executes a single command line. It reports whether the session should end.
func (s *Shell) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	if name == "quit" || name == "exit" {
		return true
	}

	c, ok := lookup(name)
	if !ok {
		fmt.Fprintf(s.w, "Bilinmeyen komut %q.\n", name)
		s.help()
		return false
	}

	err := c.run(s, args)
	var uerr usageError
	switch {
	case err == nil:
	case errors.As(err, &uerr):
		fmt.Fprintf(s.w, "%v\nKullanım: %s\n", err, c.usage)
	case isRejection(err):
		fmt.Fprintln(s.w, finans.Rejection(err))
	default:
		fmt.Fprintf(s.w, "Hata: %v\n", err)
	}
	return false
}

// isRejection reports whether err is an order rejected by the ledger.
func isRejection(err error) bool {
	return errors.Is(err, finans.ErrInsufficientBalance) ||
		errors.Is(err, finans.ErrInsufficientHolding) ||
		errors.Is(err, finans.ErrInvalidQuantity) ||
		errors.Is(err, finans.ErrUnknownAsset)
}

// usageError reports malformed command arguments.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

func (s *Shell) print(md string) { s.markdown(s.w, md) }

func (s *Shell) portfolio() *renderer.Portfolio {
	return renderer.NewPortfolio(s.ledger, s.catalog)
}
