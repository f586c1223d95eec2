package session

import (
	"fmt"
	"io"
	"strings"

	finans "github.com/nechh42/akilli-finans-asistan"
	"github.com/nechh42/akilli-finans-asistan/renderer"
)

type command struct {
	name     string
	usage    string
	synopsis string
	run      func(s *Shell, args []string) error
}

// commands are listed in help order. quit and exit are handled by Exec.
var commands []command

func init() {
	commands = []command{
		{"buy", "buy <varlık> <miktar>", "varlık satın al", (*Shell).buy},
		{"sell", "sell <varlık> <miktar|all>", "varlık sat", (*Shell).sell},
		{"summary", "summary", "portföy özeti", (*Shell).summary},
		{"holdings", "holdings", "varlıklarım", (*Shell).holdings},
		{"history", "history", "işlem geçmişi, en yenisi önce", (*Shell).history},
		{"market", "market", "işlem yapılabilen varlıklar ve fiyatları", (*Shell).market},
		{"export", "export [dosya]", "işlem geçmişini JSON lines olarak yaz", (*Shell).export},
		{"reset", "reset", "portföyü sıfırla", (*Shell).reset},
		{"help", "help", "komut listesi", (*Shell).helpCmd},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Commands returns the names of the shell commands, for completion.
func Commands() []string {
	names := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		names = append(names, c.name)
	}
	return append(names, "quit", "exit")
}

// order parses the asset and quantity arguments of buy and sell.
func (s *Shell) order(args []string, allowAll bool) (finans.Asset, finans.Quantity, bool, error) {
	if len(args) != 2 {
		return finans.Asset{}, finans.Quantity{}, false, usagef("varlık ve miktar gerekli")
	}
	a, err := s.catalog.Lookup(args[0])
	if err != nil {
		return finans.Asset{}, finans.Quantity{}, false, err
	}
	if allowAll && strings.EqualFold(args[1], "all") {
		return a, finans.Quantity{}, true, nil
	}
	q, err := finans.ParseQuantity(args[1])
	if err != nil {
		return finans.Asset{}, finans.Quantity{}, false, usagef("%v", err)
	}
	return a, q, false, nil
}

func (s *Shell) buy(args []string) error {
	a, q, _, err := s.order(args, false)
	if err != nil {
		return err
	}
	tx, err := s.ledger.Buy(a.ID, q)
	if err != nil {
		return err
	}
	s.executed(tx)
	return nil
}

func (s *Shell) sell(args []string) error {
	a, q, all, err := s.order(args, true)
	if err != nil {
		return err
	}
	var tx finans.Transaction
	if all {
		tx, err = s.ledger.SellAll(a.ID)
	} else {
		tx, err = s.ledger.Sell(a.ID, q)
	}
	if err != nil {
		return err
	}
	s.executed(tx)
	return nil
}

func (s *Shell) executed(tx finans.Transaction) {
	s.print(renderer.TransactionMarkdown(renderer.NewTransaction(tx, s.catalog)))
	fmt.Fprintf(s.w, "Nakit bakiye: %s\n", s.ledger.Balance())
}

func (s *Shell) summary(args []string) error {
	s.print(renderer.SummaryMarkdown(s.portfolio()))
	return nil
}

func (s *Shell) holdings(args []string) error {
	s.print(renderer.HoldingsMarkdown(s.portfolio()))
	return nil
}

func (s *Shell) history(args []string) error {
	s.print(renderer.HistoryMarkdown(s.portfolio()))
	return nil
}

func (s *Shell) market(args []string) error {
	s.print(renderer.MarketMarkdown(renderer.NewMarket(s.catalog)))
	return nil
}

func (s *Shell) export(args []string) (err error) {
	switch len(args) {
	case 0:
		return finans.EncodeTransactions(s.w, s.ledger.Transactions()...)
	case 1:
	default:
		return usagef("en fazla bir dosya adı")
	}

	f, err := s.create(args[0])
	if err != nil {
		return fmt.Errorf("cannot create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cannot close export file: %w", cerr)
		}
	}()
	if err := finans.EncodeTransactions(f, s.ledger.Transactions()...); err != nil {
		return err
	}
	fmt.Fprintf(s.w, "%d işlem %s dosyasına yazıldı.\n", s.ledger.Len(), args[0])
	return nil
}

func (s *Shell) reset(args []string) error {
	s.ledger.Reset()
	fmt.Fprintf(s.w, "Portföy sıfırlandı. Nakit bakiye: %s\n", s.ledger.Balance())
	return nil
}

func (s *Shell) helpCmd(args []string) error {
	s.help()
	return nil
}

func (s *Shell) help() {
	writeHelp(s.w)
}

func writeHelp(w io.Writer) {
	fmt.Fprintln(w, "Komutlar:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-28s %s\n", c.usage, c.synopsis)
	}
	fmt.Fprintf(w, "  %-28s %s\n", "quit", "çıkış")
}
