package renderer

import (
	"time"

	finans "github.com/nechh42/akilli-finans-asistan"
)

// Portfolio is the simulator's view of a Ledger.
type Portfolio struct {
	Currency       string
	InitialBalance finans.Money
	Balance        finans.Money
	HoldingsValue  finans.Money
	TotalValue     finans.Money
	ProfitLoss     finans.Money   // unrealized
	TotalReturn    finans.Percent // of total value over the initial balance
	Holdings       []PortfolioHolding
	Transactions   []PortfolioTransaction // most recent first
}

// PortfolioHolding is one line of the holdings table.
type PortfolioHolding struct {
	Asset    finans.AssetID
	Symbol   string
	Name     string
	Quantity finans.Quantity
	AvgPrice finans.Money
	Price    finans.Money
	Value    finans.Money
	Gain     finans.Money
	Return   finans.Percent
}

// PortfolioTransaction is one line of the transaction history.
type PortfolioTransaction struct {
	ID       string
	Time     time.Time
	Symbol   string
	Name     string
	Side     finans.Side
	Quantity finans.Quantity
	Price    finans.Money
	Amount   finans.Money
}

// Action returns the Turkish label of the transaction side.
func (t PortfolioTransaction) Action() string {
	if t.Side == finans.SideSell {
		return "Satım"
	}
	return "Alım"
}

// NewPortfolio builds the view of a ledger. Asset names and current prices
// come from the catalog.
func NewPortfolio(l *finans.Ledger, c *finans.Catalog) *Portfolio {
	p := &Portfolio{
		Currency:       l.Currency(),
		InitialBalance: l.InitialBalance(),
		Balance:        l.Balance(),
		HoldingsValue:  l.TotalHoldingsValue(),
		TotalValue:     l.TotalValue(),
		ProfitLoss:     l.UnrealizedProfitLoss(),
	}
	if initial := l.InitialBalance().Decimal(); !initial.IsZero() {
		p.TotalReturn = finans.Percent(p.TotalValue.Decimal().Sub(initial).Div(initial).Shift(2).InexactFloat64())
	}

	for h := range l.Holdings() {
		a, _ := c.Asset(h.Asset)
		price, ok := c.Price(h.Asset)
		if !ok {
			price = finans.M(0, l.Currency())
		}
		p.Holdings = append(p.Holdings, PortfolioHolding{
			Asset:    h.Asset,
			Symbol:   a.Symbol,
			Name:     a.Name,
			Quantity: h.Quantity,
			AvgPrice: h.AvgPrice(),
			Price:    price,
			Value:    h.MarketValue(price),
			Gain:     h.Gain(price),
			Return:   h.Return(price),
		})
	}

	for _, tx := range l.History() {
		p.Transactions = append(p.Transactions, NewTransaction(tx, c))
	}
	return p
}

// NewTransaction builds the view of a single transaction.
func NewTransaction(tx finans.Transaction, c *finans.Catalog) PortfolioTransaction {
	a, _ := c.Asset(tx.Asset)
	return PortfolioTransaction{
		ID:       tx.ID,
		Time:     tx.Time,
		Symbol:   a.Symbol,
		Name:     a.Name,
		Side:     tx.Side,
		Quantity: tx.Quantity,
		Price:    tx.Price,
		Amount:   tx.Amount(),
	}
}

// SummaryMarkdown renders the balance and valuation figures.
func SummaryMarkdown(p *Portfolio) string {
	return renderTemplate("summary", "portfolio_summary.md", nil, p)
}

// HoldingsMarkdown renders the holdings table.
func HoldingsMarkdown(p *Portfolio) string {
	return renderTemplate("holdings", "portfolio_holdings.md", nil, p)
}

// HistoryMarkdown renders the transaction history, most recent first.
func HistoryMarkdown(p *Portfolio) string {
	return renderTemplate("history", "portfolio_history.md", nil, p)
}

// PortfolioMarkdown renders the whole simulator page.
func PortfolioMarkdown(p *Portfolio) string {
	partials := map[string]string{
		"portfolio_summary":  "portfolio_summary.md",
		"portfolio_holdings": "portfolio_holdings.md",
		"portfolio_history":  "portfolio_history.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, p)
}

// TransactionMarkdown renders the confirmation of an executed order.
func TransactionMarkdown(t PortfolioTransaction) string {
	return renderTemplate("transaction", "transaction.md", nil, t)
}
