package finans

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the currency of the built-in market data.
const DefaultCurrency = "TRY"

// DefaultInitialBalance is the cash a new simulated portfolio starts with.
var DefaultInitialBalance = M(10000, DefaultCurrency)

var (
	// ErrInsufficientBalance rejects a buy whose cost exceeds the cash balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientHolding rejects a sell of more than is held, or of an asset not held.
	ErrInsufficientHolding = errors.New("insufficient holding")
	// ErrInvalidQuantity rejects orders whose quantity is not strictly positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Ledger is a simulated portfolio: a cash balance, the holdings bought with
// it, and the append-only log of executed transactions.
//
// Orders execute at the current price given by Prices. A rejected order
// leaves the Ledger unchanged.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	prices  Prices
	initial Money
	now     func() time.Time
	newID   func() string

	balance  Money
	order    []AssetID // first-buy order of current holdings
	holdings map[AssetID]Holding
	txs      []Transaction
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithInitialBalance sets the starting cash, and the ledger's currency.
func WithInitialBalance(m Money) Option {
	return func(l *Ledger) { l.initial = m }
}

// WithClock sets the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDs sets the source of transaction ids.
func WithIDs(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// NewLedger creates a Ledger trading at prices.
func NewLedger(prices Prices, opts ...Option) *Ledger {
	l := &Ledger{
		prices:  prices,
		initial: DefaultInitialBalance,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Reset()
	return l
}

// Reset discards all holdings and transactions and restores the initial balance.
func (l *Ledger) Reset() {
	l.balance = l.initial
	l.order = nil
	l.holdings = make(map[AssetID]Holding)
	l.txs = nil
}

// Buy spends cash to acquire q units of an asset at its current price.
//
// The holding's average price becomes the weighted average of the previous
// cost basis and this purchase.
func (l *Ledger) Buy(id AssetID, q Quantity) (Transaction, error) {
	if !q.IsPositive() {
		return Transaction{}, fmt.Errorf("cannot buy %s units of #%d: %w", q, id, ErrInvalidQuantity)
	}
	price, ok := l.prices.Price(id)
	if !ok {
		return Transaction{}, fmt.Errorf("cannot buy #%d: %w", id, ErrUnknownAsset)
	}
	if price.Currency() != l.Currency() {
		return Transaction{}, fmt.Errorf("cannot buy #%d priced in %s with a %s balance", id, price.Currency(), l.Currency())
	}
	cost := price.Mul(q)
	if cost.GreaterThan(l.balance) {
		return Transaction{}, fmt.Errorf("cannot buy %s units of #%d for %s with %s: %w", q, id, cost, l.balance, ErrInsufficientBalance)
	}

	tx := l.append(SideBuy, id, q, price)
	l.balance = l.balance.Sub(cost)
	h, exists := l.holdings[id]
	if !exists {
		l.order = append(l.order, id)
		l.holdings[id] = Holding{Asset: id, Quantity: q, Cost: cost}
		return tx, nil
	}
	h.Quantity = h.Quantity.Add(q)
	h.Cost = h.Cost.Add(cost)
	l.holdings[id] = h
	return tx, nil
}

// Sell releases q units of a held asset at its current price.
// The average price of what remains is unchanged.
func (l *Ledger) Sell(id AssetID, q Quantity) (Transaction, error) {
	if !q.IsPositive() {
		return Transaction{}, fmt.Errorf("cannot sell %s units of #%d: %w", q, id, ErrInvalidQuantity)
	}
	h, exists := l.holdings[id]
	if !exists {
		return Transaction{}, fmt.Errorf("cannot sell #%d, it is not held: %w", id, ErrInsufficientHolding)
	}
	if q.GreaterThan(h.Quantity) {
		return Transaction{}, fmt.Errorf("cannot sell %s units of #%d, only %s held: %w", q, id, h.Quantity, ErrInsufficientHolding)
	}
	price, ok := l.prices.Price(id)
	if !ok {
		return Transaction{}, fmt.Errorf("cannot sell #%d: %w", id, ErrUnknownAsset)
	}

	tx := l.append(SideSell, id, q, price)
	l.balance = l.balance.Add(price.Mul(q))
	remaining := h.Quantity.Sub(q)
	if remaining.IsZero() {
		delete(l.holdings, id)
		l.order = slices.DeleteFunc(l.order, func(a AssetID) bool { return a == id })
		return tx, nil
	}
	// The remaining units keep their share of the cost basis.
	h.Cost = h.Cost.Mul(remaining).Div(h.Quantity)
	h.Quantity = remaining
	l.holdings[id] = h
	return tx, nil
}

// SellAll sells the whole holding of an asset.
func (l *Ledger) SellAll(id AssetID) (Transaction, error) {
	h, exists := l.holdings[id]
	if !exists {
		return Transaction{}, fmt.Errorf("cannot sell #%d, it is not held: %w", id, ErrInsufficientHolding)
	}
	return l.Sell(id, h.Quantity)
}

func (l *Ledger) append(side Side, id AssetID, q Quantity, price Money) Transaction {
	tx := Transaction{
		ID:       l.newID(),
		Time:     l.now(),
		Asset:    id,
		Side:     side,
		Quantity: q,
		Price:    price,
	}
	l.txs = append(l.txs, tx)
	return tx
}

// price returns the current price of an asset. Unknown assets are worth nothing.
func (l *Ledger) price(id AssetID) Money {
	p, ok := l.prices.Price(id)
	if !ok {
		return M(0, l.Currency())
	}
	return p
}

// TotalHoldingsValue returns the market value of all holdings at current prices.
func (l *Ledger) TotalHoldingsValue() Money {
	total := M(0, l.Currency())
	for h := range l.Holdings() {
		total = total.Add(h.MarketValue(l.price(h.Asset)))
	}
	return total
}

// UnrealizedProfitLoss returns the difference between the market value of
// the holdings and their cost basis.
func (l *Ledger) UnrealizedProfitLoss() Money {
	total := M(0, l.Currency())
	for h := range l.Holdings() {
		total = total.Add(h.Gain(l.price(h.Asset)))
	}
	return total
}

// TotalValue returns cash plus the market value of holdings.
func (l *Ledger) TotalValue() Money {
	return l.balance.Add(l.TotalHoldingsValue())
}

func (l *Ledger) Balance() Money        { return l.balance }
func (l *Ledger) InitialBalance() Money { return l.initial }
func (l *Ledger) Currency() string      { return l.initial.Currency() }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.txs) }

// Holding returns the holding of an asset, if any.
func (l *Ledger) Holding(id AssetID) (Holding, bool) {
	h, ok := l.holdings[id]
	return h, ok
}

// Holdings iterates over current holdings in first-buy order.
func (l *Ledger) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, id := range l.order {
			if !yield(l.holdings[id]) {
				return
			}
		}
	}
}

// Transactions returns a copy of the transaction log in insertion order.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.txs)
}

// History returns the transactions, most recent first.
func (l *Ledger) History() []Transaction {
	h := slices.Clone(l.txs)
	slices.Reverse(h)
	return h
}
