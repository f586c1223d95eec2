package finans

import (
	"fmt"
	"time"
)

// Side is the direction of a Transaction.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

func (s Side) String() string { return string(s) }

// Transaction is an executed order. Transactions are immutable once
// appended to a Ledger.
type Transaction struct {
	ID       string
	Time     time.Time
	Asset    AssetID
	Side     Side
	Quantity Quantity
	Price    Money // unit price at execution
}

// Amount returns the cash exchanged: price times quantity.
func (t Transaction) Amount() Money { return t.Price.Mul(t.Quantity) }

// Equal reports whether both transactions are the same record.
func (t Transaction) Equal(u Transaction) bool {
	return t.ID == u.ID &&
		t.Time.Equal(u.Time) &&
		t.Asset == u.Asset &&
		t.Side == u.Side &&
		t.Quantity.Equal(u.Quantity) &&
		t.Price.Equal(u.Price)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s #%d @ %s", t.Side, t.Quantity, t.Asset, t.Price)
}

// MarshalJSON writes the transaction as a flat object with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", t.ID)
	w.Append("time", t.Time.UTC().Format(time.RFC3339))
	w.Append("asset", t.Asset)
	w.Append("side", t.Side)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.Decimal())
	w.Append("currency", t.Price.Currency())
	return w.MarshalJSON()
}
