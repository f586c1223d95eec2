package finans

// Holding is a quantity of one asset owned by a Ledger, with the total
// amount paid for it.
type Holding struct {
	Asset    AssetID
	Quantity Quantity
	Cost     Money // cost basis of the whole quantity
}

// AvgPrice returns the weighted average acquisition price per unit.
func (h Holding) AvgPrice() Money { return h.Cost.Div(h.Quantity) }

// MarketValue returns the value of the holding at price.
func (h Holding) MarketValue(price Money) Money { return price.Mul(h.Quantity) }

// Gain returns the unrealized profit or loss of the holding at price.
func (h Holding) Gain(price Money) Money { return h.MarketValue(price).Sub(h.Cost) }

// Return returns the unrealized gain relative to the cost basis.
func (h Holding) Return(price Money) Percent {
	return ratio(h.Gain(price).Decimal(), h.Cost.Decimal())
}
