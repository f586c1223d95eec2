package renderer

import (
	finans "github.com/nechh42/akilli-finans-asistan"
)

// Market is the market ticker grouped by asset kind.
type Market struct {
	Groups []MarketGroup
}

// MarketGroup is a set of assets of the same kind.
type MarketGroup struct {
	Kind   string
	Assets []finans.Asset
}

// NewMarket builds the market view of a catalog. Groups keep the order in
// which their first asset appears.
func NewMarket(c *finans.Catalog) *Market {
	m := new(Market)
	index := make(map[string]int)
	for a := range c.Assets() {
		kind := a.Kind
		if kind == "" {
			kind = "Diğer"
		}
		i, ok := index[kind]
		if !ok {
			i = len(m.Groups)
			index[kind] = i
			m.Groups = append(m.Groups, MarketGroup{Kind: kind})
		}
		m.Groups[i].Assets = append(m.Groups[i].Assets, a)
	}
	return m
}

// MarketMarkdown renders the market ticker.
func MarketMarkdown(m *Market) string {
	return renderTemplate("market", "market.md", nil, m)
}

// RecommendationsMarkdown renders investment recommendations.
func RecommendationsMarkdown(recs []finans.Recommendation) string {
	return renderTemplate("recommendations", "recommendations.md", nil, recs)
}

