package finans

// Recommendation is a static investment idea shown on the recommendations page.
type Recommendation struct {
	Type      string
	Name      string
	Symbol    string
	Action    string // Al, Tut or Sat
	Risk      string // Düşük, Orta or Yüksek
	Price     Money
	Target    Money
	TimeFrame string
	Reasoning string
}

// Upside returns the potential return from price to target.
func (r Recommendation) Upside() Percent {
	return ratio(r.Target.Sub(r.Price).Decimal(), r.Price.Decimal())
}

// Recommendations returns the built-in recommendations.
func Recommendations() []Recommendation {
	return []Recommendation{
		{
			Type:      "Kripto",
			Name:      "Bitcoin",
			Symbol:    "BTC",
			Action:    "Al",
			Risk:      "Orta",
			Price:     M(683245, DefaultCurrency),
			Target:    M(750000, DefaultCurrency),
			TimeFrame: "1-3 ay",
			Reasoning: "Bitcoin son dönemde güçlü bir momentum gösteriyor. Kurumsal alımlar ve artan adaptasyon, fiyatı destekleyici faktörler arasında.",
		},
		{
			Type:      "Döviz",
			Name:      "Amerikan Doları",
			Symbol:    "USD",
			Action:    "Tut",
			Risk:      "Düşük",
			Price:     M(32.45, DefaultCurrency),
			Target:    M(33.5, DefaultCurrency),
			TimeFrame: "2-4 hafta",
			Reasoning: "Türkiye'deki yüksek enflasyon ve ekonomik belirsizlik, dolara olan talebi artırıyor. Merkez bankasının faiz politikası değişmedikçe, dolar güçlü kalmaya devam edebilir.",
		},
		{
			Type:      "Değerli Maden",
			Name:      "Altın",
			Symbol:    "XAU",
			Action:    "Al",
			Risk:      "Düşük",
			Price:     M(2134, DefaultCurrency),
			Target:    M(2250, DefaultCurrency),
			TimeFrame: "3-6 ay",
			Reasoning: "Küresel ekonomik belirsizlik ve jeopolitik riskler, güvenli liman olarak altına olan talebi artırıyor. Enflasyonist ortamda altın iyi bir koruma sağlayabilir.",
		},
	}
}
