package renderer

import (
	"strings"
	"testing"
	"text/template"
	"time"

	finans "github.com/nechh42/akilli-finans-asistan"
	"github.com/nechh42/akilli-finans-asistan/library"
)

// TestTemplatesParse checks that every embedded template is valid on its own.
func TestTemplatesParse(t *testing.T) {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded templates")
	}
	for _, e := range entries {
		content, err := templates.ReadFile("templates/" + e.Name())
		if err != nil {
			t.Fatalf("failed to read %s: %v", e.Name(), err)
		}
		if _, err := template.New(e.Name()).Funcs(funcs).Parse(string(content)); err != nil {
			t.Errorf("template %s does not parse: %v", e.Name(), err)
		}
	}
}

func newLedger(t *testing.T, c *finans.Catalog) *finans.Ledger {
	t.Helper()
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	return finans.NewLedger(c,
		finans.WithClock(func() time.Time { now = now.Add(time.Hour); return now }),
		finans.WithIDs(func() string { return "id" }),
	)
}

func assertContains(t *testing.T, doc string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(doc, w) {
			t.Errorf("markdown does not contain %q:\n%s", w, doc)
		}
	}
}

func assertNotContains(t *testing.T, doc string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(doc, w) {
			t.Errorf("markdown contains %q:\n%s", w, doc)
		}
	}
}

func TestPortfolioMarkdown_Empty(t *testing.T) {
	c := finans.BuiltinCatalog()
	p := NewPortfolio(newLedger(t, c), c)

	doc := PortfolioMarkdown(p)
	assertContains(t, doc,
		"# Simülasyon Modu",
		"## Portföy Özeti",
		"Henüz varlığınız bulunmamaktadır.",
		"Henüz işlem yapmadınız.",
	)
	assertNotContains(t, doc, "error ")
	if !p.TotalValue.Equal(finans.M(10000, "TRY")) {
		t.Errorf("TotalValue = %v, want 10000", p.TotalValue.Decimal())
	}
}

func TestPortfolioMarkdown_Trades(t *testing.T) {
	c := finans.BuiltinCatalog()
	l := newLedger(t, c)
	if _, err := l.Buy(3, finans.Q(100)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Buy(5, finans.Q(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Sell(3, finans.Q(40)); err != nil {
		t.Fatal(err)
	}
	p := NewPortfolio(l, c)

	if len(p.Holdings) != 2 || p.Holdings[0].Symbol != "USD" || p.Holdings[1].Symbol != "XAU" {
		t.Errorf("Holdings = %+v, want USD then XAU", p.Holdings)
	}
	if len(p.Transactions) != 3 || p.Transactions[0].Side != finans.SideSell {
		t.Errorf("Transactions = %+v, want the sell first", p.Transactions)
	}

	holdings := HoldingsMarkdown(p)
	assertContains(t, holdings, "Dolar (USD)", "Altın (XAU)", "| 60 |")
	assertNotContains(t, holdings, "Henüz varlığınız")

	history := HistoryMarkdown(p)
	assertContains(t, history, "Satım", "Alım", "01.03.2025 13:00", "01.03.2025 11:00")
	if strings.Index(history, "13:00") > strings.Index(history, "11:00") {
		t.Errorf("history is not most recent first:\n%s", history)
	}

	summary := SummaryMarkdown(p)
	assertContains(t, summary, "Nakit Bakiye", "Kâr/Zarar", "Toplam Değer")
}

func TestTransactionMarkdown(t *testing.T) {
	c := finans.BuiltinCatalog()
	l := newLedger(t, c)
	tx, err := l.Buy(2, finans.Q(0.1))
	if err != nil {
		t.Fatal(err)
	}
	doc := TransactionMarkdown(NewTransaction(tx, c))
	assertContains(t, doc, "Alım: 0.1 ETH @ ")
}

func TestMarketMarkdown(t *testing.T) {
	m := NewMarket(finans.BuiltinCatalog())
	var kinds []string
	for _, g := range m.Groups {
		kinds = append(kinds, g.Kind)
	}
	if got := strings.Join(kinds, ","); got != "Kripto,Döviz,Değerli Madenler" {
		t.Errorf("Groups = %q", got)
	}

	doc := MarketMarkdown(m)
	assertContains(t, doc,
		"# Piyasa Özeti",
		"## Kripto",
		"Bitcoin (BTC)",
		"+2.34%",
		"-1.27%",
		"Altın (XAU)",
	)
}

func TestRecommendationsMarkdown(t *testing.T) {
	doc := RecommendationsMarkdown(finans.Recommendations())
	assertContains(t, doc,
		"## Bitcoin (BTC) · Al",
		"Potansiyel Getiri: +9.77%",
		"Potansiyel Getiri: +3.24%",
		"Potansiyel Getiri: +5.44%",
		"Süre: 3-6 ay",
	)
}

func TestLibraryMarkdown(t *testing.T) {
	lib := library.Default()

	t.Run("all", func(t *testing.T) {
		doc := LibraryMarkdown(&Library{Articles: lib.Articles, Courses: lib.Courses})
		assertContains(t, doc, "## Makaleler", "Kripto Para Yatırımı Nasıl Yapılır?", "## Kurslar", "Teknik Analiz Temelleri")
		assertNotContains(t, doc, "Arama:")
	})
	t.Run("search", func(t *testing.T) {
		doc := LibraryMarkdown(&Library{Term: "kripto", Articles: lib.Search("kripto")})
		assertContains(t, doc, "Arama: *kripto*", "Kripto Para Yatırımı")
		assertNotContains(t, doc, "Enflasyondan Korunma", "## Kurslar")
	})
	t.Run("no match", func(t *testing.T) {
		doc := LibraryMarkdown(&Library{Term: "zzz"})
		assertContains(t, doc, "Aramanızla eşleşen içerik bulunamadı.")
	})
}

func TestFAQMarkdown(t *testing.T) {
	doc := FAQMarkdown(library.Default().FAQ)
	assertContains(t, doc, "## Nasıl yatırıma başlamalıyım?", "## Kripto para yatırımı yapmak güvenli mi?")
}

func TestArticleMarkdown(t *testing.T) {
	a, ok := library.Default().Article("05-altin-yatirimi")
	if !ok {
		t.Fatal("article not found")
	}
	assertContains(t, ArticleMarkdown(a), "# Altın Yatırımı", "7 dk okuma", "altın fonları")
}
