package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	finans "github.com/nechh42/akilli-finans-asistan"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// env is a fake environment.
type env map[string]string

func (e env) get(key string) string { return e[key] }

// withFlags sets global flags for the duration of a test.
func withFlags(t *testing.T, config, prices, balance string, plain bool) {
	t.Helper()
	old := []string{*configFlag, *pricesFlag, *initialBalanceFlag}
	oldPlain := *plainFlag
	*configFlag, *pricesFlag, *initialBalanceFlag, *plainFlag = config, prices, balance, plain
	t.Cleanup(func() {
		*configFlag, *pricesFlag, *initialBalanceFlag, *plainFlag = old[0], old[1], old[2], oldPlain
	})
}

func TestResolveSettings(t *testing.T) {
	config := writeFile(t, "asistan.yaml", `
prices: from-file.json
jsonpath: "$.data[*]"
currency: USD
initial_balance: "5000"
model: gemini-2.5-pro
`)
	tests := []struct {
		name    string
		config  string
		prices  string
		balance string
		plain   bool
		env     env
		want    Settings
	}{
		{
			name: "defaults without config file",
			want: Settings{},
		},
		{
			name:   "config file",
			config: config,
			want:   Settings{Prices: "from-file.json", JSONPath: "$.data[*]", Currency: "USD", InitialBalance: "5000", Model: "gemini-2.5-pro"},
		},
		{
			name: "config file from the environment",
			env:  env{envConfig: config},
			want: Settings{Prices: "from-file.json", JSONPath: "$.data[*]", Currency: "USD", InitialBalance: "5000", Model: "gemini-2.5-pro"},
		},
		{
			name:   "environment overrides config file",
			config: config,
			env:    env{envPrices: "from-env.json", envInitialBalance: "750", envPlain: "true"},
			want:   Settings{Prices: "from-env.json", JSONPath: "$.data[*]", Currency: "USD", InitialBalance: "750", Plain: true, Model: "gemini-2.5-pro"},
		},
		{
			name:    "flags override environment",
			config:  config,
			prices:  "from-flag.json",
			balance: "100",
			plain:   true,
			env:     env{envPrices: "from-env.json", envInitialBalance: "750"},
			want:    Settings{Prices: "from-flag.json", JSONPath: "$.data[*]", Currency: "USD", InitialBalance: "100", Plain: true, Model: "gemini-2.5-pro"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the default configuration file must not be found.
			t.Chdir(t.TempDir())
			withFlags(t, tt.config, tt.prices, tt.balance, tt.plain)
			got, err := resolveSettings(tt.env.get)
			if err != nil {
				t.Fatalf("resolveSettings() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{name: "missing explicit file", config: filepath.Join(t.TempDir(), "missing.yaml"), wantErr: "no such file"},
		{name: "unknown key", config: writeFile(t, "bad.yaml", "price: x.json\n"), wantErr: "invalid configuration file"},
		{name: "not yaml", config: writeFile(t, "bad.yaml", "prices: [\n"), wantErr: "invalid configuration file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.config, "", "", false)
			_, err := resolveSettings(env{}.get)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("resolveSettings() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := loadCatalog(Settings{})
	if err != nil || c.Len() != 5 {
		t.Fatalf("loadCatalog(builtin) = %v, %v", c, err)
	}

	prices := writeFile(t, "prices.json", `{"data":[{"id":7,"symbol":"AAPL","name":"Apple","price":182.5}]}`)
	c, err = loadCatalog(Settings{Prices: prices, JSONPath: "$.data[*]", Currency: "USD"})
	if err != nil {
		t.Fatalf("loadCatalog() unexpected error: %v", err)
	}
	if p, ok := c.Price(7); !ok || !p.Equal(finans.M(182.5, "USD")) {
		t.Errorf("Price(7) = %v, %v", p.Decimal(), ok)
	}

	bad := writeFile(t, "bad.json", `{"assets":[{"id":1,"symbol":"A","price":0}]}`)
	if _, err := loadCatalog(Settings{Prices: bad}); err == nil || !strings.Contains(err.Error(), "invalid price document") {
		t.Errorf("loadCatalog(bad) error = %v", err)
	}
}

func TestNewLedger(t *testing.T) {
	c := finans.BuiltinCatalog()
	tests := []struct {
		balance string
		want    finans.Money
		wantErr bool
	}{
		{balance: "", want: finans.M(10000, "TRY")},
		{balance: "2500,50", want: finans.M(2500.5, "TRY")},
		{balance: "-1", wantErr: true},
		{balance: "lots", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.balance, func(t *testing.T) {
			l, err := newLedger(Settings{InitialBalance: tt.balance}, c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newLedger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !l.Balance().Equal(tt.want) {
				t.Errorf("Balance() = %v %s, want %v", l.Balance().Decimal(), l.Balance().Currency(), tt.want.Decimal())
			}
		})
	}
}
