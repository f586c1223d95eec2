package finans

import (
	"bytes"
	"cmp"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultAssetsPath selects the asset objects in a price document.
const DefaultAssetsPath = "$.assets[*]"

//go:embed market.json
var builtinMarket []byte

// ErrUnknownAsset is returned when an asset reference cannot be resolved.
var ErrUnknownAsset = errors.New("unknown asset")

// AssetID identifies an asset in the catalog.
type AssetID int

// Asset is a static market reference: it never changes during a session.
type Asset struct {
	ID     AssetID
	Name   string
	Symbol string
	Kind   string  // market group, e.g. Kripto or Döviz
	Price  Money   // current unit price
	Change Percent // daily change
}

// Prices is the price lookup the Ledger trades against.
type Prices interface {
	// Price returns the current unit price of an asset, false if the asset is unknown.
	Price(id AssetID) (Money, bool)
}

// Catalog is the immutable list of tradable assets.
type Catalog struct {
	assets   []Asset // sorted by ID
	bySymbol map[string]AssetID
}

// NewCatalog validates assets and returns a catalog of them.
func NewCatalog(assets ...Asset) (*Catalog, error) {
	c := &Catalog{
		assets:   slices.Clone(assets),
		bySymbol: make(map[string]AssetID, len(assets)),
	}
	slices.SortFunc(c.assets, func(a, b Asset) int { return cmp.Compare(a.ID, b.ID) })

	var errs error
	for i, a := range c.assets {
		if a.ID <= 0 {
			errs = errors.Join(errs, fmt.Errorf("asset %q: id must be positive, got %d", a.Symbol, a.ID))
		}
		if i > 0 && c.assets[i-1].ID == a.ID {
			errs = errors.Join(errs, fmt.Errorf("asset id %d is defined twice", a.ID))
		}
		symbol := strings.ToUpper(strings.TrimSpace(a.Symbol))
		if symbol == "" {
			errs = errors.Join(errs, fmt.Errorf("asset %d: symbol is missing", a.ID))
		} else if _, exists := c.bySymbol[symbol]; exists {
			errs = errors.Join(errs, fmt.Errorf("asset symbol %q is defined twice", symbol))
		}
		if !a.Price.IsPositive() {
			errs = errors.Join(errs, fmt.Errorf("asset %q: price must be positive, got %v", a.Symbol, a.Price.Decimal()))
		}
		if err := ValidateCurrency(a.Price.Currency()); err != nil {
			errs = errors.Join(errs, fmt.Errorf("asset %q: %w", a.Symbol, err))
		}
		c.assets[i].Symbol = symbol
		c.bySymbol[symbol] = a.ID
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// BuiltinCatalog returns the catalog of mock market data shipped with the application.
func BuiltinCatalog() *Catalog {
	c, err := DecodeCatalog(bytes.NewReader(builtinMarket), DefaultAssetsPath, "")
	if err != nil {
		panic(fmt.Sprintf("invalid builtin market data: %v", err))
	}
	return c
}

// DecodeCatalog reads a JSON price document and selects the asset objects
// with a JSONPath expression.
//
// Each asset object has the properties "id", "name", "symbol", "price" and
// optionally "kind" and "change". Prices are in currency, or in the
// document's top-level "currency" property when currency is empty.
func DecodeCatalog(r io.Reader, path, currency string) (*Catalog, error) {
	if path == "" {
		path = DefaultAssetsPath
	}
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep prices exact
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("price document is not a correct json: %w", err)
	}

	if currency == "" {
		if root, ok := jobj.(map[string]any); ok {
			currency, _ = root["currency"].(string)
		}
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select assets with %q: %w", path, err)
	}
	// jsonpath returns a single object for a plain selector, and a list for wildcards.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	assets := make([]Asset, 0, len(jlist))
	for i, jitem := range jlist {
		a, err := decodeAsset(jitem, currency)
		if err != nil {
			return nil, fmt.Errorf("asset #%d selected by %q: %w", i+1, path, err)
		}
		assets = append(assets, a)
	}
	return NewCatalog(assets...)
}

// decodeAsset converts one generic json object into an Asset.
func decodeAsset(jitem any, currency string) (Asset, error) {
	jobj, ok := jitem.(map[string]any)
	if !ok {
		return Asset{}, fmt.Errorf("must be an object, got %T", jitem)
	}

	id, err := jsonDecimal(jobj, "id")
	if err != nil {
		return Asset{}, err
	}
	if !id.IsInteger() {
		return Asset{}, fmt.Errorf("property %q must be an integer, got %v", "id", id)
	}
	if id.LessThan(decimal.NewFromInt(math.MinInt)) || id.GreaterThan(decimal.NewFromInt(math.MaxInt)) {
		return Asset{}, fmt.Errorf("property %q is out of range, got %v", "id", id)
	}
	price, err := jsonDecimal(jobj, "price")
	if err != nil {
		return Asset{}, err
	}
	var change decimal.Decimal
	if _, exists := jobj["change"]; exists {
		if change, err = jsonDecimal(jobj, "change"); err != nil {
			return Asset{}, err
		}
	}
	name, _ := jobj["name"].(string)
	symbol, _ := jobj["symbol"].(string)
	kind, _ := jobj["kind"].(string)

	return Asset{
		ID:     AssetID(id.IntPart()),
		Name:   name,
		Symbol: symbol,
		Kind:   kind,
		Price:  M(price, currency),
		Change: Percent(change.InexactFloat64()),
	}, nil
}

// jsonDecimal reads a number property, numbers written as strings are tolerated.
func jsonDecimal(jobj map[string]any, key string) (decimal.Decimal, error) {
	jval, exists := jobj[key]
	if !exists {
		return decimal.Zero, fmt.Errorf("missing property %q", key)
	}
	var s string
	switch v := jval.(type) {
	case json.Number:
		s = v.String()
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		s = strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
	default:
		return decimal.Zero, fmt.Errorf("property %q must be of type 'number', got %T", key, jval)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("property %q must be a number: %w", key, err)
	}
	return d, nil
}

// Price implements Prices.
func (c *Catalog) Price(id AssetID) (Money, bool) {
	a, ok := c.Asset(id)
	if !ok {
		return Money{}, false
	}
	return a.Price, true
}

// Asset returns the asset with this id.
func (c *Catalog) Asset(id AssetID) (Asset, bool) {
	i, found := slices.BinarySearchFunc(c.assets, id, func(a Asset, id AssetID) int { return cmp.Compare(a.ID, id) })
	if !found {
		return Asset{}, false
	}
	return c.assets[i], true
}

// Lookup resolves a user reference to an asset: either its numeric id or its
// ticker symbol, case-insensitive.
func (c *Catalog) Lookup(ref string) (Asset, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if a, ok := c.Asset(AssetID(n)); ok {
			return a, nil
		}
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, ref)
	}
	id, ok := c.bySymbol[strings.ToUpper(ref)]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, ref)
	}
	a, _ := c.Asset(id)
	return a, nil
}

// Currency returns the currency of the first asset, or the default currency
// for an empty catalog.
func (c *Catalog) Currency() string {
	if len(c.assets) == 0 {
		return DefaultCurrency
	}
	return c.assets[0].Price.Currency()
}

// Len returns the number of assets.
func (c *Catalog) Len() int { return len(c.assets) }

// Assets iterates over assets in id order.
func (c *Catalog) Assets() iter.Seq[Asset] {
	return slices.Values(c.assets)
}

// Symbols returns all ticker symbols in id order.
func (c *Catalog) Symbols() []string {
	symbols := make([]string, 0, len(c.assets))
	for _, a := range c.assets {
		symbols = append(symbols, a.Symbol)
	}
	return symbols
}
