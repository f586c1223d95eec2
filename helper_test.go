package finans

import (
	"fmt"
	"time"
)

// TRY is a helper for test to create lira money from const.
func TRY(v float64) Money { return M(v, "TRY") }

// priceMap is a mutable price list, to simulate price moves between orders.
type priceMap map[AssetID]Money

func (p priceMap) Price(id AssetID) (Money, bool) {
	m, ok := p[id]
	return m, ok
}

// fixedClock returns a clock ticking one minute per call.
func fixedClock() func() time.Time {
	t := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

// sequentialIDs returns an id source producing tx-1, tx-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tx-%d", n)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
