package finans

import (
	"errors"
	"fmt"
	"testing"
)

func TestRecommendations_Upside(t *testing.T) {
	want := map[string]Percent{
		"BTC": 9.7702,
		"USD": 3.2357,
		"XAU": 5.4358,
	}
	recs := Recommendations()
	if len(recs) != len(want) {
		t.Fatalf("len(Recommendations()) = %d, want %d", len(recs), len(want))
	}
	for _, r := range recs {
		got := r.Upside()
		if diff := float64(got - want[r.Symbol]); diff > 0.001 || diff < -0.001 {
			t.Errorf("%s Upside() = %v, want %v", r.Symbol, got, want[r.Symbol])
		}
	}
}

func TestRejection(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("cannot buy: %w", ErrInsufficientBalance), "Yetersiz bakiye! Satın alma işlemi gerçekleştirilemiyor."},
		{fmt.Errorf("cannot sell: %w", ErrInsufficientHolding), "Yetersiz varlık! Satış işlemi gerçekleştirilemiyor."},
		{ErrInvalidQuantity, "Geçersiz miktar! Miktar sıfırdan büyük olmalıdır."},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		if got := Rejection(tt.err); got != tt.want {
			t.Errorf("Rejection(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
