package finans

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := TRY(10.5)
	if got := a.Add(TRY(0.25)); !got.Equal(TRY(10.75)) {
		t.Errorf("Add() = %v", got.Decimal())
	}
	if got := a.Sub(M(0.5, "")); !got.Equal(TRY(10)) || got.Currency() != "TRY" {
		t.Errorf("Sub() with a weak currency = %v %s", got.Decimal(), got.Currency())
	}
	if got := a.Mul(Q(2)); !got.Equal(TRY(21)) {
		t.Errorf("Mul() = %v", got.Decimal())
	}
	if got := a.Div(Q(2)); !got.Equal(TRY(5.25)) {
		t.Errorf("Div() = %v", got.Decimal())
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add() of different currencies did not panic")
		}
	}()
	TRY(1).Add(M(1, "USD"))
}

func TestMoney_Format(t *testing.T) {
	s := TRY(1234.567).String()
	if !strings.Contains(s, "1.234,57") && !strings.Contains(s, "1,234.57") {
		t.Errorf("String() = %q, want the amount rounded to 2 digits", s)
	}
	if got := TRY(0.001).SignedString(); got != "-" {
		t.Errorf("SignedString() of a rounded zero = %q, want %q", got, "-")
	}
	if got := TRY(5).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedString() = %q, want a leading +", got)
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(TRY(32.456))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"amount":"32.46","currency":"TRY"}`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"TRY", "USD", "EUR"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%q) = %v", code, err)
		}
	}
	for _, code := range []string{"", "XYZ"} {
		if err := ValidateCurrency(code); err == nil {
			t.Errorf("ValidateCurrency(%q) succeeded, want an error", code)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		p          Percent
		str, signd string
	}{
		{2.345, "2.35%", "+2.35%"},
		{-1.27, "-1.27%", "-1.27%"},
		{0.001, "0.00%", "-"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.str {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tt.p), got, tt.str)
		}
		if got := tt.p.SignedString(); got != tt.signd {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tt.p), got, tt.signd)
		}
	}
}
