package finans

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeTransactions(t *testing.T) {
	l := newTestLedger(priceMap{1: TRY(32.45), 5: TRY(2134)})
	must(l.Buy(1, Q(10)))
	must(l.Buy(5, Q(0.5)))
	must(l.Sell(1, Q(2.5)))

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, l.Transactions()...); err != nil {
		t.Fatalf("EncodeTransactions() unexpected error: %v", err)
	}
	want := strings.Join([]string{
		`{"id":"tx-1","time":"2025-03-01T10:01:00Z","asset":1,"side":"buy","quantity":"10","price":"32.45","currency":"TRY"}`,
		`{"id":"tx-2","time":"2025-03-01T10:02:00Z","asset":5,"side":"buy","quantity":"0.5","price":"2134","currency":"TRY"}`,
		`{"id":"tx-3","time":"2025-03-01T10:03:00Z","asset":1,"side":"sell","quantity":"2.5","price":"32.45","currency":"TRY"}`,
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeTransactions() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeTransactions_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf); err != nil {
		t.Fatalf("EncodeTransactions() unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("EncodeTransactions() wrote %q for no transactions", buf.String())
	}
}
