package finans

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeTransactions writes transactions as JSON lines, one per transaction.
func EncodeTransactions(w io.Writer, txs ...Transaction) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, tx := range txs {
		if err := enc.Encode(tx); err != nil {
			return fmt.Errorf("cannot encode transaction #%d %q: %w", i+1, tx.ID, err)
		}
	}
	return nil
}
