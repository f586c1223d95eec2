// Package finans implements the paper-trading core of the finance assistant.
//
// The assistant is an informational application: a market ticker, a handful of
// investment recommendations, an education library and a simulator where the
// user practices buying and selling assets with virtual cash. All market data
// is static mock content; nothing is persisted between sessions.
//
// The package provides:
//   - Money, Quantity and Percent types for exact decimal bookkeeping.
//   - A Catalog of assets acting as the static price list.
//   - A Ledger owning the cash balance, the holdings (quantity and weighted
//     average cost) and the append-only transaction log of one session.
//   - JSON encoding of the transaction log for export.
//
// This package is the foundation of the `asistan` command-line tool.
package finans
