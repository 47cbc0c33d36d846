// Package store implements the inventory and sales ledger of a small retail
// shop: products purchased in bulk, unit sales recorded against them, and
// the profitability views derived from both.
//
// The [Ledger] is the sole owner of the product and sale collections. Every
// mutation is synchronous and leaves the stock invariants intact. State is
// persisted as JSONL files in a store directory (see [Open]) and the
// affected collection is rewritten on every mutation.
package store
