// Package ledgerview derives views from a ledger.Window without touching the
// network. Every function is pure: the same window and arguments always give
// the same output, and the window is never modified.
package ledgerview

import "github.com/gabapcia/blockscope/internal/ledger"

// RangeResult holds the blocks matching a height range.
// TotalCount is the number of matches before the limit was applied.
type RangeResult struct {
	Results    []ledger.Block
	TotalCount int
}

// BlocksInHeightRange returns the blocks with from <= height <= to, in window
// order, truncated to limit. A limit <= 0 means unlimited.
//
// Blocks are selected by height, never by position, since the window is not
// guaranteed to be contiguous.
func BlocksInHeightRange(w ledger.Window, from, to uint64, limit int) RangeResult {
	var matches []ledger.Block
	for _, b := range w.Blocks {
		if b.Height >= from && b.Height <= to {
			matches = append(matches, b)
		}
	}

	result := RangeResult{Results: matches, TotalCount: len(matches)}
	if limit > 0 && len(matches) > limit {
		result.Results = matches[:limit:limit]
	}

	return result
}

// BlocksForAnalytics returns the most recent min(pageCount*PageSize, len)
// blocks of the window. When the window carries no page size the whole window
// is returned.
func BlocksForAnalytics(w ledger.Window, pageCount int) []ledger.Block {
	n := len(w.Blocks)
	if w.PageSize > 0 && pageCount >= 0 {
		n = min(pageCount*w.PageSize, n)
	}

	out := make([]ledger.Block, n)
	copy(out, w.Blocks[:n])
	return out
}

// TransactionsInRange flattens the transactions of the blocks with
// from <= height <= to, visiting at most maxBlocks blocks (maxBlocks <= 0
// means all). Each transaction is stamped with its block's height and time,
// which the upstream payload does not reliably carry.
func TransactionsInRange(w ledger.Window, from, to uint64, maxBlocks int) []ledger.Transaction {
	blocks := BlocksInHeightRange(w, from, to, maxBlocks).Results

	var txs []ledger.Transaction
	for _, b := range blocks {
		for _, tx := range b.Transactions {
			tx.Height = b.Height
			tx.Time = b.Time
			txs = append(txs, tx)
		}
	}

	return txs
}
