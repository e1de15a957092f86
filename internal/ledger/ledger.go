// Package ledger defines the chain entities the explorer works with: blocks,
// transactions, validators, accounts and the bounded window of recent blocks
// every derived view is computed from.
package ledger

import "time"

// Block is a confirmed block. Its content never changes once fetched.
type Block struct {
	Height       uint64        `json:"height"`
	Hash         string        `json:"hash"`
	Time         int64         `json:"time"` // unix microseconds
	Proposer     string        `json:"proposer"`
	NumTx        uint32        `json:"numTx"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

// Timestamp returns the block time as a time.Time.
func (b Block) Timestamp() time.Time {
	return time.UnixMicro(b.Time)
}

// Transaction is a transfer or message included in a block. Height is a weak
// reference to the block it belongs to.
type Transaction struct {
	Hash        string `json:"hash"`
	Height      uint64 `json:"height"`
	Sender      string `json:"sender"`
	Recipient   string `json:"recipient"`
	MessageType string `json:"messageType"`
	Amount      uint64 `json:"amount"` // micro-denomination
	Fee         uint64 `json:"fee"`
	Time        int64  `json:"time"` // unix microseconds
}

// Validator is a staked participant. The same address may also own an Account.
type Validator struct {
	Address         string `json:"address"`
	Name            string `json:"name"`
	StakedAmount    uint64 `json:"stakedAmount"`
	UnstakingHeight uint64 `json:"unstakingHeight"`
	MaxPausedHeight uint64 `json:"maxPausedHeight"`
	Delegate        bool   `json:"delegate"`
}

// Account is a balance holder.
type Account struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// Window is one immutable snapshot of the most recent blocks of a network.
//
// Blocks are unique by height and ordered by descending height. They are not
// guaranteed to be contiguous. A Window is replaced wholesale on refresh and
// must never be mutated after it is published.
type Window struct {
	Network    string      `json:"network"`
	Epoch      uint64      `json:"epoch"` // endpoint generation the window was fetched under
	Blocks     []Block     `json:"blocks"`
	Validators []Validator `json:"validators"`
	FetchedAt  time.Time   `json:"fetchedAt"`
	TotalCount uint64      `json:"totalCount"` // gateway reported block count
	PageSize   int         `json:"pageSize"`
}

// IsEmpty reports whether the window holds no blocks.
func (w Window) IsEmpty() bool {
	return len(w.Blocks) == 0
}

// HeadHeight returns the highest block height in the window, or zero when empty.
func (w Window) HeadHeight() uint64 {
	if w.IsEmpty() {
		return 0
	}

	return w.Blocks[0].Height
}

// Age returns how long ago the window was fetched relative to now.
func (w Window) Age(now time.Time) time.Duration {
	return now.Sub(w.FetchedAt)
}

// Page is one page of a paginated gateway listing.
type Page[T any] struct {
	Results    []T    `json:"results"`
	TotalCount uint64 `json:"totalCount"`
}
