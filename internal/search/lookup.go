package search

import (
	"context"
	"errors"

	"github.com/gabapcia/blockscope/internal/ledger"
)

// ErrNotFound is returned by Lookup implementations when the entity does not
// exist. It is an empty result, not a failure.
var ErrNotFound = errors.New("entity not found")

// AddressSummary is everything known about an address at one height. Either
// side may be nil.
type AddressSummary struct {
	Account   *ledger.Account
	Validator *ledger.Validator
}

// Lookup resolves single entities against the gateway. A height of zero
// means the latest height.
type Lookup interface {
	BlockByHeight(ctx context.Context, height uint64) (ledger.Block, error)
	BlockByHash(ctx context.Context, hash string) (ledger.Block, error)
	TransactionByHash(ctx context.Context, hash string) (ledger.Transaction, error)
	ValidatorByAddress(ctx context.Context, height uint64, address string) (ledger.Validator, error)
	AccountByAddress(ctx context.Context, height uint64, address string) (ledger.Account, error)

	// AddressSummary loads the account and validator of address pinned to
	// the same height.
	AddressSummary(ctx context.Context, address string) (AddressSummary, error)
}

// WindowSource provides the validator snapshot used by partial address scans.
type WindowSource interface {
	Window(ctx context.Context) (ledger.Window, error)
}
