// Package canopy adapts a Canopy-style query gateway to the window cache and
// the search resolver. Responses are normalized into ledger entities at this
// boundary: known field variants are resolved explicitly, and anything that
// still does not form a valid entity is rejected with ErrDecode.
package canopy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockscope/internal/pkg/validator"
	"github.com/gabapcia/blockscope/internal/search"
	"github.com/gabapcia/blockscope/internal/windowcache"

	"golang.org/x/sync/errgroup"
)

const (
	routeHeight        = "/v1/query/height"
	routeBlocks        = "/v1/query/blocks"
	routeBlockByHeight = "/v1/query/block-by-height"
	routeBlockByHash   = "/v1/query/block-by-hash"
	routeTxByHash      = "/v1/query/tx-by-hash"
	routeValidator     = "/v1/query/validator"
	routeValidators    = "/v1/query/validators"
	routeAccount       = "/v1/query/account"
)

// ErrDecode is returned when a response cannot be normalized into an entity.
var ErrDecode = errors.New("invalid gateway payload")

type (
	pageParams struct {
		Height     uint64 `json:"height,omitempty"`
		PageNumber int    `json:"pageNumber"`
		PerPage    int    `json:"perPage"`
	}

	heightParams struct {
		Height uint64 `json:"height"`
	}

	hashParams struct {
		Hash string `json:"hash"`
	}

	addressParams struct {
		Height  uint64 `json:"height"`
		Address string `json:"address"`
	}
)

// client queries a gateway through a jsonrpc.Client.
type client struct {
	conn jsonrpc.Client
}

var (
	_ windowcache.Gateway = (*client)(nil)
	_ search.Lookup       = (*client)(nil)
)

// NewClient returns a gateway adapter issuing queries through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// isEmptyPayload reports whether data carries no entity at all.
func isEmptyPayload(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}"))
}

// query posts params to route and decodes the response into T. An empty
// response is search.ErrNotFound.
func query[T any](ctx context.Context, conn jsonrpc.Client, route string, params any) (T, error) {
	var v T

	data, err := conn.Query(ctx, route, params)
	if err != nil {
		return v, err
	}

	if isEmptyPayload(data) {
		return v, search.ErrNotFound
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %w", ErrDecode, route, err)
	}

	return v, nil
}

func decodeBlock(res blockResponse) (ledger.Block, error) {
	if res.BlockHeader == nil {
		return ledger.Block{}, search.ErrNotFound
	}

	b := res.toLedgerBlock()
	if err := validator.Var(b.Hash, "hash"); err != nil {
		return ledger.Block{}, fmt.Errorf("%w: block %d: %w", ErrDecode, b.Height, err)
	}

	return b, nil
}

func decodeValidator(res validatorResponse) (ledger.Validator, error) {
	if res.Address == "" {
		return ledger.Validator{}, search.ErrNotFound
	}

	v := res.toLedgerValidator()
	if err := validator.Var(v.Address, "address"); err != nil {
		return ledger.Validator{}, fmt.Errorf("%w: validator: %w", ErrDecode, err)
	}

	return v, nil
}

func decodeAccount(res accountResponse) (ledger.Account, error) {
	if res.Address == "" {
		return ledger.Account{}, search.ErrNotFound
	}

	a := res.toLedgerAccount()
	if err := validator.Var(a.Address, "address"); err != nil {
		return ledger.Account{}, fmt.Errorf("%w: account: %w", ErrDecode, err)
	}

	return a, nil
}

// BlocksPage implements windowcache.Gateway.
func (c *client) BlocksPage(ctx context.Context, page, perPage int) (ledger.Page[ledger.Block], error) {
	res, err := query[pageResponse[blockResponse]](ctx, c.conn, routeBlocks, pageParams{PageNumber: page, PerPage: perPage})
	if err != nil {
		return ledger.Page[ledger.Block]{}, err
	}

	blocks := make([]ledger.Block, 0, len(res.Results))
	for _, r := range res.Results {
		b, err := decodeBlock(r)
		if err != nil {
			return ledger.Page[ledger.Block]{}, fmt.Errorf("%w: blocks page %d: %w", ErrDecode, page, err)
		}

		blocks = append(blocks, b)
	}

	return ledger.Page[ledger.Block]{Results: blocks, TotalCount: res.TotalCount.Uint64()}, nil
}

// ValidatorsPage implements windowcache.Gateway.
func (c *client) ValidatorsPage(ctx context.Context, page, perPage int) (ledger.Page[ledger.Validator], error) {
	res, err := query[pageResponse[validatorResponse]](ctx, c.conn, routeValidators, pageParams{PageNumber: page, PerPage: perPage})
	if err != nil {
		return ledger.Page[ledger.Validator]{}, err
	}

	validators := make([]ledger.Validator, 0, len(res.Results))
	for _, r := range res.Results {
		v, err := decodeValidator(r)
		if err != nil {
			return ledger.Page[ledger.Validator]{}, fmt.Errorf("%w: validators page %d: %w", ErrDecode, page, err)
		}

		validators = append(validators, v)
	}

	return ledger.Page[ledger.Validator]{Results: validators, TotalCount: res.TotalCount.Uint64()}, nil
}

// Height returns the chain head height.
func (c *client) Height(ctx context.Context) (uint64, error) {
	res, err := query[heightResponse](ctx, c.conn, routeHeight, struct{}{})
	if err != nil {
		return 0, err
	}

	return res.Height.Uint64(), nil
}

// BlockByHeight implements search.Lookup.
func (c *client) BlockByHeight(ctx context.Context, height uint64) (ledger.Block, error) {
	res, err := query[blockResponse](ctx, c.conn, routeBlockByHeight, heightParams{Height: height})
	if err != nil {
		return ledger.Block{}, err
	}

	return decodeBlock(res)
}

// BlockByHash implements search.Lookup.
func (c *client) BlockByHash(ctx context.Context, hash string) (ledger.Block, error) {
	res, err := query[blockResponse](ctx, c.conn, routeBlockByHash, hashParams{Hash: hash})
	if err != nil {
		return ledger.Block{}, err
	}

	return decodeBlock(res)
}

// TransactionByHash implements search.Lookup.
func (c *client) TransactionByHash(ctx context.Context, hash string) (ledger.Transaction, error) {
	res, err := query[transactionResponse](ctx, c.conn, routeTxByHash, hashParams{Hash: hash})
	if err != nil {
		return ledger.Transaction{}, err
	}

	if res.TxHash == "" {
		return ledger.Transaction{}, search.ErrNotFound
	}

	tx := res.toLedgerTransaction()
	if err := validator.Var(tx.Hash, "hash"); err != nil {
		return ledger.Transaction{}, fmt.Errorf("%w: transaction: %w", ErrDecode, err)
	}

	return tx, nil
}

// ValidatorByAddress implements search.Lookup.
func (c *client) ValidatorByAddress(ctx context.Context, height uint64, address string) (ledger.Validator, error) {
	res, err := query[validatorResponse](ctx, c.conn, routeValidator, addressParams{Height: height, Address: address})
	if err != nil {
		return ledger.Validator{}, err
	}

	return decodeValidator(res)
}

// AccountByAddress implements search.Lookup.
func (c *client) AccountByAddress(ctx context.Context, height uint64, address string) (ledger.Account, error) {
	res, err := query[accountResponse](ctx, c.conn, routeAccount, addressParams{Height: height, Address: address})
	if err != nil {
		return ledger.Account{}, err
	}

	return decodeAccount(res)
}

// AddressSummary implements search.Lookup. It pins both lookups to the
// current head height so the account and validator describe the same state.
// A side that is not found is left nil; if neither exists the result is
// search.ErrNotFound.
func (c *client) AddressSummary(ctx context.Context, address string) (search.AddressSummary, error) {
	height, err := c.Height(ctx)
	if err != nil {
		return search.AddressSummary{}, err
	}

	var summary search.AddressSummary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := c.AccountByAddress(ctx, height, address)
		if errors.Is(err, search.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		summary.Account = &a
		return nil
	})
	g.Go(func() error {
		v, err := c.ValidatorByAddress(ctx, height, address)
		if errors.Is(err, search.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		summary.Validator = &v
		return nil
	})

	if err := g.Wait(); err != nil {
		return search.AddressSummary{}, err
	}

	if summary.Account == nil && summary.Validator == nil {
		return search.AddressSummary{}, search.ErrNotFound
	}

	return summary, nil
}
