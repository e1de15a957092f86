package search

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/blockscope/internal/pkg/logger"
	"github.com/gabapcia/blockscope/internal/pkg/types"

	"github.com/sourcegraph/conc"
)

var (
	// ErrAllLookupsFailed is returned when every lookup of a search failed
	// with something other than ErrNotFound.
	ErrAllLookupsFailed = errors.New("all lookups failed")

	// ErrOrchestration is returned when a lookup branch panicked.
	ErrOrchestration = errors.New("search orchestration failed")
)

// branch is one speculative lookup of a search.
type branch struct {
	name string
	run  func(ctx context.Context) ([]Result, error)
}

// branchOutcome is what one branch settled with.
type branchOutcome struct {
	results []Result
	err     error
}

// dispatcher runs the lookups a query calls for.
type dispatcher struct {
	lookup        Lookup
	window        WindowSource
	lookupTimeout time.Duration
}

// branches returns the lookups for q, in merge priority order.
func (d dispatcher) branches(q Query) []branch {
	switch q.Kind {
	case Height:
		height, err := strconv.ParseUint(q.Raw, 10, 64)
		if err != nil {
			return nil // beyond any chain height
		}

		return []branch{d.blockByHeight(height)}
	case Hash:
		return []branch{
			d.transactionByHash(q.Raw),
			d.blockByHash(q.Raw),
		}
	case FullAddress:
		return []branch{
			d.validatorByAddress(q.Raw),
			d.accountByAddress(q.Raw),
			d.addressSummary(q.Raw),
		}
	case PartialAddress:
		padded := types.PadHexLeft(q.Raw, addressLength)
		return []branch{
			d.validatorPrefixScan(q.Raw),
			d.validatorByAddress(q.Raw),
			d.accountByAddress(q.Raw),
			d.accountByAddress(padded),
		}
	default:
		return nil
	}
}

// run executes every branch of q concurrently and merges their results in
// branch order once all have settled. Failed branches are dropped. An error
// is returned only when a branch panicked or every branch failed with
// something other than ErrNotFound.
func (d dispatcher) run(ctx context.Context, q Query) (ResultSet, error) {
	branches := d.branches(q)
	if len(branches) == 0 {
		return ResultSet{}, nil
	}

	var (
		wg       conc.WaitGroup
		outcomes = make([]branchOutcome, len(branches))
	)
	for i, b := range branches {
		wg.Go(func() {
			ctx, cancel := context.WithTimeout(ctx, d.lookupTimeout)
			defer cancel()

			results, err := b.run(ctx)
			outcomes[i] = branchOutcome{results: results, err: err}
		})
	}

	if recovered := wg.WaitAndRecover(); recovered != nil {
		return ResultSet{}, fmt.Errorf("%w: %w", ErrOrchestration, recovered.AsError())
	}

	var (
		rs     ResultSet
		failed []error
	)
	for i, o := range outcomes {
		if o.err != nil {
			if !errors.Is(o.err, ErrNotFound) {
				failed = append(failed, o.err)
			}

			logger.Debug(ctx, "search lookup dropped",
				"search.kind", q.Kind.String(),
				"search.branch", branches[i].name,
				"error", o.err,
			)
			continue
		}

		rs = Merge(rs, o.results...)
	}

	if len(failed) == len(branches) {
		return ResultSet{}, fmt.Errorf("%w: %w", ErrAllLookupsFailed, errors.Join(failed...))
	}

	return rs, nil
}

func (d dispatcher) blockByHeight(height uint64) branch {
	return branch{name: "block_by_height", run: func(ctx context.Context) ([]Result, error) {
		b, err := d.lookup.BlockByHeight(ctx, height)
		if err != nil {
			return nil, err
		}

		return []Result{blockResult(b)}, nil
	}}
}

func (d dispatcher) blockByHash(hash string) branch {
	return branch{name: "block_by_hash", run: func(ctx context.Context) ([]Result, error) {
		b, err := d.lookup.BlockByHash(ctx, hash)
		if err != nil {
			return nil, err
		}

		return []Result{blockResult(b)}, nil
	}}
}

func (d dispatcher) transactionByHash(hash string) branch {
	return branch{name: "transaction_by_hash", run: func(ctx context.Context) ([]Result, error) {
		tx, err := d.lookup.TransactionByHash(ctx, hash)
		if err != nil {
			return nil, err
		}

		return []Result{transactionResult(tx)}, nil
	}}
}

func (d dispatcher) validatorByAddress(address string) branch {
	return branch{name: "validator_by_address", run: func(ctx context.Context) ([]Result, error) {
		v, err := d.lookup.ValidatorByAddress(ctx, 0, address)
		if err != nil {
			return nil, err
		}

		return []Result{validatorResult(v)}, nil
	}}
}

func (d dispatcher) accountByAddress(address string) branch {
	return branch{name: "account_by_address", run: func(ctx context.Context) ([]Result, error) {
		a, err := d.lookup.AccountByAddress(ctx, 0, address)
		if err != nil {
			return nil, err
		}

		return []Result{accountResult(a)}, nil
	}}
}

func (d dispatcher) addressSummary(address string) branch {
	return branch{name: "address_summary", run: func(ctx context.Context) ([]Result, error) {
		summary, err := d.lookup.AddressSummary(ctx, address)
		if err != nil {
			return nil, err
		}

		var results []Result
		if summary.Validator != nil {
			results = append(results, validatorResult(*summary.Validator))
		}
		if summary.Account != nil {
			results = append(results, accountResult(*summary.Account))
		}

		return results, nil
	}}
}

// validatorPrefixScan matches prefix against the validators of the cached
// window, case-insensitively. It issues no gateway call.
func (d dispatcher) validatorPrefixScan(prefix string) branch {
	return branch{name: "validator_prefix_scan", run: func(ctx context.Context) ([]Result, error) {
		w, err := d.window.Window(ctx)
		if err != nil {
			return nil, err
		}

		var results []Result
		for _, v := range w.Validators {
			if types.HasPrefixFold(v.Address, prefix) {
				results = append(results, validatorResult(v))
			}
		}

		return results, nil
	}}
}
