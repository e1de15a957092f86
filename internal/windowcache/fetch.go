package windowcache

import (
	"cmp"
	"context"
	"slices"

	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/pkg/types"

	"golang.org/x/sync/errgroup"
)

// fetchWindow loads maxPages block pages and the validator set concurrently.
// Any failed request fails the whole fetch.
func (s *service) fetchWindow(ctx context.Context, gw Gateway, network string, epoch uint64) (ledger.Window, error) {
	var (
		pages      = make([]ledger.Page[ledger.Block], s.maxPages)
		validators []ledger.Validator
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := range pages {
		g.Go(func() error {
			page, err := gw.BlocksPage(ctx, i+1, s.pageSize)
			if err != nil {
				return err
			}

			pages[i] = page
			return nil
		})
	}

	g.Go(func() error {
		var err error
		validators, err = s.fetchValidators(ctx, gw)
		return err
	})

	if err := g.Wait(); err != nil {
		return ledger.Window{}, err
	}

	return ledger.Window{
		Network:    network,
		Epoch:      epoch,
		Blocks:     flattenPages(pages),
		Validators: validators,
		FetchedAt:  s.now(),
		TotalCount: pages[0].TotalCount,
		PageSize:   s.pageSize,
	}, nil
}

// fetchValidators reads the first validator page to learn the set size, then
// fetches any remaining pages concurrently.
func (s *service) fetchValidators(ctx context.Context, gw Gateway) ([]ledger.Validator, error) {
	first, err := gw.ValidatorsPage(ctx, 1, s.validatorPageSize)
	if err != nil {
		return nil, err
	}

	remaining := 0
	if total := int(first.TotalCount); total > s.validatorPageSize {
		remaining = (total+s.validatorPageSize-1)/s.validatorPageSize - 1
	}

	pages := make([]ledger.Page[ledger.Validator], remaining+1)
	pages[0] = first

	g, ctx := errgroup.WithContext(ctx)
	for i := 1; i < len(pages); i++ {
		g.Go(func() error {
			page, err := gw.ValidatorsPage(ctx, i+1, s.validatorPageSize)
			if err != nil {
				return err
			}

			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		seen       = types.NewSet[string]()
		validators []ledger.Validator
	)
	for _, page := range pages {
		for _, v := range page.Results {
			if seen.Insert(v.Address) {
				validators = append(validators, v)
			}
		}
	}

	return validators, nil
}

// flattenPages concatenates pages in page order, keeping the first occurrence
// of each height, and sorts the result by descending height. Pages fetched
// concurrently overlap when the head advances between requests.
func flattenPages(pages []ledger.Page[ledger.Block]) []ledger.Block {
	var (
		seen   = types.NewSet[uint64]()
		blocks []ledger.Block
	)
	for _, page := range pages {
		for _, b := range page.Results {
			if seen.Insert(b.Height) {
				blocks = append(blocks, b)
			}
		}
	}

	slices.SortStableFunc(blocks, func(a, b ledger.Block) int {
		return cmp.Compare(b.Height, a.Height)
	})

	return blocks
}
