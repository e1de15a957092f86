package windowcache

import (
	"context"

	"github.com/gabapcia/blockscope/internal/ledger"
)

// Gateway is the paginated source a window is assembled from.
type Gateway interface {
	// BlocksPage returns one page of blocks, most recent first. Page numbers
	// start at 1 and page 1 holds the chain head.
	BlocksPage(ctx context.Context, page, perPage int) (ledger.Page[ledger.Block], error)

	// ValidatorsPage returns one page of the current validator set.
	ValidatorsPage(ctx context.Context, page, perPage int) (ledger.Page[ledger.Validator], error)
}
