package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gabapcia/blockscope/internal/explorer"
	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/ledgerview"

	"github.com/urfave/cli/v3"
)

// ErrMissingQuery is returned when search is called without a query.
var ErrMissingQuery = errors.New("missing query")

var (
	// ErrInvalidUnit is returned for an unsupported bucket unit.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrInvalidBuckets is returned when the bucket count is not positive.
	ErrInvalidBuckets = errors.New("bucket count must be positive")
)

var units = map[string]time.Duration{
	"hour": ledgerview.Hour,
	"day":  ledgerview.Day,
}

// searchCommand returns a CLI command that resolves one query immediately.
//
// Usage example:
//
//	blockscope search 1a2b3c4d
func searchCommand(ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "search",
		Description: "Resolves a block height, block or transaction hash, or full or partial address.",
		Usage:       "Prints every entity matching the query, grouped by kind.",
		ArgsUsage:   "<query>",
		Flags:       []cli.Flag{networkFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			query := c.Args().First()
			if query == "" {
				return ErrMissingQuery
			}

			if err := useNetwork(ctx, ex, c); err != nil {
				return err
			}

			results, err := ex.Resolve(ctx, query)
			if err != nil {
				return err
			}

			newPrinter(c.Root().Writer).results(results)
			return nil
		},
	}
}

// blocksCommand returns a CLI command that lists the cached blocks with
// from <= height <= to.
//
// Usage example:
//
//	blockscope blocks --from 100 --to 120 --limit 5
func blocksCommand(ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "blocks",
		Description: "Lists the cached blocks in a height range, newest first.",
		Usage:       "Selects blocks by height. --to defaults to the newest cached height.",
		Flags: []cli.Flag{
			networkFlag(),
			&cli.Uint64Flag{
				Name:  "from",
				Usage: "Lowest height, inclusive",
			},
			&cli.Uint64Flag{
				Name:  "to",
				Usage: "Highest height, inclusive",
				Value: math.MaxUint64,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of blocks to print, 0 for all",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := useNetwork(ctx, ex, c); err != nil {
				return err
			}

			w, err := ex.Window(ctx)
			if err != nil {
				return err
			}

			res := ledgerview.BlocksInHeightRange(w, c.Uint64("from"), c.Uint64("to"), c.Int("limit"))
			newPrinter(c.Root().Writer).blocks(res.Results, res.TotalCount)
			return nil
		},
	}
}

// activityCommand returns a CLI command that buckets the cached blocks and
// their transactions into hourly or daily counts, next to the transferred
// volume of each bucket.
//
// Usage example:
//
//	blockscope activity --buckets 24 --unit hour
func activityCommand(ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "activity",
		Description: "Counts cached blocks and transactions, and sums transferred amounts, per hour or per day.",
		Usage:       "Bucket 0 is the current unit; older buckets count upwards.",
		Flags: []cli.Flag{
			networkFlag(),
			&cli.IntFlag{
				Name:  "buckets",
				Usage: "Number of buckets",
				Value: 24,
			},
			&cli.StringFlag{
				Name:  "unit",
				Usage: "Bucket width: hour or day",
				Value: "hour",
			},
			&cli.IntFlag{
				Name:  "pages",
				Usage: "Number of window pages to analyze",
				Value: 10,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			unitName := c.String("unit")
			unit, ok := units[unitName]
			if !ok {
				return fmt.Errorf("%w: %s", ErrInvalidUnit, unitName)
			}

			count := c.Int("buckets")
			if count <= 0 {
				return ErrInvalidBuckets
			}

			if err := useNetwork(ctx, ex, c); err != nil {
				return err
			}

			w, err := ex.Window(ctx)
			if err != nil {
				return err
			}

			var (
				now    = time.Now()
				blocks = ledgerview.BlocksForAnalytics(w, c.Int("pages"))
				txs    = ledgerview.TransactionsInRange(ledger.Window{Blocks: blocks}, 0, math.MaxUint64, 0)
			)

			rows := bucketRows{
				blocks: ledgerview.TimeBucket(ledgerview.BlockCount(blocks), count, unit, now),
				txs:    ledgerview.TimeBucket(ledgerview.TransactionCount(txs), count, unit, now),
				volume: ledgerview.TimeBucket(ledgerview.TransactionVolume(txs), count, unit, now),
			}

			newPrinter(c.Root().Writer).buckets(unitName, rows, ledgerview.CountByMessageType(txs))
			return nil
		},
	}
}

// networksCommand returns a CLI command that lists the configured networks,
// marking the active one.
func networksCommand(ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "networks",
		Description: "Lists the configured networks.",
		Usage:       "The active network is marked with '*'.",
		Action: func(ctx context.Context, c *cli.Command) error {
			newPrinter(c.Root().Writer).networks(ex.Networks(), ex.Network())
			return nil
		},
	}
}
