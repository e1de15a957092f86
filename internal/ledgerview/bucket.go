package ledgerview

import (
	"time"

	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/pkg/types"
)

// Bucket units supported by the analytics views.
const (
	Hour = time.Hour
	Day  = 24 * time.Hour
)

// Point is one timestamped value to be bucketed.
type Point struct {
	Time  time.Time
	Value uint64
}

// ReferenceTime returns the end of the unit containing now, e.g. the top of
// the next hour. Days are aligned to UTC midnight.
func ReferenceTime(now time.Time, unit time.Duration) time.Time {
	return now.Truncate(unit).Add(unit)
}

// TimeBucket sums points into count trailing buckets of the given unit ending
// at ReferenceTime(now, unit). The last bucket is the most recent.
//
// A point at distance d before the reference lands in bucket
// count-1-floor(d/unit), so bucket count-1-k covers (ref-(k+1)*unit, ref-k*unit].
// Points after the reference or older than count units are dropped.
func TimeBucket(points []Point, count int, unit time.Duration, now time.Time) []uint64 {
	if count <= 0 || unit <= 0 {
		return nil
	}

	var (
		buckets = make([]uint64, count)
		ref     = ReferenceTime(now, unit)
	)

	for _, p := range points {
		diff := ref.Sub(p.Time)
		if diff < 0 {
			continue
		}

		index := count - 1 - int(diff/unit)
		if index < 0 {
			continue
		}

		buckets[index] += p.Value
	}

	return buckets
}

// BlockCount maps each block to a point of value 1.
func BlockCount(blocks []ledger.Block) []Point {
	points := make([]Point, 0, len(blocks))
	for _, b := range blocks {
		points = append(points, Point{Time: b.Timestamp(), Value: 1})
	}

	return points
}

// TransactionCount maps each transaction to a point of value 1.
func TransactionCount(txs []ledger.Transaction) []Point {
	points := make([]Point, 0, len(txs))
	for _, tx := range txs {
		points = append(points, Point{Time: time.UnixMicro(tx.Time), Value: 1})
	}

	return points
}

// BlockActivity maps each block to a point valued by its transaction count.
func BlockActivity(blocks []ledger.Block) []Point {
	points := make([]Point, 0, len(blocks))
	for _, b := range blocks {
		points = append(points, Point{Time: b.Timestamp(), Value: uint64(b.NumTx)})
	}

	return points
}

// TransactionVolume maps each transaction to a point valued by its amount.
func TransactionVolume(txs []ledger.Transaction) []Point {
	points := make([]Point, 0, len(txs))
	for _, tx := range txs {
		points = append(points, Point{Time: time.UnixMicro(tx.Time), Value: tx.Amount})
	}

	return points
}

// CountByMessageType counts transactions per message type. Transactions with
// no message type are counted under "unknown".
func CountByMessageType(txs []ledger.Transaction) map[string]int {
	counts := types.NewDefaultMap[string](func() int { return 0 })
	for _, tx := range txs {
		messageType := tx.MessageType
		if messageType == "" {
			messageType = "unknown"
		}

		counts.Update(messageType, func(n int) int { return n + 1 })
	}

	return counts.ToMap()
}
