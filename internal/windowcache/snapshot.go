package windowcache

import (
	"context"
	"errors"

	"github.com/gabapcia/blockscope/internal/ledger"
)

// ErrNoSnapshotFound is returned by LoadSnapshot when nothing was saved for
// the requested network.
var ErrNoSnapshotFound = errors.New("no snapshot found for network")

// SnapshotStorage persists the last good window of each network so a restart
// can serve it while the first refresh is in flight.
type SnapshotStorage interface {
	// SaveSnapshot stores w under w.Network, replacing any previous snapshot.
	SaveSnapshot(ctx context.Context, w ledger.Window) error

	// LoadSnapshot returns the stored window for network, or ErrNoSnapshotFound.
	LoadSnapshot(ctx context.Context, network string) (ledger.Window, error)
}

// nopSnapshot is a SnapshotStorage that stores nothing.
type nopSnapshot struct{}

var _ SnapshotStorage = nopSnapshot{}

func (nopSnapshot) SaveSnapshot(context.Context, ledger.Window) error {
	return nil
}

func (nopSnapshot) LoadSnapshot(context.Context, string) (ledger.Window, error) {
	return ledger.Window{}, ErrNoSnapshotFound
}
