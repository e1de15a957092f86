package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/windowcache"

	"github.com/redis/go-redis/v9"
)

// windowcacheKeyPrefix is the namespace prefix for all keys owned by the window cache.
const windowcacheKeyPrefix = "windowcache"

// windowcacheSnapshotKey constructs the key holding the last published window
// of a network. The format is:
//
//	"windowcache:snapshot:<network>"
func windowcacheSnapshotKey(network string) string {
	return fmt.Sprintf("%s:snapshot:%s", windowcacheKeyPrefix, network)
}

// SaveSnapshot stores w as JSON under its network, expiring after the
// configured snapshot TTL.
func (c *client) SaveSnapshot(ctx context.Context, w ledger.Window) error {
	data, err := json.Marshal(w)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, windowcacheSnapshotKey(w.Network), data, c.snapshotTTL).Err()
}

// LoadSnapshot returns the stored window of network, or
// windowcache.ErrNoSnapshotFound when none is stored or it expired.
func (c *client) LoadSnapshot(ctx context.Context, network string) (ledger.Window, error) {
	data, err := c.conn.Get(ctx, windowcacheSnapshotKey(network)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = windowcache.ErrNoSnapshotFound
		}

		return ledger.Window{}, err
	}

	var w ledger.Window
	if err := json.Unmarshal(data, &w); err != nil {
		return ledger.Window{}, fmt.Errorf("corrupt window snapshot for %s: %w", network, err)
	}

	return w, nil
}

// Compile-time assertion to ensure client implements the SnapshotStorage interface.
var _ windowcache.SnapshotStorage = new(client)
