// Package search resolves a free-text query into typed, deduplicated
// entities without the caller saying what kind of entity it is looking for.
//
// A query is classified, the matching speculative lookups are issued in
// parallel and their results merged into buckets. Searches are debounced and
// strictly last-write-wins: the results of a superseded search are never
// published.
package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/blockscope/internal/pkg/x/chflow"
)

// ErrSuperseded is returned to the caller of a search that was replaced by a
// newer one before it completed.
var ErrSuperseded = errors.New("search superseded by a newer query")

// Outcome is the result of one search cycle.
type Outcome struct {
	Generation uint64
	Query      Query
	Results    ResultSet
	Err        error
}

// Service resolves queries.
type Service interface {
	// Search waits for the debounce period and resolves raw. Calling Search
	// again before it returns supersedes it: the earlier call returns
	// ErrSuperseded and its results are discarded.
	Search(ctx context.Context, raw string) (ResultSet, error)

	// Resolve resolves raw immediately. It does not take part in debouncing
	// and does not update Latest.
	Resolve(ctx context.Context, raw string) (ResultSet, error)

	// Latest returns the outcome of the most recent completed search that was
	// not superseded.
	Latest() Outcome

	// Outcomes delivers every published outcome. Only the newest undelivered
	// outcome is kept when the receiver falls behind.
	Outcomes() <-chan Outcome

	// Reset supersedes any search in flight and resolves future searches with
	// lookup. The latest outcome is cleared.
	Reset(lookup Lookup)
}

// cycle is one pending search.
type cycle struct {
	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	superseded chan struct{}
}

// stop supersedes the cycle. Lookups already in flight are canceled.
func (c *cycle) stop() {
	c.timer.Stop()
	c.cancel()
	close(c.superseded)
}

type service struct {
	mu         sync.Mutex // protects every field below
	generation uint64
	pending    *cycle
	latest     Outcome
	dispatcher dispatcher

	debounce time.Duration
	outcomes chan Outcome
}

var _ Service = (*service)(nil)

// supersede bumps the generation and stops the pending cycle. It must be
// called with s.mu held.
func (s *service) supersede() uint64 {
	s.generation++
	if s.pending != nil {
		s.pending.stop()
		s.pending = nil
	}

	return s.generation
}

type cycleResult struct {
	results ResultSet
	err     error
}

func (s *service) Search(ctx context.Context, raw string) (ResultSet, error) {
	q := NewQuery(raw)

	s.mu.Lock()
	var (
		generation  = s.supersede()
		d           = s.dispatcher
		cycleCtx, c = context.WithCancel(ctx)
		done        = make(chan cycleResult, 1)
		cyc         = &cycle{generation: generation, cancel: c, superseded: make(chan struct{})}
	)
	cyc.timer = time.AfterFunc(s.debounce, func() {
		rs, err := d.run(cycleCtx, q)
		done <- cycleResult{results: rs, err: err}
	})
	s.pending = cyc
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		s.abandon(cyc)
		return ResultSet{}, ctx.Err()
	case <-cyc.superseded:
		return ResultSet{}, ErrSuperseded
	case res := <-done:
		return s.complete(cyc, q, res)
	}
}

// abandon drops cyc if it is still pending.
func (s *service) abandon(cyc *cycle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == cyc {
		cyc.timer.Stop()
		cyc.cancel()
		s.pending = nil
	}
}

// complete publishes res if cyc is still the current generation.
func (s *service) complete(cyc *cycle, q Query, res cycleResult) (ResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cyc.generation != s.generation {
		return ResultSet{}, ErrSuperseded
	}

	cyc.cancel()
	s.pending = nil
	s.latest = Outcome{
		Generation: cyc.generation,
		Query:      q,
		Results:    res.results,
		Err:        res.err,
	}
	chflow.SendLatest(s.outcomes, s.latest)

	return res.results, res.err
}

func (s *service) Resolve(ctx context.Context, raw string) (ResultSet, error) {
	s.mu.Lock()
	d := s.dispatcher
	s.mu.Unlock()

	return d.run(ctx, NewQuery(raw))
}

func (s *service) Latest() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest
}

func (s *service) Outcomes() <-chan Outcome {
	return s.outcomes
}

func (s *service) Reset(lookup Lookup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	generation := s.supersede()
	s.dispatcher.lookup = lookup
	s.latest = Outcome{Generation: generation}
}

type config struct {
	debounce      time.Duration
	lookupTimeout time.Duration
}

// Option configures the resolver.
type Option func(*config)

// New creates a resolver issuing lookups through lookup and scanning the
// validators of window for partial addresses.
//
// Defaults: 300ms debounce and a 3 second timeout per lookup.
func New(lookup Lookup, window WindowSource, opts ...Option) *service {
	cfg := config{
		debounce:      300 * time.Millisecond,
		lookupTimeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		dispatcher: dispatcher{
			lookup:        lookup,
			window:        window,
			lookupTimeout: cfg.lookupTimeout,
		},
		debounce: cfg.debounce,
		outcomes: make(chan Outcome, 1),
	}
}

// WithDebounce sets the quiet period before a search is issued.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		c.debounce = d
	}
}

// WithLookupTimeout bounds every individual lookup.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *config) {
		c.lookupTimeout = d
	}
}
