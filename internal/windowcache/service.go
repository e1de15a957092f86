// Package windowcache keeps one bounded, shared window of the most recent
// blocks of the active network in memory. Derived views read from that window
// instead of querying the gateway.
//
// A refresh fetches every page concurrently, so it costs one round trip.
// Concurrent callers attach to the refresh in flight rather than starting a
// new one. A failed refresh never replaces the published window.
package windowcache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/pkg/logger"
	"github.com/gabapcia/blockscope/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrNoWindow is returned when no window has been published yet and the
	// refresh that should produce one failed.
	ErrNoWindow = errors.New("no window available")

	// ErrEndpointChanged is returned to callers of a refresh whose result was
	// discarded because the gateway was switched while it ran.
	ErrEndpointChanged = errors.New("gateway endpoint changed during refresh")
)

// Service exposes the cached window and its lifecycle.
type Service interface {
	// Start warms the cache from the snapshot storage, kicks off the first
	// refresh and refreshes on a fixed timer until Close.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops the refresh timer. It is safe to call Close even if the
	// service was never started.
	Close()

	// Window returns the published window. When none exists yet it blocks on
	// a refresh. When the window is stale it is returned as is and a
	// background refresh is triggered.
	Window(ctx context.Context) (ledger.Window, error)

	// Refresh forces a refresh, attaching to one already in flight.
	Refresh(ctx context.Context) (ledger.Window, error)

	// SwitchGateway discards the current window and every refresh in flight,
	// makes gw the source for network and blocks on a fresh window.
	SwitchGateway(ctx context.Context, network string, gw Gateway) (ledger.Window, error)
}

type closeFunc func()

// source is the gateway a window is fetched from. Epoch increases every time
// the gateway is switched so results fetched from an old one can be detected.
type source struct {
	network string
	gateway Gateway
	epoch   uint64
}

type service struct {
	mu        sync.Mutex // protects lifecycle state and src
	isStarted bool
	closeFunc closeFunc

	src    source
	window atomic.Pointer[ledger.Window]
	group  singleflight.Group

	pageSize          int
	maxPages          int
	validatorPageSize int
	freshFor          time.Duration
	refreshEvery      time.Duration
	refreshTimeout    time.Duration

	retry     retry.Retry
	snapshots SnapshotStorage
	metrics   metrics
	tracer    trace.Tracer
	now       func() time.Time
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isStarted {
		s.mu.Unlock()
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.closeFunc = func() { cancel() }
	s.isStarted = true
	src := s.src
	s.mu.Unlock()

	s.warmStart(ctx, src)
	go s.refreshPeriodically(ctx)

	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// warmStart publishes the stored snapshot of src's network, if any, unless a
// window is already published or src is no longer the active source. The
// snapshot keeps its original FetchedAt so it is served as stale.
func (s *service) warmStart(ctx context.Context, src source) {
	if s.window.Load() != nil {
		return
	}

	w, err := s.snapshots.LoadSnapshot(ctx, src.network)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshotFound) {
			logger.Warn(ctx, "could not load window snapshot", "network", src.network, "error", err)
		}

		return
	}

	w.Epoch = src.epoch
	if !s.publishSnapshot(src, &w) {
		return
	}

	logger.Info(ctx, "window warmed from snapshot",
		"network", src.network,
		"window.head", w.HeadHeight(),
		"window.fetched_at", w.FetchedAt,
	)
}

// publishSnapshot stores w if src is still the active source and no window
// has been published for it yet.
func (s *service) publishSnapshot(src source, w *ledger.Window) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.src.epoch != src.epoch {
		return false
	}

	return s.window.CompareAndSwap(nil, w)
}

// refreshPeriodically refreshes once immediately and then on every tick until
// ctx is canceled.
func (s *service) refreshPeriodically(ctx context.Context) {
	ticker := time.NewTicker(s.refreshEvery)
	defer ticker.Stop()

	if ctx.Err() != nil {
		return
	}

	for {
		if _, err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "scheduled window refresh failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *service) currentSource() source {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src
}

func (s *service) Window(ctx context.Context) (ledger.Window, error) {
	if w := s.window.Load(); w != nil {
		if w.Age(s.now()) >= s.freshFor {
			go func() {
				ctx := context.WithoutCancel(ctx)
				if _, err := s.Refresh(ctx); err != nil {
					logger.Warn(ctx, "background window refresh failed", "error", err)
				}
			}()
		}

		return *w, nil
	}

	w, err := s.Refresh(ctx)
	if err != nil {
		return ledger.Window{}, fmt.Errorf("%w: %w", ErrNoWindow, err)
	}

	return w, nil
}

func (s *service) Refresh(ctx context.Context) (ledger.Window, error) {
	src := s.currentSource()

	// leader is only written by the caller whose function runs the refresh,
	// before its result is delivered.
	leader := false
	ch := s.group.DoChan(strconv.FormatUint(src.epoch, 10), func() (any, error) {
		leader = true

		// The refresh is shared, so it must outlive any single caller.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout)
		defer cancel()

		return s.refresh(ctx, src)
	})

	select {
	case <-ctx.Done():
		return ledger.Window{}, ctx.Err()
	case res := <-ch:
		if res.Shared && !leader {
			s.metrics.recordCoalesced(ctx, src.network)
		}

		if res.Err != nil {
			return ledger.Window{}, res.Err
		}

		return res.Val.(ledger.Window), nil
	}
}

// refresh fetches a window from src and publishes it if src is still the
// active source.
func (s *service) refresh(ctx context.Context, src source) (w ledger.Window, err error) {
	ctx, span := s.tracer.Start(ctx, "windowcache.refresh", trace.WithAttributes(
		attribute.String("network", src.network),
		attribute.Int64("epoch", int64(src.epoch)),
	))
	defer span.End()

	started := time.Now()
	defer func() {
		s.metrics.recordRefresh(ctx, src.network, started, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	fetch := func() error {
		var fetchErr error
		w, fetchErr = s.fetchWindow(ctx, src.gateway, src.network, src.epoch)
		return fetchErr
	}

	if s.retry != nil {
		err = s.retry.Execute(ctx, fetch)
	} else {
		err = fetch()
	}

	if err != nil {
		logger.Error(ctx, "window refresh failed", "network", src.network, "epoch", src.epoch, "error", err)
		return ledger.Window{}, err
	}

	if err = s.publish(ctx, w); err != nil {
		return ledger.Window{}, err
	}

	if saveErr := s.snapshots.SaveSnapshot(ctx, w); saveErr != nil {
		logger.Warn(ctx, "could not save window snapshot", "network", src.network, "error", saveErr)
	}

	span.SetAttributes(attribute.Int("window.blocks", len(w.Blocks)))
	logger.Debug(ctx, "window refreshed",
		"network", src.network,
		"window.head", w.HeadHeight(),
		"window.blocks", len(w.Blocks),
		"window.validators", len(w.Validators),
	)
	return w, nil
}

// publish replaces the window with w unless the source changed since w was
// fetched.
func (s *service) publish(ctx context.Context, w ledger.Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.src.epoch != w.Epoch {
		return ErrEndpointChanged
	}

	s.window.Store(&w)
	s.metrics.recordPublished(ctx, w.Network, len(w.Blocks))
	return nil
}

func (s *service) SwitchGateway(ctx context.Context, network string, gw Gateway) (ledger.Window, error) {
	s.mu.Lock()
	s.src = source{network: network, gateway: gw, epoch: s.src.epoch + 1}
	s.window.Store(nil)
	src := s.src
	s.mu.Unlock()

	logger.Info(ctx, "window invalidated", "network", network, "epoch", src.epoch)

	s.warmStart(ctx, src)
	return s.Refresh(ctx)
}

type config struct {
	pageSize          int
	maxPages          int
	validatorPageSize int
	freshFor          time.Duration
	refreshEvery      time.Duration
	refreshTimeout    time.Duration
	retry             retry.Retry
	snapshots         SnapshotStorage
	meterProvider     metric.MeterProvider
	tracerProvider    trace.TracerProvider
	now               func() time.Time
}

// Option configures the window cache.
type Option func(*config)

// New creates a window cache fetching from gw for network.
//
// Defaults: 10 pages of 10 blocks, validators fetched 1000 per page, fresh for
// 5 minutes, refreshed every 10 minutes with a 15 second timeout, no retry and
// no snapshot storage.
func New(network string, gw Gateway, opts ...Option) (*service, error) {
	cfg := config{
		pageSize:          10,
		maxPages:          10,
		validatorPageSize: 1000,
		freshFor:          5 * time.Minute,
		refreshEvery:      10 * time.Minute,
		refreshTimeout:    15 * time.Second,
		retry:             nil,
		snapshots:         nopSnapshot{},
		meterProvider:     otel.GetMeterProvider(),
		tracerProvider:    otel.GetTracerProvider(),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := newMetrics(cfg.meterProvider)
	if err != nil {
		return nil, err
	}

	return &service{
		src:               source{network: network, gateway: gw},
		pageSize:          max(cfg.pageSize, 1),
		maxPages:          max(cfg.maxPages, 1),
		validatorPageSize: max(cfg.validatorPageSize, 1),
		freshFor:          cfg.freshFor,
		refreshEvery:      cfg.refreshEvery,
		refreshTimeout:    cfg.refreshTimeout,
		retry:             cfg.retry,
		snapshots:         cfg.snapshots,
		metrics:           m,
		tracer:            cfg.tracerProvider.Tracer(instrumentationName),
		now:               cfg.now,
	}, nil
}

// WithPageSize sets how many blocks are requested per page.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithMaxPages bounds the window to n pages.
func WithMaxPages(n int) Option {
	return func(c *config) {
		c.maxPages = n
	}
}

// WithValidatorPageSize sets how many validators are requested per page.
func WithValidatorPageSize(n int) Option {
	return func(c *config) {
		c.validatorPageSize = n
	}
}

// WithFreshFor sets how long a window is served without triggering a refresh.
func WithFreshFor(d time.Duration) Option {
	return func(c *config) {
		c.freshFor = d
	}
}

// WithRefreshEvery sets the period of the proactive refresh timer.
func WithRefreshEvery(d time.Duration) Option {
	return func(c *config) {
		c.refreshEvery = d
	}
}

// WithRefreshTimeout bounds a single refresh, retries included.
func WithRefreshTimeout(d time.Duration) Option {
	return func(c *config) {
		c.refreshTimeout = d
	}
}

// WithRetry retries failed window fetches with r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithSnapshotStorage persists published windows to ss.
func WithSnapshotStorage(ss SnapshotStorage) Option {
	return func(c *config) {
		c.snapshots = ss
	}
}

// WithMeterProvider records refresh metrics with mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider traces refreshes with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithClock overrides the time source used for FetchedAt and staleness.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
