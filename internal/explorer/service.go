// Package explorer wires the window cache and the search resolver to the
// configured networks and coordinates network switches between them.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/pkg/logger"
	"github.com/gabapcia/blockscope/internal/pkg/x/chflow"
	"github.com/gabapcia/blockscope/internal/search"
	"github.com/gabapcia/blockscope/internal/windowcache"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrUnknownNetwork is returned for a network that is not configured.
	ErrUnknownNetwork = errors.New("unknown network")
)

// Gateway is everything the explorer needs from one network endpoint.
type Gateway interface {
	windowcache.Gateway
	search.Lookup
}

// Dialer builds the gateway for an endpoint.
type Dialer func(endpoint string) (Gateway, error)

// NetworkSwitch describes a completed network switch. Err is set when the
// first window of the new network could not be loaded; the switch itself
// still took effect.
type NetworkSwitch struct {
	From     string
	To       string
	Endpoint string
	Window   ledger.Window
	Err      error
}

// Service is the entrypoint used by consumers.
type Service interface {
	// Start starts the window cache refresh loop.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops all background routines. It is safe to call Close even if
	// the service was never started.
	Close()

	// Window returns the cached window of the active network.
	Window(ctx context.Context) (ledger.Window, error)

	// Search runs a debounced, last-write-wins search.
	Search(ctx context.Context, raw string) (search.ResultSet, error)

	// Resolve runs a search immediately.
	Resolve(ctx context.Context, raw string) (search.ResultSet, error)

	// Outcomes delivers published search outcomes.
	Outcomes() <-chan search.Outcome

	// SwitchNetwork makes name the active network: the window and every
	// search in flight are discarded and a fresh window is loaded.
	//
	// Returns ErrUnknownNetwork if name is not configured.
	SwitchNetwork(ctx context.Context, name string) error

	// Network returns the active network.
	Network() string

	// Networks returns the configured networks, sorted.
	Networks() []string

	// Watch delivers network switch events. Only the newest undelivered
	// event is kept when the receiver falls behind.
	Watch() <-chan NetworkSwitch
}

type closeFunc func()

type service struct {
	switchMu sync.Mutex // serializes network switches

	mu        sync.Mutex // protects lifecycle state and the active network
	isStarted bool
	closeFunc closeFunc

	networks map[string]string // name to endpoint
	active   string
	dial     Dialer

	cache    windowcache.Service
	resolver search.Service
	switches chan NetworkSwitch
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.cache.Start(ctx); err != nil {
		return err
	}

	s.closeFunc = s.cache.Close
	s.isStarted = true
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

func (s *service) Window(ctx context.Context) (ledger.Window, error) {
	return s.cache.Window(ctx)
}

func (s *service) Search(ctx context.Context, raw string) (search.ResultSet, error) {
	return s.resolver.Search(ctx, raw)
}

func (s *service) Resolve(ctx context.Context, raw string) (search.ResultSet, error) {
	return s.resolver.Resolve(ctx, raw)
}

func (s *service) Outcomes() <-chan search.Outcome {
	return s.resolver.Outcomes()
}

func (s *service) SwitchNetwork(ctx context.Context, name string) error {
	s.switchMu.Lock()
	defer s.switchMu.Unlock()

	endpoint, ok := s.networks[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}

	gw, err := s.dial(endpoint)
	if err != nil {
		return err
	}

	s.mu.Lock()
	from := s.active
	s.active = name
	s.mu.Unlock()

	s.resolver.Reset(gw)
	w, err := s.cache.SwitchGateway(ctx, name, gw)

	logger.Info(ctx, "network switched", "network.from", from, "network.to", name, "network.endpoint", endpoint)
	if err != nil {
		logger.Error(ctx, "could not load window after network switch", "network", name, "error", err)
	}

	chflow.SendLatest(s.switches, NetworkSwitch{
		From:     from,
		To:       name,
		Endpoint: endpoint,
		Window:   w,
		Err:      err,
	})
	return nil
}

func (s *service) Network() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

func (s *service) Networks() []string {
	names := make([]string, 0, len(s.networks))
	for name := range s.networks {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

func (s *service) Watch() <-chan NetworkSwitch {
	return s.switches
}

// New creates an explorer whose cache and resolver currently serve active.
// networks maps each network name to its endpoint.
//
// Returns ErrUnknownNetwork if active is not in networks.
func New(networks map[string]string, active string, dial Dialer, cache windowcache.Service, resolver search.Service) (*service, error) {
	if _, ok := networks[active]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, active)
	}

	return &service{
		networks: networks,
		active:   active,
		dial:     dial,
		cache:    cache,
		resolver: resolver,
		switches: make(chan NetworkSwitch, 1),
	}, nil
}
