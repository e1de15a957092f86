// Package config loads the blockscope configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/blockscope/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable read by Load.
const Prefix = "BLOCKSCOPE"

var (
	// ErrInvalidNetworks is returned when NETWORKS cannot be parsed.
	ErrInvalidNetworks = errors.New("invalid networks")

	// ErrUnknownDefaultNetwork is returned when DEFAULT_NETWORK is not one of NETWORKS.
	ErrUnknownDefaultNetwork = errors.New("default network is not configured")
)

// Networks maps a network name to its RPC endpoint. It decodes from
// "name=url,name=url".
type Networks map[string]string

// Decode implements envconfig.Decoder.
func (n *Networks) Decode(value string) error {
	networks := make(Networks)
	for pair := range strings.SplitSeq(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, endpoint, ok := strings.Cut(pair, "=")
		name, endpoint = strings.TrimSpace(name), strings.TrimSpace(endpoint)
		if !ok || name == "" || endpoint == "" {
			return fmt.Errorf("%w: malformed entry %q", ErrInvalidNetworks, pair)
		}

		if _, dup := networks[name]; dup {
			return fmt.Errorf("%w: duplicated network %q", ErrInvalidNetworks, name)
		}

		networks[name] = endpoint
	}

	*n = networks
	return nil
}

// Names returns the configured network names, sorted.
func (n Networks) Names() []string {
	return slices.Sorted(maps.Keys(n))
}

// Gateway configures the HTTP client used for every network endpoint.
type Gateway struct {
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"3s" validate:"gt=0"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"100ms" validate:"gte=0"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"2s" validate:"gtefield=RetryWaitMin"`
}

// Window configures the bounded window cache.
type Window struct {
	PageSize       int           `envconfig:"PAGE_SIZE" default:"10" validate:"gt=0"`
	MaxPages       int           `envconfig:"MAX_PAGES" default:"10" validate:"gt=0"`
	FreshFor       time.Duration `envconfig:"FRESH_FOR" default:"5m" validate:"gt=0"`
	RefreshEvery   time.Duration `envconfig:"REFRESH_EVERY" default:"10m" validate:"gt=0"`
	RefreshTimeout time.Duration `envconfig:"REFRESH_TIMEOUT" default:"15s" validate:"gt=0"`
}

// Search configures the search resolver.
type Search struct {
	Debounce      time.Duration `envconfig:"DEBOUNCE" default:"300ms" validate:"gte=0"`
	LookupTimeout time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"3s" validate:"gt=0"`
}

// Redis configures the optional window snapshot storage.
type Redis struct {
	Enabled     bool          `envconfig:"ENABLED" default:"false"`
	Addr        string        `envconfig:"ADDR" default:"localhost:6379" validate:"required_if=Enabled true"`
	Username    string        `envconfig:"USERNAME"`
	Password    string        `envconfig:"PASSWORD"`
	DB          int           `envconfig:"DB" default:"0" validate:"gte=0"`
	SnapshotTTL time.Duration `envconfig:"SNAPSHOT_TTL" default:"1h" validate:"gte=0"`
}

// Config is the full application configuration.
type Config struct {
	LogLevel         string   `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string   `envconfig:"SERVICE_NAME" default:"blockscope" validate:"required"`
	TelemetryEnabled bool     `envconfig:"TELEMETRY_ENABLED" default:"false"`
	Networks         Networks `envconfig:"NETWORKS" default:"local=http://localhost:50002" validate:"required,min=1,dive,url"`
	DefaultNetwork   string   `envconfig:"DEFAULT_NETWORK" default:"local" validate:"required"`

	Gateway Gateway `envconfig:"GATEWAY"`
	Window  Window  `envconfig:"WINDOW"`
	Search  Search  `envconfig:"SEARCH"`
	Redis   Redis   `envconfig:"REDIS"`
}

// Load reads an optional .env file, then the BLOCKSCOPE_* environment, and
// validates the result. Variables already set in the environment take
// precedence over the .env file.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && len(dotenvFiles) > 0 {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	if _, ok := cfg.Networks[cfg.DefaultNetwork]; !ok {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownDefaultNetwork, cfg.DefaultNetwork)
	}

	return cfg, nil
}
