package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied when neither env, flags, nor the JSON file
// provide a value.
const (
	defaultRemoteAddress    = "http://localhost:8080"
	defaultRequestTimeout   = 15 * time.Second
	defaultCommunityTimeout = 3 * time.Second
	defaultProbeTTL         = 30 * time.Second
	defaultRefreshInterval  = 5 * time.Minute
	defaultClientDSN        = "study-keeper.db"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote API base address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// CommunityTimeout bounds the community feed fetch.
	CommunityTimeout time.Duration
	// ProbeTTL is how long a connectivity probe result stays cached.
	ProbeTTL time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the client refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies client defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			CommunityTimeout: cfg.Adapter.CommunityTimeout,
			ProbeTTL:         cfg.Adapter.ProbeTTL,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = defaultRemoteAddress
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Adapter.CommunityTimeout <= 0 {
		clientCfg.Adapter.CommunityTimeout = defaultCommunityTimeout
	}
	if clientCfg.Adapter.ProbeTTL <= 0 {
		clientCfg.Adapter.ProbeTTL = defaultProbeTTL
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = defaultClientDSN
	}
	if clientCfg.Workers.RefreshInterval <= 0 {
		clientCfg.Workers.RefreshInterval = defaultRefreshInterval
	}

	return clientCfg
}
