package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// study-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing parameters.
	App App `envPrefix:"APP_"`

	// Server holds network address and persistence settings for the REST
	// API server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the client-side HTTP adapter that talks to
	// the remote API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the client's local persistence.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds the REST API server settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// DocumentPath is the file path of the JSON document the server
	// persists its whole data store to. Empty means in-memory only.
	// Env: SERVER_DOCUMENT_PATH
	DocumentPath string `env:"DOCUMENT_PATH"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the remote API.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CommunityTimeout bounds the community feed fetch; a remote slower than
	// this counts as unreachable and the cached feed is served instead.
	// Env: ADAPTER_COMMUNITY_TIMEOUT
	CommunityTimeout time.Duration `env:"COMMUNITY_TIMEOUT"`

	// ProbeTTL is how long a connectivity probe result stays cached.
	// Env: ADAPTER_PROBE_TTL
	ProbeTTL time.Duration `env:"PROBE_TTL"`
}

// Storage groups the configuration of the client's local persistence.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings for the client.
type DB struct {
	// DSN is the SQLite connection string (a file path) used by the client.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background worker settings.
type Workers struct {
	// RefreshInterval defines how often the client refresh job re-reads all
	// collections from the remote API while a session exists.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the full application
// configuration. Later sources win over earlier ones:
// environment variables, then command-line flags, then the optional JSON
// file referenced by either of them.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
