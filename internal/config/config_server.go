package config

import (
	"fmt"
	"time"
)

// Server-side defaults applied when neither env, flags, nor the JSON file
// provide a value.
const (
	defaultServerAddress   = "localhost:8080"
	defaultTokenIssuer     = "study-keeper"
	defaultTokenDuration   = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// ServerApp holds token issuance settings of the API server.
type ServerApp struct {
	// TokenSignKey is the secret HMAC key for JWT signing.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token issuance settings.
	App ServerApp
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string
	// DocumentPath is the JSON document file the server persists to.
	// Empty means the document lives in memory only.
	DocumentPath string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		HTTPAddress:     cfg.Server.HTTPAddress,
		DocumentPath:    cfg.Server.DocumentPath,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = defaultServerAddress
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.App.TokenDuration <= 0 {
		serverCfg.App.TokenDuration = defaultTokenDuration
	}
	if serverCfg.ShutdownTimeout <= 0 {
		serverCfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return serverCfg
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	return nil
}
