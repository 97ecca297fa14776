package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_AllFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := parseFlags(fs, []string{
		"-a", "localhost:7070",
		"-document", "doc.json",
		"-d", "local.db",
		"-remote", "http://remote:7070",
		"-c", "cfg.json",
		"-token-sign-key", "key",
		"-token-issuer", "iss",
		"-token-duration", "1h",
		"-request-timeout", "10s",
		"-community-timeout", "2s",
		"-refresh-interval", "1m",
	})

	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, "doc.json", cfg.Server.DocumentPath)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://remote:7070", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Adapter.CommunityTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseFlags_NoFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := parseFlags(fs, nil)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestClientConfig_Defaults(t *testing.T) {
	clientCfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, defaultRemoteAddress, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultCommunityTimeout, clientCfg.Adapter.CommunityTimeout)
	assert.Equal(t, defaultProbeTTL, clientCfg.Adapter.ProbeTTL)
	assert.Equal(t, defaultClientDSN, clientCfg.Storage.DB.DSN)
	assert.Equal(t, defaultRefreshInterval, clientCfg.Workers.RefreshInterval)
}

func TestServerConfig_Validate(t *testing.T) {
	serverCfg := newServerConfig(&StructuredConfig{})
	err := serverCfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	serverCfg = newServerConfig(&StructuredConfig{App: App{TokenSignKey: "key"}})
	assert.NoError(t, serverCfg.validate())
	assert.Equal(t, defaultServerAddress, serverCfg.HTTPAddress)
	assert.Equal(t, defaultTokenIssuer, serverCfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, serverCfg.App.TokenDuration)
}
