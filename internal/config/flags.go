package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d client local database path (SQLite file)
//	-document server JSON document file path
//	-remote base address of the remote API used by the client
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout client request timeout (e.g., "15s")
//	-community-timeout community feed fetch timeout (e.g., "3s")
//	-refresh-interval background refresh interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var (
		serverAddress    string
		documentPath     string
		databaseDSN      string
		remoteAddress    string
		jsonConfigPath   string
		tokenSignKey     string
		tokenIssuer      string
		tokenDuration    time.Duration
		requestTimeout   time.Duration
		communityTimeout time.Duration
		refreshInterval  time.Duration
	)

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&documentPath, "document", "", "Server JSON document path")
	fs.StringVar(&databaseDSN, "d", "", "Client local database path")
	fs.StringVar(&remoteAddress, "remote", "", "Remote API base address")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.DurationVar(&communityTimeout, "community-timeout", 0, "Community fetch timeout (e.g., 3s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:  serverAddress,
			DocumentPath: documentPath,
		},
		Adapter: Adapter{
			HTTPAddress:      remoteAddress,
			RequestTimeout:   requestTimeout,
			CommunityTimeout: communityTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}
}
