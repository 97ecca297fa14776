package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping lives in the
// `env` tags on [StructuredConfig] and its nested sections, so adding a
// setting never touches this file. Parse failures (an unconvertible value,
// mostly a malformed duration) come back wrapped.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
