package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays values from USERKEEPER_* environment variables. Unset
// variables leave the existing values untouched.
func parseEnv(c *Config) {
	if err := envconfig.Process(context.Background(), c); err != nil {
		panic(err)
	}
}
