package config

import "time"

// Config holds runtime settings for the userkeeper CLI.
//
// Fields:
//   - DatabasePath: path of the SQLite file holding the persisted collection.
//   - LogLevel: minimum log level (trace, debug, info, warn, error).
//   - SearchDebounce: delay applied to search input before rendering.
//   - ResyncInterval: how often a failed persist is re-attempted.
type Config struct {
	DatabasePath   string        `env:"USERKEEPER_DATABASE_PATH"`
	LogLevel       string        `env:"USERKEEPER_LOG_LEVEL"`
	SearchDebounce time.Duration `env:"USERKEEPER_SEARCH_DEBOUNCE"`
	ResyncInterval time.Duration `env:"USERKEEPER_RESYNC_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "users.db"
	c.LogLevel = "info"
	c.SearchDebounce = 300 * time.Millisecond
	c.ResyncInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
