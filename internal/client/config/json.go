package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userkeeper/internal/flagx"
	"github.com/dmitrijs2005/userkeeper/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "300ms" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath   string         `json:"database_path"`
	LogLevel       string         `json:"log_level"`
	SearchDebounce timex.Duration `json:"search_debounce"`
	ResyncInterval timex.Duration `json:"resync_interval"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config command-line flags. When no file is named, nothing is loaded. An
// unreadable or invalid file panics: a named config file that cannot be used
// is a startup error, not something to silently skip.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.SearchDebounce.Duration != 0 {
		config.SearchDebounce = c.SearchDebounce.Duration
	}
	if c.ResyncInterval.Duration != 0 {
		config.ResyncInterval = c.ResyncInterval.Duration
	}
}
