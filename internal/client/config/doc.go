// Package config loads runtime configuration for the userkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. USERKEEPER_* environment variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     path to the users database file
//	-l string     log level (trace, debug, info, warn, error)
//	-s duration   search input debounce interval (e.g. 300ms)
//	-r duration   persisted-state resync interval (e.g. 30s)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "300ms" or integer nanoseconds:
//
//	{
//	  "database_path": "users.db",
//	  "log_level": "info",
//	  "search_debounce": "300ms",
//	  "resync_interval": "30s"
//	}
package config
