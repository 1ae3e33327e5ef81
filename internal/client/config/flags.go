package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userkeeper/internal/flagx"
)

// parseFlags overlays command-line flag values onto c. Flags default to the
// values already in c, so flags that are not provided change nothing. Only
// this package's own flags are parsed; -c/-config are handled by parseJson.
func parseFlags(c *Config) {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "path to the users database file")
	fs.StringVar(&c.LogLevel, "l", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.DurationVar(&c.SearchDebounce, "s", c.SearchDebounce, "search input debounce interval")
	fs.DurationVar(&c.ResyncInterval, "r", c.ResyncInterval, "persisted-state resync interval")

	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-s", "-r"})
	_ = fs.Parse(args)
}
