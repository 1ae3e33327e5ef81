package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/dmitrijs2005/userkeeper/internal/client/cli"
	"github.com/dmitrijs2005/userkeeper/internal/client/config"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	logger := buildLogger(cfg.LogLevel, interactive)

	app, err := cli.NewApp(cfg, logger, interactive)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.Run(ctx)
}

// buildLogger emits human-friendly console output on interactive terminals
// and plain JSON otherwise.
func buildLogger(level string, interactive bool) logging.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if interactive {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zl = zerolog.New(os.Stderr)
	}
	zl = zl.Level(lvl).With().Timestamp().Logger()

	return logging.NewZerologLogger(zl)
}
