package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spacesedan/sentilens/config"
	"github.com/spacesedan/sentilens/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		logging.InitLogger("info")
		slog.Error("[Main] Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(exitError)
	}
	logging.InitLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], pipedStdin(), os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// pipedStdin returns stdin only when something is piped in, so an
// interactive run without text does not block waiting for input.
func pipedStdin() io.Reader {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return strings.NewReader("")
	}
	return os.Stdin
}
