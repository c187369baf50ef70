package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/duelview/internal/app"
	"github.com/vk/duelview/internal/cli"
	"github.com/vk/duelview/internal/hcl"
)

// main is the entrypoint for the duelview application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logW, closeLog, err := logWriter(appConfig, outW)
	if err != nil {
		return err
	}
	defer closeLog()

	// The app panics on critical config errors, so we recover here to provide
	// a clean error to the caller.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	duelApp := app.NewApp(logW, appConfig, loader)

	return duelApp.Run(ctx)
}

// logWriter picks the log destination. The terminal renderer owns the
// screen, so logs are dropped there unless a log file is given.
func logWriter(cfg *app.Config, outW io.Writer) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if !cfg.Headless {
		return io.Discard, func() {}, nil
	}
	return outW, func() {}, nil
}
