package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/match-ingestion/internal/app"
	"github.com/riskibarqy/match-ingestion/internal/config"
	"github.com/riskibarqy/match-ingestion/internal/observability"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"github.com/urfave/cli/v3"
)

func main() {
	_ = godotenv.Load()

	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "ingest",
		Usage: "Import matches and timelines and query derived facts",
		Commands: []*cli.Command{
			matchCommand(),
			windowCommand(),
			backfillCommand("full", "Import a player's history up to the target total"),
			backfillCommand("ranked", "Import a player's ranked history up to the target total"),
			bulkCommand(),
			timelineCommand(),
			ranksCommand(),
			rollupCommand(),
			playedWithCommand(),
			liveCommand(),
		},
	}
}

// runWithServices loads configuration, starts telemetry and hands a ready service graph to fn.
func runWithServices(ctx context.Context, fn func(ctx context.Context, services *app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	telemetry, err := observability.Start(cfg, logger)
	if err != nil {
		return fmt.Errorf("start telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Warn("close services failed", "error", err)
		}
	}()

	return fn(ctx, services)
}

func printJSON(value any) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
