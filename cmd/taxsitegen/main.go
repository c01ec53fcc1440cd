package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
	"git.home.luguber.info/inful/taxsitegen/internal/gitdata"
	"git.home.luguber.info/inful/taxsitegen/internal/logfields"
	"git.home.luguber.info/inful/taxsitegen/internal/metrics"
	"git.home.luguber.info/inful/taxsitegen/internal/site"
	"git.home.luguber.info/inful/taxsitegen/internal/state"
	"git.home.luguber.info/inful/taxsitegen/internal/watch"
	"git.home.luguber.info/inful/taxsitegen/internal/xref"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"taxsitegen.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Metrics bool `help:"Collect Prometheus metrics for the run"`
	} `cmd:"" help:"Generate the static site from the configured data files"`

	Watch struct {
		Every time.Duration `help:"Also regenerate on a fixed interval (e.g. 30m)"`
	} `cmd:"" help:"Generate, then regenerate whenever the data directory changes"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "generate":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", logfields.Error(err))
			os.Exit(1)
		}
		if err := runGenerate(cfg, CLI.Generate.Metrics); err != nil {
			slog.Error("Generation failed", logfields.Error(err))
			os.Exit(1)
		}
	case "watch":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", logfields.Error(err))
			os.Exit(1)
		}
		if err := runWatch(cfg, CLI.Watch.Every); err != nil {
			slog.Error("Watch failed", logfields.Error(err))
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", logfields.Error(err))
			os.Exit(1)
		}
		fmt.Printf("Configuration file created: %s\n", CLI.Config)
	default:
		slog.Error("Unknown command", slog.String("command", ctx.Command()))
		os.Exit(1)
	}
}

func runGenerate(cfg *config.Config, withMetrics bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return generateOnce(ctx, cfg, withMetrics)
}

func runWatch(cfg *config.Config, every time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := watch.New(cfg.Data.Dir, func(ctx context.Context) error {
		return generateOnce(ctx, cfg, false)
	})
	if err != nil {
		return err
	}
	return watcher.Run(ctx, every)
}

// generateOnce wires one run's dependencies and executes it.
func generateOnce(ctx context.Context, cfg *config.Config, withMetrics bool) error {
	runID := uuid.NewString()

	fetcher := gitdata.NewFetcher(&cfg.Data)
	if fetcher.Enabled() {
		if err := fetcher.Sync(); err != nil {
			return fmt.Errorf("sync data repository: %w", err)
		}
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if withMetrics {
		recorder = metrics.NewPrometheusRecorder(prometheus.NewRegistry())
	}

	var cache *state.Cache
	if cfg.State.Path != "" {
		var err error
		cache, err = state.Open(cfg.State.Path)
		if err != nil {
			return fmt.Errorf("open state cache: %w", err)
		}
		defer cache.Close()
	}

	var publisher xref.Publisher
	if cfg.Events.Enabled {
		natsPublisher, err := xref.NewNATSPublisher(&cfg.Events)
		if err != nil {
			slog.Warn("Broken-reference events disabled", logfields.Error(err))
		} else {
			publisher = natsPublisher
			defer natsPublisher.Close()
		}
	}

	generator := site.NewGenerator(cfg, recorder, cache, publisher, runID)
	summary, err := generator.Run(ctx)
	if err != nil {
		return err
	}

	slog.Info("Run finished",
		logfields.RunID(runID),
		slog.Int("generated", summary.Total()),
		slog.Int("skipped", summary.Skipped),
		slog.Int("excluded", summary.Excluded))
	return nil
}
