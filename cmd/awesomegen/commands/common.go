// Package commands defines the awesomegen CLI surface.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/stuagano/awesome-claude-code/internal/config"
	"github.com/stuagano/awesome-claude-code/internal/generator"
	"github.com/stuagano/awesome-claude-code/internal/history"
	"github.com/stuagano/awesome-claude-code/internal/metrics"
	"github.com/stuagano/awesome-claude-code/internal/pipeline"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" optional:""`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate    GenerateCmd    `cmd:"" help:"Generate a single README style"`
	GenerateAll GenerateAllCmd `cmd:"" name:"generate-all" help:"Generate every primary style plus the root README"`
	Sort        SortCmd        `cmd:"" help:"Rewrite the resource dataset in canonical order"`
	Validate    ValidateCmd    `cmd:"" help:"Validate the dataset and optionally lint rendered documents"`
	Watch       WatchCmd       `cmd:"" help:"Rebuild on dataset or template changes"`
	History     HistoryCmd     `cmd:"" help:"Show recent generation runs"`
}

// AfterApply runs after flag parsing; set up logging once and fail fast
// on a broken style registry.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	g.Logger = logger

	return generator.VerifyRegistry()
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(root *CLI) (*config.Config, error) {
	return config.Load(root.Config)
}

// buildPipeline assembles a pipeline with metrics and a history store
// per the configuration. The caller must call the returned cleanup.
func buildPipeline(cfg *config.Config, g *Global, registry *prom.Registry) (*pipeline.Pipeline, func(), error) {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if registry != nil {
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	var store history.Store = history.NoopStore{}
	if cfg.History.Enabled {
		sqlStore, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open history store: %w", err)
		}
		store = sqlStore
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			g.Logger.Warn("failed to close history store", "error", err)
		}
	}
	return pipeline.New(cfg, g.Logger, recorder, store), cleanup, nil
}
