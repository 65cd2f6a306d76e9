package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/stuagano/awesome-claude-code/internal/watch"
)

// WatchCmd regenerates all primary styles whenever the dataset or the
// templates change, until interrupted.
type WatchCmd struct{}

func (w *WatchCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	var registry *prom.Registry
	if cfg.Watch.MetricsAddr != "" {
		registry = prom.NewRegistry()
	}

	p, cleanup, err := buildPipeline(cfg, global, registry)
	if err != nil {
		return err
	}
	defer cleanup()

	watcher, err := watch.New(
		watch.RebuildFunc(func(ctx context.Context) error {
			_, err := p.GenerateAll(ctx)
			return err
		}),
		watch.Options{
			Paths:       []string{cfg.Dataset, cfg.TemplatesDir},
			Debounce:    cfg.Watch.Debounce.Std(),
			Interval:    cfg.Watch.Interval.Std(),
			MetricsAddr: cfg.Watch.MetricsAddr,
			Fingerprint: []string{cfg.Dataset, cfg.TemplatesDir},
		},
		global.Logger, registry)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	global.Logger.Info("watching for changes",
		"dataset", cfg.Dataset, "templates", cfg.TemplatesDir)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
