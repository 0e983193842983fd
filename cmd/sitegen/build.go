package main

import (
	"context"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	SiteFlags `embed:""`

	Watch       bool   `short:"w" help:"Rebuild whenever the configuration, city input or assets change"`
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus text format to this file"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, b.SiteFlags)
	if err != nil {
		return err
	}

	reg := prom.NewRegistry()
	var rec metrics.Recorder = metrics.NoopRecorder{}
	if b.MetricsFile != "" {
		rec = metrics.NewPrometheusRecorder(reg)
	}
	build := func(ctx context.Context, cfg *config.Config) error {
		_, err := site.New(cfg).SetRecorder(rec).Build(ctx)
		if b.MetricsFile != "" {
			if merr := metrics.WriteTextfile(b.MetricsFile, reg); merr != nil {
				slog.Warn("Failed to write metrics", logfields.File(b.MetricsFile), logfields.Error(merr))
			}
		}
		return err
	}

	err = build(g.Ctx, cfg)
	if !b.Watch {
		return err
	}
	if err != nil {
		slog.Error("Initial build failed; watching for changes", logfields.Error(err))
	}
	return site.Watch(g.Ctx, site.New(cfg).WatchPaths(root.configPath()), func(ctx context.Context) {
		next, err := loadConfig(root, b.SiteFlags)
		if err != nil {
			slog.Error("Configuration reload failed", logfields.Error(err))
			return
		}
		if err := build(ctx, next); err != nil {
			slog.Error("Rebuild failed", logfields.Error(err))
		}
	})
}
