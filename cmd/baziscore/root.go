// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/taufulou/bazi-app-sub000/cache"
	"github.com/taufulou/bazi-app-sub000/compat"
	"github.com/taufulou/bazi-app-sub000/config"
)

// app holds the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	verbose  bool
	format   string
	scenario string

	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	comparer cache.Comparer
	stats    func() cache.Stats
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "baziscore",
		Short:         "Four-pillar relationship analysis and compatibility scoring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				a.logMetrics()
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: json or yaml (default $BAZI_OUTPUT)")

	root.AddCommand(a.relationsCmd(), a.compareCmd(), a.matrixCmd())
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.format != "" {
		if cfg.Output, err = config.ParseOutput(a.format); err != nil {
			return err
		}
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	engine := compat.NewEngine(compat.WithLogger(a.logger.Named("compat")))
	a.comparer = engine
	a.stats = func() cache.Stats { return cache.Stats{} }
	if cfg.CacheSize > 0 {
		a.registry = prometheus.NewRegistry()
		c, err := cache.New(engine,
			cache.WithMaxEntries(cfg.CacheSize),
			cache.WithRegisterer(a.registry),
		)
		if err != nil {
			return err
		}
		a.comparer = c
		a.stats = c.Stats
	}
	return nil
}

// scenarioOrDefault resolves the --scenario flag against the configured default.
func (a *app) scenarioOrDefault() (compat.Scenario, error) {
	if a.scenario == "" {
		return a.cfg.DefaultScenario, nil
	}
	return compat.ParseScenario(a.scenario)
}

// logMetrics writes the cache counters at debug level.
func (a *app) logMetrics() {
	if a.registry == nil {
		return
	}
	mfs, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			a.logger.Debug("metric",
				zap.String("name", mf.GetName()),
				zap.Float64("value", m.GetCounter().GetValue()))
		}
	}
}
