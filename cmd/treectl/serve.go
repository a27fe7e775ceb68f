package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lvlath-labs/aabbtree/tree"
	"github.com/lvlath-labs/aabbtree/treeconfig"
	"github.com/lvlath-labs/aabbtree/treemetrics"
)

var (
	serveAddr         string
	serveWatchConfig  bool
	serveTickInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a continuously-mutating tree and export its metrics over HTTP",
	Long: `serve builds a tree, starts a background goroutine that repeatedly
inserts and removes random particles (so aabbtree_* gauges have something
to move), and exposes them at /metrics for Prometheus to scrape. With
--watch-config, edits to the config file are detected via viper's
config-file watch, re-validated and logged; they are not applied to the
running tree, so a restart is needed to use them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.MetricsEnabled {
			return fmt.Errorf("treectl serve: metrics_enabled is false (set --metrics-enabled or metrics_enabled in config)")
		}
		if !cmd.Flags().Changed("addr") {
			serveAddr = cfg.MetricsAddr
		}

		t, err := newTreeFromConfig(cfg)
		if err != nil {
			return err
		}

		var mu sync.RWMutex
		collector := treemetrics.New(t, &mu, "serve")
		reg := t.Registerer()
		if reg == nil {
			reg = defaultRegisterer()
		}
		if err := reg.Register(collector); err != nil {
			return fmt.Errorf("treectl serve: registering collector: %w", err)
		}

		if serveWatchConfig && cfg.ConfigFile != "" {
			// A tree's skin thickness and box size are immutable post-
			// construction (see tree.New), so a config change can't be
			// applied to the live tree; this re-validates the new file and
			// surfaces the outcome so an operator knows a restart is needed.
			v.OnConfigChange(func(e fsnotify.Event) {
				log.WithField("file", e.Name).Info("config file changed")
				if _, err := loadConfig(); err != nil {
					log.WithError(err).Warn("new config fails validation, keeping serving with old settings")
				} else {
					log.Info("new config is valid; restart treectl serve to apply it")
				}
			})
			v.WatchConfig()
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go mutationLoop(ctx, t, &mu)

		log.WithField("addr", serveAddr).Info("serving metrics")
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: serveAddr, Handler: mux}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("treectl serve: %w", err)
		}

		return nil
	},
}

// mutationLoop inserts and removes random particles on a timer, under the
// write side of mu, so the /metrics endpoint always observes a quiescent
// tree when it takes the read side via treemetrics.Collector.Collect.
func mutationLoop(ctx context.Context, t *tree.Tree, mu *sync.RWMutex) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticker := time.NewTicker(serveTickInterval)
	defer ticker.Stop()

	var nextID uint64
	live := make([]uint64, 0)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mu.Lock()
			centre := make([]float64, t.Dimension())
			for i := range centre {
				centre[i] = rng.Float64() * 10
			}
			if err := t.InsertParticle(nextID, centre, 0.2); err == nil {
				live = append(live, nextID)
				nextID++
			}
			if len(live) > 200 {
				victim := live[0]
				live = live[1:]
				_ = t.RemoveParticle(victim)
			}
			mu.Unlock()
		}
	}
}

func defaultRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

func init() {
	bindTreeFlags(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", treeconfig.DefaultMetricsAddr, "metrics HTTP bind address (defaults to metrics_addr from config)")
	serveCmd.Flags().Bool("metrics-enabled", treeconfig.DefaultMetricsEnabled, "enable the metrics server (must be true to run serve)")
	serveCmd.Flags().BoolVar(&serveWatchConfig, "watch-config", false, "reload config on file change")
	serveCmd.Flags().DurationVar(&serveTickInterval, "tick", 500*time.Millisecond, "mutation loop interval")
	_ = v.BindPFlag("metrics_enabled", serveCmd.Flags().Lookup("metrics-enabled"))
	_ = v.BindPFlag("metrics_addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
