package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	jsonLogs bool
	logLevel string

	log = logrus.New()
	v   = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Build, query, and stress-test dynamic AABB trees",
	Long: `treectl drives the aabbtree library end to end: build a tree from
a file of insert/remove/update operations, run queries or mutations against it, stress
it with a randomized insert/remove workload, validate every invariant, or
serve its live structural metrics over Prometheus.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("treectl: bad --log-level %q: %w", logLevel, err)
		}
		log.SetLevel(level)

		if !cmd.Flags().Changed("json") {
			if cfg, err := loadConfig(); err == nil {
				jsonLogs = cfg.JSONLogs
			}
		}
		if jsonLogs {
			log.SetFormatter(&logrus.JSONFormatter{})
		}

		return nil
	},
}

// Execute runs the root command. Called by main.main(); it only needs to
// happen once per process.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (overridable by AABBTREE_* env vars and flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "emit logs as JSON instead of text")
}
