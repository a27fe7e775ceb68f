package treeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadDimension indicates a configured dimension below 2.
	ErrBadDimension = errors.New("treeconfig: dimension must be >= 2")

	// ErrBadSkinThickness indicates a configured skin thickness <= 0.
	ErrBadSkinThickness = errors.New("treeconfig: skin thickness must be > 0")

	// ErrBadInitialCapacity indicates a configured initial capacity < 1.
	ErrBadInitialCapacity = errors.New("treeconfig: initial capacity must be >= 1")

	// ErrPeriodicityLength indicates periodicity's length doesn't match dimension.
	ErrPeriodicityLength = errors.New("treeconfig: periodicity length must equal dimension")

	// ErrBoxSizeLength indicates boxSize's length doesn't match dimension.
	ErrBoxSizeLength = errors.New("treeconfig: box size length must equal dimension")

	// ErrBadPeriodicBoxSize indicates a periodic axis has a non-positive box size.
	ErrBadPeriodicBoxSize = errors.New("treeconfig: periodic axis requires positive box size")

	// ErrBadMetricsAddr indicates an empty metrics bind address when metrics are enabled.
	ErrBadMetricsAddr = errors.New("treeconfig: metrics address must be set when metrics are enabled")
)

// Default configuration values. The sole place these live, per spec — the
// tree package's own defaults (tree.DefaultSkinThickness, etc.) mirror
// these, since cmd/treectl constructs a tree.Tree from a Config.
const (
	DefaultDimension       = 3
	DefaultSkinThickness   = 0.1
	DefaultInitialCapacity = 16
	DefaultTouchIsOverlap  = true
	DefaultMetricsAddr     = ":9191"
	DefaultMetricsEnabled  = false
)

// EnvPrefix is the environment-variable prefix viper binds configuration
// keys under (e.g. AABBTREE_DIMENSION).
const EnvPrefix = "AABBTREE"

// Config is the fully resolved configuration for cmd/treectl, after
// viper's file → environment → flag precedence has been applied.
type Config struct {
	Dimension       int       `mapstructure:"dimension"`
	SkinThickness   float64   `mapstructure:"skin_thickness"`
	InitialCapacity int       `mapstructure:"initial_capacity"`
	TouchIsOverlap  bool      `mapstructure:"touch_is_overlap"`
	Periodicity     []bool    `mapstructure:"periodicity"`
	BoxSize         []float64 `mapstructure:"box_size"`
	MetricsEnabled  bool      `mapstructure:"metrics_enabled"`
	MetricsAddr     string    `mapstructure:"metrics_addr"`
	ConfigFile      string    `mapstructure:"-"`
	JSONLogs        bool      `mapstructure:"json_logs"`
}

// defaults populates v with Config's zero-value defaults, so a run with no
// config file and no environment variables still produces a usable Config.
func defaults(v *viper.Viper) {
	v.SetDefault("dimension", DefaultDimension)
	v.SetDefault("skin_thickness", DefaultSkinThickness)
	v.SetDefault("initial_capacity", DefaultInitialCapacity)
	v.SetDefault("touch_is_overlap", DefaultTouchIsOverlap)
	v.SetDefault("metrics_enabled", DefaultMetricsEnabled)
	v.SetDefault("metrics_addr", DefaultMetricsAddr)
	v.SetDefault("json_logs", false)
}

// Load resolves a Config from (in increasing precedence) built-in
// defaults, an optional YAML file at configFile, and AABBTREE_-prefixed
// environment variables. configFile may be empty, in which case only
// defaults and the environment are consulted. Pass a non-nil v to thread
// in an already flag-bound viper.Viper (see cmd/treectl); pass nil to
// build a fresh one.
func Load(configFile string, v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("treeconfig.Load: reading %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("treeconfig.Load: unmarshal: %w", err)
	}
	cfg.ConfigFile = configFile

	return &cfg, nil
}

// Validate checks every field for internal consistency, aggregating every
// violation found via go.uber.org/multierr rather than stopping at the
// first — the same "report everything" policy as tree.Tree.Validate.
func (c *Config) Validate() error {
	var errs error

	if c.Dimension < 2 {
		errs = multierr.Append(errs, fmt.Errorf("%w: got %d", ErrBadDimension, c.Dimension))
	}
	if c.SkinThickness <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: got %g", ErrBadSkinThickness, c.SkinThickness))
	}
	if c.InitialCapacity < 1 {
		errs = multierr.Append(errs, fmt.Errorf("%w: got %d", ErrBadInitialCapacity, c.InitialCapacity))
	}
	if c.MetricsEnabled && c.MetricsAddr == "" {
		errs = multierr.Append(errs, ErrBadMetricsAddr)
	}

	if c.Dimension >= 2 {
		if c.Periodicity != nil && len(c.Periodicity) != c.Dimension {
			errs = multierr.Append(errs, fmt.Errorf("%w: periodicity len=%d dimension=%d", ErrPeriodicityLength, len(c.Periodicity), c.Dimension))
		}
		if c.BoxSize != nil && len(c.BoxSize) != c.Dimension {
			errs = multierr.Append(errs, fmt.Errorf("%w: box size len=%d dimension=%d", ErrBoxSizeLength, len(c.BoxSize), c.Dimension))
		}
		if c.Periodicity != nil && c.BoxSize != nil && len(c.Periodicity) == len(c.BoxSize) {
			for i, periodic := range c.Periodicity {
				if periodic && c.BoxSize[i] <= 0 {
					errs = multierr.Append(errs, fmt.Errorf("%w: axis %d", ErrBadPeriodicBoxSize, i))
				}
			}
		}
	}

	return errs
}
