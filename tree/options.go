package tree

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Default configuration values, a single source of truth for zero-value
// behavior.
const (
	// DefaultSkinThickness is the fattening ratio applied to every leaf's
	// tight box when no WithSkinThickness option is supplied.
	DefaultSkinThickness = 0.1

	// DefaultInitialCapacity is the node pool's starting capacity when no
	// WithInitialCapacity option is supplied.
	DefaultInitialCapacity = 16

	// DefaultTouchIsOverlap is the default for the touchIsOverlap flag:
	// boundary contact counts as overlap.
	DefaultTouchIsOverlap = true
)

// config holds the immutable-after-construction configuration of a Tree.
type config struct {
	dimension       int
	skinThickness   float64
	periodicity     []bool
	boxSize         []float64
	initialCapacity int
	touchIsOverlap  bool
	logger          *logrus.Logger
	registerer      prometheus.Registerer
}

// Option configures a Tree at construction time, following the functional
// options pattern.
type Option func(*config)

// WithSkinThickness sets the fattening ratio s > 0 applied to leaf tight
// boxes. Panics if s <= 0: option constructors reject nonsensical values
// by panicking rather than deferring the check to a runtime error.
func WithSkinThickness(s float64) Option {
	if s <= 0 {
		panic(fmt.Sprintf("tree.WithSkinThickness: skin thickness must be > 0, got %g", s))
	}

	return func(c *config) { c.skinThickness = s }
}

// WithPeriodicity sets the per-axis periodicity flags. Length must equal
// the tree's dimension; mismatches are caught by New (an Option itself
// does not know the dimension yet).
func WithPeriodicity(periodicity []bool) Option {
	return func(c *config) {
		flags := make([]bool, len(periodicity))
		copy(flags, periodicity)
		c.periodicity = flags
	}
}

// WithBoxSize sets the per-axis primary box size. A positive value bounds
// its axis; a value <= 0 leaves a non-periodic axis unbounded, and New
// rejects it on a periodic axis. Length must equal the tree's dimension
// (checked by New).
func WithBoxSize(boxSize []float64) Option {
	return func(c *config) {
		size := make([]float64, len(boxSize))
		copy(size, boxSize)
		c.boxSize = size
	}
}

// WithInitialCapacity pre-sizes the node pool. Panics if capacity < 1.
func WithInitialCapacity(capacity int) Option {
	if capacity < 1 {
		panic(fmt.Sprintf("tree.WithInitialCapacity: capacity must be >= 1, got %d", capacity))
	}

	return func(c *config) { c.initialCapacity = capacity }
}

// WithTouchIsOverlap sets whether boundary contact counts as overlap.
func WithTouchIsOverlap(touchIsOverlap bool) Option {
	return func(c *config) { c.touchIsOverlap = touchIsOverlap }
}

// WithLogger attaches a structured logger used to emit Debug-level entries
// on rotations and reinsertions. A nil logger (the default, when this
// option is never supplied) makes logging a no-op — the tree never
// requires a logger to function.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetricsRegisterer attaches a Prometheus registerer the tree's
// optional treemetrics.Collector can register against. The tree package
// itself does not register anything; this option only threads the
// registerer through for callers that construct a Collector (see package
// treemetrics).
func WithMetricsRegisterer(registerer prometheus.Registerer) Option {
	return func(c *config) { c.registerer = registerer }
}

// wrapf wraps sentinel with a formatted message, prefixed by method,
// mirroring builder.builderErrorf's "<Method>: <message>" convention while
// preserving the sentinel for errors.Is via %w.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)

	return fmt.Errorf("tree.%s: %w: %s", method, sentinel, msg)
}
