package tree

import (
	"fmt"

	"github.com/lvlath-labs/aabbtree/aabb"
	"github.com/lvlath-labs/aabbtree/nodepool"
	"github.com/lvlath-labs/aabbtree/particlemap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Tree is a dynamic AABB tree: a self-balancing binary tree spatial index
// over fat bounding boxes. See package doc for the algorithm overview.
//
// A Tree is single-threaded-mutable: see package doc's Concurrency section.
type Tree struct {
	cfg       config
	pool      *nodepool.Pool
	particles *particlemap.Map
	root      uint32
}

// New constructs an empty Tree over the given dimensionality (>= 2),
// configured by opts. Defaults: skin thickness 0.1, no periodicity, no box
// size bound (non-periodic axes are unbounded unless WithBoxSize gives
// them a positive size), initial capacity 16, touchIsOverlap true.
//
// Returns an error if dimension < aabb.MinDimension, or if WithPeriodicity
// / WithBoxSize were supplied with a length not matching dimension, or if
// a periodic axis has a non-positive box size.
func New(dimension int, opts ...Option) (*Tree, error) {
	if dimension < aabb.MinDimension {
		return nil, wrapf("New", aabb.ErrBadDimension, "dimension=%d", dimension)
	}

	cfg := config{
		dimension:       dimension,
		skinThickness:   DefaultSkinThickness,
		initialCapacity: DefaultInitialCapacity,
		touchIsOverlap:  DefaultTouchIsOverlap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.periodicity == nil {
		cfg.periodicity = make([]bool, dimension)
	} else if len(cfg.periodicity) != dimension {
		return nil, wrapf("New", aabb.ErrDimensionMismatch, "periodicity length=%d dimension=%d", len(cfg.periodicity), dimension)
	}

	if cfg.boxSize == nil {
		cfg.boxSize = make([]float64, dimension)
	} else if len(cfg.boxSize) != dimension {
		return nil, wrapf("New", aabb.ErrDimensionMismatch, "boxSize length=%d dimension=%d", len(cfg.boxSize), dimension)
	}

	for i, periodic := range cfg.periodicity {
		if periodic && cfg.boxSize[i] <= 0 {
			return nil, wrapf("New", ErrParticleOutsideBox, "axis %d is periodic but boxSize<=0", i)
		}
	}

	return &Tree{
		cfg:       cfg,
		pool:      nodepool.New(cfg.initialCapacity),
		particles: particlemap.New(),
		root:      nodepool.NullNode,
	}, nil
}

// Dimension returns the tree's fixed dimensionality.
func (t *Tree) Dimension() int { return t.cfg.dimension }

// NParticles returns the number of particles currently tracked.
func (t *Tree) NParticles() int { return t.particles.Len() }

// NodeCount returns the number of currently allocated (live) nodes.
func (t *Tree) NodeCount() int { return t.pool.Count() }

// Registerer returns the Prometheus registerer supplied via
// WithMetricsRegisterer, or nil if none was configured. Callers that want
// a treemetrics.Collector wired up automatically can register it here;
// the tree package itself never touches this value beyond returning it.
func (t *Tree) Registerer() prometheus.Registerer { return t.cfg.registerer }

// Height returns the tree's height (0 for an empty or single-particle
// tree).
func (t *Tree) Height() int {
	if t.root == nodepool.NullNode {
		return 0
	}

	return int(t.pool.Get(t.root).Height)
}

// SurfaceAreaRatio returns the sum of internal node surface measures
// divided by the root's surface measure — a quality metric for the tree
// (lower is better; a well-balanced tree keeps this small). Returns 0 for
// an empty or single-leaf tree (there is no internal node to sum, and a
// lone leaf's ratio is degenerate).
func (t *Tree) SurfaceAreaRatio() float64 {
	if t.root == nodepool.NullNode {
		return 0
	}
	rootNode := t.pool.Get(t.root)
	if rootNode.IsLeaf() {
		return 0
	}
	rootMeasure := rootNode.Box.SurfaceMeasure()
	if rootMeasure == 0 {
		return 0
	}

	var sum float64
	var walk func(idx uint32)
	walk = func(idx uint32) {
		if idx == nodepool.NullNode {
			return
		}
		n := t.pool.Get(idx)
		if n.IsLeaf() {
			return
		}
		sum += n.Box.SurfaceMeasure()
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.root)

	return sum / rootMeasure
}

// RemoveAll clears the tree and its particle map; the node pool is reset
// to a fresh pool at the originally configured initial capacity, so
// NodeCount() is 0 afterward.
func (t *Tree) RemoveAll() {
	t.pool = nodepool.New(t.cfg.initialCapacity)
	t.particles.Clear()
	t.root = nodepool.NullNode
}

func (t *Tree) logf(fields logrus.Fields, format string, args ...interface{}) {
	if t.cfg.logger == nil {
		return
	}
	t.cfg.logger.WithFields(fields).Debugf(format, args...)
}

func (t *Tree) checkDimension(method string, vecs ...[]float64) error {
	for _, v := range vecs {
		if len(v) != t.cfg.dimension {
			return wrapf(method, aabb.ErrDimensionMismatch, "got length %d, want %d", len(v), t.cfg.dimension)
		}
	}

	return nil
}

// clampToBoxOrError validates/wraps a tight AABB against the tree's configured
// box: periodic axes are wrapped via periodic.WrapPosition (applied to
// both corners, which is correct as long as the tight box itself is
// narrower than the periodic box — an object larger than the box it
// periodically wraps in is a modeling error, not one this package
// resolves); non-periodic axes require the box to lie fully within
// [0, boxSize] when a positive boxSize was configured for that axis
// (boxSize 0 means "unbounded", matching New's defaults).
func (t *Tree) clampToBoxOrError(method string, tight aabb.AABB) (aabb.AABB, error) {
	anyPeriodic := false
	for _, p := range t.cfg.periodicity {
		if p {
			anyPeriodic = true

			break
		}
	}
	if !anyPeriodic {
		for i := 0; i < t.cfg.dimension; i++ {
			if t.cfg.boxSize[i] <= 0 {
				continue
			}
			if tight.Lower[i] < 0 || tight.Upper[i] > t.cfg.boxSize[i] {
				return aabb.AABB{}, wrapf(method, ErrParticleOutsideBox, "axis %d, lower=%g upper=%g boxSize=%g", i, tight.Lower[i], tight.Upper[i], t.cfg.boxSize[i])
			}
		}

		return tight, nil
	}

	lower := wrapVector(tight.Lower, t.cfg.periodicity, t.cfg.boxSize)
	extent := tight.Extent()
	upper := make([]float64, t.cfg.dimension)
	for i := range upper {
		upper[i] = lower[i] + extent[i]
	}
	for i := 0; i < t.cfg.dimension; i++ {
		if t.cfg.periodicity[i] {
			continue
		}
		if t.cfg.boxSize[i] <= 0 {
			continue
		}
		if lower[i] < 0 || upper[i] > t.cfg.boxSize[i] {
			return aabb.AABB{}, wrapf(method, ErrParticleOutsideBox, "axis %d (non-periodic), lower=%g upper=%g boxSize=%g", i, lower[i], upper[i], t.cfg.boxSize[i])
		}
	}

	return aabb.AABB{Lower: lower, Upper: upper}, nil
}

// String renders a short diagnostic summary, handy in log lines and test
// failure messages.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{dim=%d, particles=%d, nodes=%d, height=%d}", t.cfg.dimension, t.NParticles(), t.NodeCount(), t.Height())
}
