package treemetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lvlath-labs/aabbtree/tree"
)

// Collector wraps a *tree.Tree and reports its live structural metrics as
// Prometheus gauges. It takes a read lock around the tree for the
// duration of Collect, so a concurrent background scrape never races a
// foreground mutator goroutine (the tree itself assumes single-threaded
// mutation; this lock is the CLI's responsibility, not the tree's — see
// package doc and SPEC_FULL.md's concurrency section).
type Collector struct {
	mu   *sync.RWMutex
	t    *tree.Tree
	name string

	nodeCount        *prometheus.Desc
	particleCount    *prometheus.Desc
	height           *prometheus.Desc
	surfaceAreaRatio *prometheus.Desc
}

// New builds a Collector over t, guarded by mu. name labels every metric
// (e.g. the tree's logical identity in cmd/treectl serve, useful when more
// than one tree is ever exposed on the same registry).
func New(t *tree.Tree, mu *sync.RWMutex, name string) *Collector {
	constLabels := prometheus.Labels{"tree": name}

	return &Collector{
		mu:   mu,
		t:    t,
		name: name,
		nodeCount: prometheus.NewDesc(
			"aabbtree_node_count", "Number of live nodes in the node pool.", nil, constLabels),
		particleCount: prometheus.NewDesc(
			"aabbtree_particle_count", "Number of particles currently tracked.", nil, constLabels),
		height: prometheus.NewDesc(
			"aabbtree_height", "Height of the tree (0 for empty or single-particle trees).", nil, constLabels),
		surfaceAreaRatio: prometheus.NewDesc(
			"aabbtree_surface_area_ratio", "Sum of internal node surface measures over the root's surface measure.", nil, constLabels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodeCount
	ch <- c.particleCount
	ch <- c.height
	ch <- c.surfaceAreaRatio
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ch <- prometheus.MustNewConstMetric(c.nodeCount, prometheus.GaugeValue, float64(c.t.NodeCount()))
	ch <- prometheus.MustNewConstMetric(c.particleCount, prometheus.GaugeValue, float64(c.t.NParticles()))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(c.t.Height()))
	ch <- prometheus.MustNewConstMetric(c.surfaceAreaRatio, prometheus.GaugeValue, c.t.SurfaceAreaRatio())
}
