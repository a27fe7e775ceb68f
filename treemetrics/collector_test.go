package treemetrics_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/aabbtree/tree"
	"github.com/lvlath-labs/aabbtree/treemetrics"
)

func TestCollectorReportsLiveTreeState(t *testing.T) {
	tr, err := tree.New(2, tree.WithBoxSize([]float64{10, 10}))
	require.NoError(t, err)
	require.NoError(t, tr.InsertParticle(1, []float64{5, 5}, 1))
	require.NoError(t, tr.InsertParticle(2, []float64{5.5, 5}, 1))

	var mu sync.RWMutex
	collector := treemetrics.New(tr, &mu, "test")

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(collector))

	want := `
# HELP aabbtree_particle_count Number of particles currently tracked.
# TYPE aabbtree_particle_count gauge
aabbtree_particle_count{tree="test"} 2
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(want), "aabbtree_particle_count")
	require.NoError(t, err)
}
