package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlath-labs/aabbtree/aabb"
	"github.com/lvlath-labs/aabbtree/tree"
)

// TreeSuite exercises Tree under its core usage scenarios (construction,
// overlap queries, periodic wrap, skin-thickness absorption and eviction,
// stress insert/remove), plus the round-trip and boundary properties
// required of any valid sequence of operations.
type TreeSuite struct {
	suite.Suite
}

func newBoundedTree(s *TreeSuite) *tree.Tree {
	t, err := tree.New(2, tree.WithBoxSize([]float64{10, 10}), tree.WithSkinThickness(0.1))
	require.NoError(s.T(), err)

	return t
}

// TestEmptyThenOne covers scenario 1.
func (s *TreeSuite) TestEmptyThenOne() {
	t := newBoundedTree(s)

	require.NoError(s.T(), t.InsertParticle(7, []float64{5, 5}, 1))
	require.Equal(s.T(), 1, t.NParticles())
	require.Equal(s.T(), 0, t.Height())

	ids, err := t.QueryAABB(mustBox(s, []float64{0, 0}, []float64{10, 10}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []uint64{7}, ids)

	ids, err = t.QueryAABB(mustBox(s, []float64{8, 8}, []float64{9, 9}))
	require.NoError(s.T(), err)
	require.Empty(s.T(), ids)
}

// TestTwoOverlappingDiscs covers scenario 2.
func (s *TreeSuite) TestTwoOverlappingDiscs() {
	t := newBoundedTree(s)
	require.NoError(s.T(), t.InsertParticle(7, []float64{5, 5}, 1))
	require.NoError(s.T(), t.InsertParticle(3, []float64{5.5, 5}, 1))

	require.Equal(s.T(), 1, t.Height())

	res, err := t.Query(7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []uint64{3}, res)

	res, err = t.Query(3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []uint64{7}, res)

	require.NoError(s.T(), t.Validate())
}

// TestPeriodicWrap covers scenario 3.
func (s *TreeSuite) TestPeriodicWrap() {
	t, err := tree.New(2, tree.WithPeriodicity([]bool{true, true}), tree.WithBoxSize([]float64{10, 10}))
	require.NoError(s.T(), err)

	require.NoError(s.T(), t.InsertParticle(1, []float64{0.1, 5}, 0.5))
	require.NoError(s.T(), t.InsertParticle(2, []float64{9.9, 5}, 0.5))

	res, err := t.Query(1)
	require.NoError(s.T(), err)
	require.Contains(s.T(), res, uint64(2))

	res, err = t.Query(2)
	require.NoError(s.T(), err)
	require.Contains(s.T(), res, uint64(1))
}

// TestSkinNoOp covers scenario 4.
func (s *TreeSuite) TestSkinNoOp() {
	t, err := tree.New(3, tree.WithSkinThickness(0.5))
	require.NoError(s.T(), err)
	require.NoError(s.T(), t.InsertParticle(0, []float64{5, 5, 5}, 1))

	before := t.String()
	changed, err := t.UpdateParticle(0, []float64{5.1, 5, 5}, 1, false)
	require.NoError(s.T(), err)
	require.False(s.T(), changed)
	require.Equal(s.T(), before, t.String())
}

// TestSkinForcesReinsertion covers scenario 5.
func (s *TreeSuite) TestSkinForcesReinsertion() {
	t, err := tree.New(3, tree.WithSkinThickness(0.5))
	require.NoError(s.T(), err)
	require.NoError(s.T(), t.InsertParticle(0, []float64{5, 5, 5}, 1))

	changed, err := t.UpdateParticle(0, []float64{7, 5, 5}, 1, false)
	require.NoError(s.T(), err)
	require.True(s.T(), changed)
	require.NoError(s.T(), t.Validate())
}

// TestStress covers scenario 6 at reduced scale (1000 particles rather
// than 10000, to keep the suite fast) and asserts every intermediate
// state validates.
func (s *TreeSuite) TestStress() {
	const n = 1000
	t, err := tree.New(3, tree.WithBoxSize([]float64{100, 100, 100}))
	require.NoError(s.T(), err)

	rng := rand.New(rand.NewSource(1))
	ids := make([]uint64, 0, n)
	placed := make([][3]float64, 0, n)

	attempts := 0
	for len(ids) < n && attempts < n*20 {
		attempts++
		c := [3]float64{
			1 + rng.Float64()*98,
			1 + rng.Float64()*98,
			1 + rng.Float64()*98,
		}
		r := 0.2
		overlaps := false
		for _, p := range placed {
			d2 := (c[0]-p[0])*(c[0]-p[0]) + (c[1]-p[1])*(c[1]-p[1]) + (c[2]-p[2])*(c[2]-p[2])
			if d2 < (2*r)*(2*r) {
				overlaps = true

				break
			}
		}
		if overlaps {
			continue
		}
		id := uint64(len(ids))
		require.NoError(s.T(), t.InsertParticle(id, c[:], r))
		require.NoError(s.T(), t.Validate())
		ids = append(ids, id)
		placed = append(placed, c)
	}

	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	for _, id := range ids {
		require.NoError(s.T(), t.RemoveParticle(id))
		require.NoError(s.T(), t.Validate())
	}

	require.Equal(s.T(), 0, t.NParticles())
	require.Equal(s.T(), 0, t.NodeCount())
}

// TestRemoveAfterInsertRestoresEmptyTree covers the remove/insert
// round-trip law.
func (s *TreeSuite) TestRemoveAfterInsertRestoresEmptyTree() {
	t := newBoundedTree(s)
	require.NoError(s.T(), t.InsertParticle(1, []float64{5, 5}, 1))
	require.NoError(s.T(), t.RemoveParticle(1))

	require.Equal(s.T(), 0, t.NParticles())
	require.Equal(s.T(), 0, t.Height())
	require.Equal(s.T(), 0, t.NodeCount())
}

// TestUpdateSamePositionIsNoOp covers the update idempotence law.
func (s *TreeSuite) TestUpdateSamePositionIsNoOp() {
	t := newBoundedTree(s)
	require.NoError(s.T(), t.InsertParticle(1, []float64{5, 5}, 1))

	changed, err := t.UpdateParticle(1, []float64{5, 5}, 1, false)
	require.NoError(s.T(), err)
	require.False(s.T(), changed)
}

// TestInsertOrderIndependentQueryResults covers the order-independence
// law: two trees built from the same {id -> aabb} set in different
// orders answer every query with set-equal results.
func (s *TreeSuite) TestInsertOrderIndependentQueryResults() {
	type particle struct {
		id     uint64
		centre []float64
		r      float64
	}
	particles := []particle{
		{1, []float64{5, 5}, 1},
		{2, []float64{5.5, 5}, 1},
		{3, []float64{1, 1}, 0.5},
		{4, []float64{8, 8}, 1.5},
	}

	t1 := newBoundedTree(s)
	for _, p := range particles {
		require.NoError(s.T(), t1.InsertParticle(p.id, p.centre, p.r))
	}

	order := []int{3, 1, 0, 2}
	t2 := newBoundedTree(s)
	for _, i := range order {
		p := particles[i]
		require.NoError(s.T(), t2.InsertParticle(p.id, p.centre, p.r))
	}

	for _, p := range particles {
		res1, err := t1.Query(p.id)
		require.NoError(s.T(), err)
		res2, err := t2.Query(p.id)
		require.NoError(s.T(), err)
		require.ElementsMatch(s.T(), res1, res2)
	}
}

// TestFirstInsertIsRootWithZeroHeight covers the boundary behavior.
func (s *TreeSuite) TestFirstInsertIsRootWithZeroHeight() {
	t := newBoundedTree(s)
	require.NoError(s.T(), t.InsertParticle(1, []float64{5, 5}, 1))
	require.Equal(s.T(), 0, t.Height())
}

// TestRemovingRootEmptiesTree covers the boundary behavior.
func (s *TreeSuite) TestRemovingRootEmptiesTree() {
	t := newBoundedTree(s)
	require.NoError(s.T(), t.InsertParticle(1, []float64{5, 5}, 1))
	require.NoError(s.T(), t.RemoveParticle(1))
	require.Equal(s.T(), 0, t.NParticles())
}

// TestSurfaceAreaRatioFixedSeedRegression builds a tree from a fixed
// random seed and asserts its SurfaceAreaRatio stays within a known-good
// range, guarding against silent SAH descent drift.
func (s *TreeSuite) TestSurfaceAreaRatioFixedSeedRegression() {
	t, err := tree.New(2, tree.WithBoxSize([]float64{1000, 1000}))
	require.NoError(s.T(), err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		c := []float64{rng.Float64() * 998, rng.Float64() * 998}
		require.NoError(s.T(), t.InsertParticle(uint64(i), c, 1))
	}

	ratio := t.SurfaceAreaRatio()
	require.Greater(s.T(), ratio, 0.0)
	require.Less(s.T(), ratio, 50.0)
	require.NoError(s.T(), t.Validate())
}

func (s *TreeSuite) TestInsertDuplicateIDErrors() {
	t := newBoundedTree(s)
	require.NoError(s.T(), t.InsertParticle(1, []float64{5, 5}, 1))
	err := t.InsertParticle(1, []float64{1, 1}, 1)
	require.Error(s.T(), err)
	require.Equal(s.T(), 1, t.NodeCount())
}

func (s *TreeSuite) TestInsertOutsideBoxErrors() {
	t := newBoundedTree(s)
	err := t.InsertParticle(1, []float64{100, 100}, 1)
	require.Error(s.T(), err)
}

func (s *TreeSuite) TestRemoveAllResetsTree() {
	t := newBoundedTree(s)
	require.NoError(s.T(), t.InsertParticle(1, []float64{5, 5}, 1))
	require.NoError(s.T(), t.InsertParticle(2, []float64{6, 6}, 1))

	t.RemoveAll()
	require.Equal(s.T(), 0, t.NParticles())
	require.Equal(s.T(), 0, t.NodeCount())
}

func mustBox(s *TreeSuite, lower, upper []float64) aabb.AABB {
	b, err := aabb.New(lower, upper)
	require.NoError(s.T(), err)

	return b
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}
