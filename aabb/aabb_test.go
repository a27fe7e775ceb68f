package aabb_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlath-labs/aabbtree/aabb"
)

type AABBSuite struct {
	suite.Suite
}

func (s *AABBSuite) TestNewRejectsDimensionMismatch() {
	_, err := aabb.New([]float64{0, 0}, []float64{1, 1, 1})
	require.True(s.T(), errors.Is(err, aabb.ErrDimensionMismatch))
}

func (s *AABBSuite) TestNewRejectsInvertedBounds() {
	_, err := aabb.New([]float64{1, 0}, []float64{0, 1})
	require.True(s.T(), errors.Is(err, aabb.ErrInvalidAABB))
}

func (s *AABBSuite) TestNewAllowsDegeneratePoint() {
	box, err := aabb.New([]float64{1, 1}, []float64{1, 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0, 0}, box.Extent())
}

func (s *AABBSuite) TestNewFromCentreRejectsNonPositiveRadius() {
	_, err := aabb.NewFromCentre([]float64{0, 0}, 0)
	require.True(s.T(), errors.Is(err, aabb.ErrBadRadius))

	_, err = aabb.NewFromCentre([]float64{0, 0}, -1)
	require.True(s.T(), errors.Is(err, aabb.ErrBadRadius))
}

func (s *AABBSuite) TestNewFromCentreBuildsHypercube() {
	box, err := aabb.NewFromCentre([]float64{2, 3}, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 2}, box.Lower)
	require.Equal(s.T(), []float64{3, 4}, box.Upper)
}

func (s *AABBSuite) TestSurfaceMeasure2D() {
	box, _ := aabb.New([]float64{0, 0}, []float64{2, 3})
	require.Equal(s.T(), 2*(2.0+3.0), box.SurfaceMeasure())
}

func (s *AABBSuite) TestSurfaceMeasure3D() {
	box, _ := aabb.New([]float64{0, 0, 0}, []float64{2, 3, 4})
	want := 2 * (2.0*3.0 + 3.0*4.0 + 2.0*4.0)
	require.Equal(s.T(), want, box.SurfaceMeasure())
}

func (s *AABBSuite) TestSurfaceMeasureGeneralDimensionMatchesPairwiseSum() {
	box, _ := aabb.New([]float64{0, 0, 0, 0}, []float64{1, 2, 3, 4})
	var want float64
	e := box.Extent()
	for i := 0; i < len(e); i++ {
		for j := i + 1; j < len(e); j++ {
			want += e[i] * e[j]
		}
	}
	want *= 2
	require.Equal(s.T(), want, box.SurfaceMeasure())
}

func (s *AABBSuite) TestUnionIsComponentwiseMinMax() {
	a, _ := aabb.New([]float64{0, 0}, []float64{1, 1})
	b, _ := aabb.New([]float64{-1, 2}, []float64{0.5, 3})
	u := a.Union(b)
	require.Equal(s.T(), []float64{-1, 0}, u.Lower)
	require.Equal(s.T(), []float64{1, 3}, u.Upper)
}

func (s *AABBSuite) TestOverlapTouchIsOverlap() {
	a, _ := aabb.New([]float64{0, 0}, []float64{1, 1})
	b, _ := aabb.New([]float64{1, 0}, []float64{2, 1})
	require.True(s.T(), a.Overlap(b, true))
	require.False(s.T(), a.Overlap(b, false))
}

func (s *AABBSuite) TestOverlapDisjoint() {
	a, _ := aabb.New([]float64{0, 0}, []float64{1, 1})
	b, _ := aabb.New([]float64{2, 2}, []float64{3, 3})
	require.False(s.T(), a.Overlap(b, true))
	require.False(s.T(), a.Overlap(b, false))
}

func (s *AABBSuite) TestContains() {
	outer, _ := aabb.New([]float64{0, 0}, []float64{10, 10})
	inner, _ := aabb.New([]float64{1, 1}, []float64{2, 2})
	require.True(s.T(), outer.Contains(inner))
	require.False(s.T(), inner.Contains(outer))
}

func (s *AABBSuite) TestFattenedGrowsByExtentRatio() {
	box, _ := aabb.New([]float64{0, 0}, []float64{10, 10})
	fat := box.Fattened(0.1)
	require.Equal(s.T(), []float64{-1, -1}, fat.Lower)
	require.Equal(s.T(), []float64{11, 11}, fat.Upper)
	require.True(s.T(), fat.Contains(box))
}

func (s *AABBSuite) TestTranslated() {
	box, _ := aabb.New([]float64{0, 0}, []float64{1, 1})
	moved := box.Translated([]float64{5, -5})
	require.Equal(s.T(), []float64{5, -5}, moved.Lower)
	require.Equal(s.T(), []float64{6, -4}, moved.Upper)
}

func (s *AABBSuite) TestCentre() {
	box, _ := aabb.New([]float64{0, 0}, []float64{4, 6})
	require.Equal(s.T(), []float64{2, 3}, box.Centre())
}

func TestAABBSuite(t *testing.T) {
	suite.Run(t, new(AABBSuite))
}
