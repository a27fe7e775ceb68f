package periodic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlath-labs/aabbtree/aabb"
	"github.com/lvlath-labs/aabbtree/periodic"
)

type PeriodicSuite struct {
	suite.Suite
}

func (s *PeriodicSuite) TestMinimumImageWrapsLargeSeparation() {
	sep := []float64{8, 1}
	out := periodic.MinimumImage(sep, []bool{true, false}, []float64{10, 10})
	require.Equal(s.T(), []float64{-2, 1}, out)
}

func (s *PeriodicSuite) TestMinimumImageWrapsNegativeSeparation() {
	sep := []float64{-8, 1}
	out := periodic.MinimumImage(sep, []bool{true, false}, []float64{10, 10})
	require.Equal(s.T(), []float64{2, 1}, out)
}

func (s *PeriodicSuite) TestMinimumImageLeavesNonPeriodicUntouched() {
	sep := []float64{8, 1}
	out := periodic.MinimumImage(sep, []bool{false, false}, []float64{10, 10})
	require.Equal(s.T(), []float64{8, 1}, out)
}

func (s *PeriodicSuite) TestWrapPositionHandlesNegativeInput() {
	pos := []float64{-1, 5}
	out := periodic.WrapPosition(pos, []bool{true, false}, []float64{10, 10})
	require.Equal(s.T(), []float64{9, 5}, out)
}

func (s *PeriodicSuite) TestWrapPositionHandlesOverflow() {
	pos := []float64{12, 5}
	out := periodic.WrapPosition(pos, []bool{true, false}, []float64{10, 10})
	require.Equal(s.T(), []float64{2, 5}, out)
}

func (s *PeriodicSuite) TestImagesReturnsOriginalWhenNoCrossing() {
	box, _ := aabb.New([]float64{1, 1}, []float64{2, 2})
	images := periodic.Images(box, []bool{true, true}, []float64{10, 10})
	require.Len(s.T(), images, 1)
	require.Equal(s.T(), box, images[0])
}

func (s *PeriodicSuite) TestImagesSplitsOnSingleAxisOverflow() {
	box, _ := aabb.New([]float64{9, 1}, []float64{11, 2})
	images := periodic.Images(box, []bool{true, true}, []float64{10, 10})
	require.Len(s.T(), images, 2)
}

func (s *PeriodicSuite) TestImagesSplitsOnLowerUnderflow() {
	box, _ := aabb.New([]float64{-1, 1}, []float64{1, 2})
	images := periodic.Images(box, []bool{true, true}, []float64{10, 10})
	require.Len(s.T(), images, 2)
}

func (s *PeriodicSuite) TestImagesCartesianProductAcrossAxes() {
	box, _ := aabb.New([]float64{9, 9}, []float64{11, 11})
	images := periodic.Images(box, []bool{true, true}, []float64{10, 10})
	require.Len(s.T(), images, 4)
}

func (s *PeriodicSuite) TestImagesIgnoresNonPeriodicAxisOverflow() {
	box, _ := aabb.New([]float64{9, 9}, []float64{11, 11})
	images := periodic.Images(box, []bool{true, false}, []float64{10, 10})
	require.Len(s.T(), images, 2)
}

func TestPeriodicSuite(t *testing.T) {
	suite.Run(t, new(PeriodicSuite))
}
