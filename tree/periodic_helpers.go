package tree

import "github.com/lvlath-labs/aabbtree/periodic"

// wrapVector reduces every periodic coordinate of v into [0, boxSize).
func wrapVector(v []float64, periodicity []bool, boxSize []float64) []float64 {
	return periodic.WrapPosition(v, periodicity, boxSize)
}
