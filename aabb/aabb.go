package aabb

import (
	"errors"
	"fmt"
)

// Sentinel errors for AABB construction and validation.
var (
	// ErrInvalidAABB indicates Lower[i] > Upper[i] on some axis.
	ErrInvalidAABB = errors.New("aabb: lower bound exceeds upper bound")

	// ErrDimensionMismatch indicates a vector argument has the wrong length.
	ErrDimensionMismatch = errors.New("aabb: dimension mismatch")

	// ErrBadDimension indicates a requested dimensionality below the minimum (2).
	ErrBadDimension = errors.New("aabb: dimension must be >= 2")

	// ErrBadRadius indicates a non-positive radius was supplied to NewFromCentre.
	ErrBadRadius = errors.New("aabb: radius must be > 0")
)

// MinDimension is the smallest dimensionality the package accepts.
const MinDimension = 2

// AABB is a d-dimensional axis-aligned bounding box.
//
// Lower and Upper are independent slices of equal length; callers must not
// mutate either after constructing an AABB via New or NewFromCentre, since
// AABB values are treated as immutable once built (Union/etc. allocate new
// slices rather than mutating in place).
type AABB struct {
	Lower []float64
	Upper []float64
}

// New builds an AABB from explicit lower/upper corners.
//
// Returns ErrDimensionMismatch if len(lower) != len(upper), or
// ErrInvalidAABB if lower[i] > upper[i] for any axis i. Validation is
// unconditional (not compiled out in release builds): per spec design
// notes, nothing in this package is hot enough to justify skipping it.
// A degenerate AABB with lower == upper (a point) is legal.
func New(lower, upper []float64) (AABB, error) {
	if len(lower) != len(upper) {
		return AABB{}, fmt.Errorf("aabb.New: %w: len(lower)=%d len(upper)=%d", ErrDimensionMismatch, len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return AABB{}, fmt.Errorf("aabb.New: %w: axis %d, lower=%g upper=%g", ErrInvalidAABB, i, lower[i], upper[i])
		}
	}
	l := make([]float64, len(lower))
	u := make([]float64, len(upper))
	copy(l, lower)
	copy(u, upper)

	return AABB{Lower: l, Upper: u}, nil
}

// NewFromCentre builds an AABB as a hypercube of the given radius centred
// on centre: Lower = centre - radius, Upper = centre + radius on every axis.
//
// Returns ErrBadRadius if radius <= 0.
func NewFromCentre(centre []float64, radius float64) (AABB, error) {
	if radius <= 0 {
		return AABB{}, fmt.Errorf("aabb.NewFromCentre: %w: radius=%g", ErrBadRadius, radius)
	}
	lower := make([]float64, len(centre))
	upper := make([]float64, len(centre))
	for i, c := range centre {
		lower[i] = c - radius
		upper[i] = c + radius
	}

	return AABB{Lower: lower, Upper: upper}, nil
}

// Dim returns the dimensionality of the box.
func (a AABB) Dim() int {
	return len(a.Lower)
}

// Centre returns (Lower+Upper)/2 componentwise.
func (a AABB) Centre() []float64 {
	c := make([]float64, a.Dim())
	for i := range c {
		c[i] = (a.Lower[i] + a.Upper[i]) / 2
	}

	return c
}

// Extent returns Upper-Lower componentwise: the per-axis width of the box.
func (a AABB) Extent() []float64 {
	e := make([]float64, a.Dim())
	for i := range e {
		e[i] = a.Upper[i] - a.Lower[i]
	}

	return e
}

// SurfaceMeasure returns the SAH cost of the box: perimeter
// 2 * (extent[0]+extent[1]) for d=2, surface area for d=3, and the
// generalized pairwise-product sum 2 * sum_{i<j} extent[i]*extent[j] for
// d > 3. The pairwise sum coincides with the d=3 closed form, which is
// written out directly since d=3 dominates real workloads; for d=2 the
// perimeter is used, not the pairwise sum.
func (a AABB) SurfaceMeasure() float64 {
	e := a.Extent()
	switch len(e) {
	case 2:
		return 2 * (e[0] + e[1])
	case 3:
		return 2 * (e[0]*e[1] + e[1]*e[2] + e[0]*e[2])
	default:
		var sum float64
		for i := 0; i < len(e); i++ {
			for j := i + 1; j < len(e); j++ {
				sum += e[i] * e[j]
			}
		}

		return 2 * sum
	}
}

// Union returns the smallest AABB containing both a and b: componentwise
// min(Lower) and max(Upper).
func (a AABB) Union(b AABB) AABB {
	lower := make([]float64, a.Dim())
	upper := make([]float64, a.Dim())
	for i := range lower {
		lower[i] = min(a.Lower[i], b.Lower[i])
		upper[i] = max(a.Upper[i], b.Upper[i])
	}

	return AABB{Lower: lower, Upper: upper}
}

// Overlap reports whether a and b intersect. When touchIsOverlap is true,
// boundary contact (shared edge/face, zero-width intersection) counts as
// overlap; when false, only strict interior intersection does. This mirrors
// the touchIsOverlap constructor flag on the tree.
func (a AABB) Overlap(b AABB, touchIsOverlap bool) bool {
	for i := 0; i < a.Dim(); i++ {
		if touchIsOverlap {
			if a.Upper[i] < b.Lower[i] || a.Lower[i] > b.Upper[i] {
				return false
			}
		} else {
			if a.Upper[i] <= b.Lower[i] || a.Lower[i] >= b.Upper[i] {
				return false
			}
		}
	}

	return true
}

// Contains reports whether a fully contains b: a.Lower <= b.Lower and
// a.Upper >= b.Upper on every axis.
func (a AABB) Contains(b AABB) bool {
	for i := 0; i < a.Dim(); i++ {
		if a.Lower[i] > b.Lower[i] || a.Upper[i] < b.Upper[i] {
			return false
		}
	}

	return true
}

// Fattened returns a new AABB inflated by skin*extent on every side: the
// "fat AABB" trick used by leaves to amortize small movements. skin is a
// ratio (e.g. 0.1), not an absolute distance.
func (a AABB) Fattened(skin float64) AABB {
	extent := a.Extent()
	lower := make([]float64, a.Dim())
	upper := make([]float64, a.Dim())
	for i := range lower {
		pad := skin * extent[i]
		lower[i] = a.Lower[i] - pad
		upper[i] = a.Upper[i] + pad
	}

	return AABB{Lower: lower, Upper: upper}
}

// Translated returns a copy of a shifted by delta on every axis.
func (a AABB) Translated(delta []float64) AABB {
	lower := make([]float64, a.Dim())
	upper := make([]float64, a.Dim())
	for i := range lower {
		lower[i] = a.Lower[i] + delta[i]
		upper[i] = a.Upper[i] + delta[i]
	}

	return AABB{Lower: lower, Upper: upper}
}
