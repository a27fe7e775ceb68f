package periodic

import (
	"math"

	"github.com/lvlath-labs/aabbtree/aabb"
)

// MinimumImage reduces a separation vector to its shortest representation
// under the minimum-image convention: per periodic axis, if the separation
// exceeds half the box length, the box length is subtracted; if it is below
// minus half, the box length is added. Non-periodic axes pass through
// unchanged. O(d).
func MinimumImage(separation []float64, periodic []bool, boxSize []float64) []float64 {
	out := make([]float64, len(separation))
	copy(out, separation)
	for i, p := range periodic {
		if !p {
			continue
		}
		half := boxSize[i] / 2
		switch {
		case out[i] > half:
			out[i] -= boxSize[i]
		case out[i] < -half:
			out[i] += boxSize[i]
		}
	}

	return out
}

// WrapPosition reduces each periodic coordinate of position modulo the box
// length into [0, boxSize). Non-periodic axes pass through unchanged. O(d).
func WrapPosition(position []float64, periodic []bool, boxSize []float64) []float64 {
	out := make([]float64, len(position))
	copy(out, position)
	for i, p := range periodic {
		if !p {
			continue
		}
		out[i] = wrapAxis(out[i], boxSize[i])
	}

	return out
}

// wrapAxis reduces x modulo length into [0, length), handling negative x
// (Go's math.Mod keeps the sign of the dividend, so a manual correction is
// required to land in [0, length) rather than (-length, length)).
func wrapAxis(x, length float64) float64 {
	if length <= 0 {
		return x
	}
	r := math.Mod(x, length)
	if r < 0 {
		r += length
	}

	return r
}

// Images splits box into up to 2^k translated copies, one per combination
// of periodic-boundary crossings, where k is the number of periodic axes on
// which box extends beyond the primary box [0, boxSize). An axis on which
// box extends past both ends contributes three shifts (0, +boxSize and
// -boxSize) rather than two, so the count can exceed 2^k. The original box
// is always included as the all-zero-shift combination. Non-periodic axes,
// and periodic axes box does not cross, contribute only the zero shift.
//
// This is the query-side counterpart of the tree's single-box storage:
// rather than storing ghost particles near periodic boundaries, a caller
// running a query near a boundary replicates the query box across the
// relevant images and deduplicates candidate IDs (the tree's Query method
// does exactly this internally when periodicity is enabled).
func Images(box aabb.AABB, periodic []bool, boxSize []float64) []aabb.AABB {
	shiftsPerAxis := make([][]float64, box.Dim())
	for i := range shiftsPerAxis {
		shifts := []float64{0}
		if periodic[i] {
			if box.Lower[i] < 0 {
				shifts = append(shifts, boxSize[i])
			}
			if box.Upper[i] > boxSize[i] {
				shifts = append(shifts, -boxSize[i])
			}
		}
		shiftsPerAxis[i] = shifts
	}

	combos := [][]float64{{}}
	for _, shifts := range shiftsPerAxis {
		next := make([][]float64, 0, len(combos)*len(shifts))
		for _, c := range combos {
			for _, s := range shifts {
				extended := make([]float64, len(c)+1)
				copy(extended, c)
				extended[len(c)] = s
				next = append(next, extended)
			}
		}
		combos = next
	}

	images := make([]aabb.AABB, 0, len(combos))
	for _, delta := range combos {
		images = append(images, box.Translated(delta))
	}

	return images
}
