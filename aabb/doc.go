// Package aabb defines the d-dimensional axis-aligned bounding box used
// throughout the tree, node pool and periodic packages.
//
// An AABB is a pair of coordinate vectors (Lower, Upper) of equal length d,
// with the invariant Lower[i] <= Upper[i] for every axis i. All operations
// are pure and run in O(d): Union, Overlap, Contains, Centre and the
// surface measure used as the tree's SAH cost.
//
// Surface measure is computed by closed form for d=2 (perimeter) and d=3
// (surface area), and by the generalized pairwise product pattern for
// d > 3 — see SurfaceMeasure's doc comment for the exact formula.
//
// Errors:
//
//	ErrInvalidAABB       - Lower[i] > Upper[i] on some axis.
//	ErrDimensionMismatch - a vector argument has the wrong length.
package aabb
