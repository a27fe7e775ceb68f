package tree

import "errors"

// Sentinel errors for tree operations: sentinels are never wrapped with
// formatted strings at the definition site; call sites attach context
// with %w (see the wrapf helper in options.go).
var (
	// ErrParticleOutsideBox indicates a particle's tight AABB lies wholly
	// or partly outside the primary box on a non-periodic axis. On
	// periodic axes, coordinates are wrapped instead of rejected.
	ErrParticleOutsideBox = errors.New("tree: particle outside box")

	// ErrInvariantViolated is fatal: it indicates a bug in the tree
	// implementation itself. The tree is left in an undefined state after
	// this error is observed; callers should not continue mutating it.
	ErrInvariantViolated = errors.New("tree: internal invariant violated")

	// ErrEmptyTree indicates an operation that requires at least one
	// particle was invoked on an empty tree. No Tree method returns it:
	// Height and SurfaceAreaRatio both return 0 on an empty tree without
	// error.
	ErrEmptyTree = errors.New("tree: tree is empty")
)
