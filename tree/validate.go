package tree

import (
	"fmt"

	"github.com/lvlath-labs/aabbtree/nodepool"
	"go.uber.org/multierr"
)

// Validate walks the entire tree structure and checks every structural
// invariant, returning a combined error (via multierr) listing every
// violation found rather than stopping at the first one.
// Intended for tests and diagnostic tooling, not the hot path.
func (t *Tree) Validate() error {
	var errs error

	errs = multierr.Append(errs, t.validateStructure())
	errs = multierr.Append(errs, t.validateParticleMap())
	errs = multierr.Append(errs, t.validateFreeList())

	return errs
}

// validateStructure recursively checks, from the root down: parent/child
// pointer symmetry, height = 1+max(child heights), box = union of
// children's boxes, that every leaf's particle ID is present in the
// particle map, and the |balance| <= 1 AVL invariant at every internal
// node.
func (t *Tree) validateStructure() error {
	if t.root == nodepool.NullNode {
		return nil
	}

	var errs error
	var walk func(idx, parentIdx uint32)
	walk = func(idx, parentIdx uint32) {
		n := t.pool.Get(idx)
		if n.Parent != parentIdx {
			errs = multierr.Append(errs, fmt.Errorf("node %d: parent=%d, want %d", idx, n.Parent, parentIdx))
		}

		if n.IsLeaf() {
			if _, err := t.particles.Lookup(n.ParticleID); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("leaf %d: particle %d not found in particle map: %w", idx, n.ParticleID, err))
			}

			return
		}

		left := t.pool.Get(n.Left)
		right := t.pool.Get(n.Right)

		wantHeight := 1 + maxInt32(left.Height, right.Height)
		if n.Height != wantHeight {
			errs = multierr.Append(errs, fmt.Errorf("node %d: height=%d, want %d", idx, n.Height, wantHeight))
		}

		wantBox := left.Box.Union(right.Box)
		if !n.Box.Contains(wantBox) || !wantBox.Contains(n.Box) {
			errs = multierr.Append(errs, fmt.Errorf("node %d: box does not equal union of children's boxes", idx))
		}

		balance := right.Height - left.Height
		if balance > 1 || balance < -1 {
			errs = multierr.Append(errs, fmt.Errorf("node %d: unbalanced, left height=%d right height=%d", idx, left.Height, right.Height))
		}

		walk(n.Left, idx)
		walk(n.Right, idx)
	}
	walk(t.root, nodepool.NullNode)

	return errs
}

// validateParticleMap checks that every particle the particle map tracks
// resolves to a live leaf node that in turn points back at that same
// particle ID, and counts the reachable leaves against t.NParticles().
func (t *Tree) validateParticleMap() error {
	var errs error
	var leafCount int

	if t.root != nodepool.NullNode {
		var walk func(idx uint32)
		walk = func(idx uint32) {
			n := t.pool.Get(idx)
			if n.IsLeaf() {
				leafCount++

				return
			}
			walk(n.Left)
			walk(n.Right)
		}
		walk(t.root)
	}

	if leafCount != t.particles.Len() {
		errs = multierr.Append(errs, fmt.Errorf("reachable leaf count=%d, particle map length=%d", leafCount, t.particles.Len()))
	}

	for _, id := range t.particles.IDs() {
		leafIdx, err := t.particles.Lookup(id)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("particle %d: %w", id, err))

			continue
		}
		n := t.pool.Get(leafIdx)
		if !n.IsLeaf() {
			errs = multierr.Append(errs, fmt.Errorf("particle %d: mapped node %d is not a leaf", id, leafIdx))

			continue
		}
		if n.ParticleID != id {
			errs = multierr.Append(errs, fmt.Errorf("particle %d: mapped leaf %d holds particle %d instead", id, leafIdx, n.ParticleID))
		}
	}

	return errs
}

// validateFreeList checks the node pool's bookkeeping: allocated count
// plus free-list length must equal total capacity.
func (t *Tree) validateFreeList() error {
	want := t.pool.Capacity() - t.pool.Count()
	if got := t.pool.FreeListLength(); got != want {
		return fmt.Errorf("free list length=%d, want %d (capacity=%d, count=%d)", got, want, t.pool.Capacity(), t.pool.Count())
	}

	return nil
}
