package tree

import (
	"fmt"
	"sort"

	"github.com/lvlath-labs/aabbtree/aabb"
	"github.com/lvlath-labs/aabbtree/nodepool"
	"github.com/lvlath-labs/aabbtree/periodic"
)

// Query returns the candidate particle IDs whose (fattened) leaf box
// overlaps the box of the particle identified by id, excluding id itself.
// Equivalent to QueryAABB(fattened box of id) with id removed from the
// result. Returns particlemap.ErrUnknownID if id is absent.
func (t *Tree) Query(id uint64) ([]uint64, error) {
	leafIdx, err := t.particles.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("tree.Query: %w", err)
	}
	box := t.pool.Get(leafIdx).Box

	candidates, err := t.QueryAABB(box)
	if err != nil {
		return nil, err
	}

	out := candidates[:0]
	for _, candidate := range candidates {
		if candidate != id {
			out = append(out, candidate)
		}
	}

	return out, nil
}

// QueryAABB returns every particle ID whose (fattened) leaf box overlaps
// box. The returned set is a superset of the particles whose tight box
// truly overlaps box — fattened storage can produce false positives by
// design; narrow-phase filtering is the caller's responsibility. When the
// tree has periodic axes, box is replicated across boundary images (see
// package periodic) and results are deduplicated across images.
func (t *Tree) QueryAABB(box aabb.AABB) ([]uint64, error) {
	if err := t.checkDimension("QueryAABB", box.Lower, box.Upper); err != nil {
		return nil, err
	}

	anyPeriodic := false
	for _, p := range t.cfg.periodicity {
		if p {
			anyPeriodic = true

			break
		}
	}

	seen := make(map[uint64]struct{})
	if !anyPeriodic {
		t.collectOverlaps(box, seen)
	} else {
		for _, image := range periodic.Images(box, t.cfg.periodicity, t.cfg.boxSize) {
			t.collectOverlaps(image, seen)
		}
	}

	ids := make([]uint64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// collectOverlaps runs an iterative stack-based descent: pop a node, skip
// it if its box doesn't overlap box, emit its
// particle ID if it's a leaf, otherwise push both children. An explicit
// slice-backed stack is used (rather than recursion) so a pathologically
// deep tree cannot exhaust the call stack.
func (t *Tree) collectOverlaps(box aabb.AABB, into map[uint64]struct{}) {
	if t.root == nodepool.NullNode {
		return
	}

	stack := make([]uint32, 0, 64)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.pool.Get(idx)
		if !n.Box.Overlap(box, t.cfg.touchIsOverlap) {
			continue
		}
		if n.IsLeaf() {
			into[n.ParticleID] = struct{}{}

			continue
		}
		stack = append(stack, n.Left, n.Right)
	}
}
