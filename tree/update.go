package tree

import (
	"fmt"

	"github.com/lvlath-labs/aabbtree/aabb"
	"github.com/lvlath-labs/aabbtree/nodepool"
)

// UpdateParticle moves the particle identified by id to a new hypercube
// position. If the leaf's current fattened box still contains the new
// tight box, this is a structural no-op and returns (false, nil) — the
// central fat-AABB optimization. Otherwise the leaf is removed and
// reinserted (reusing the same node-pool slot) and returns (true, nil).
// forceReinsert, when true, skips the containment check and always
// reinserts. Returns particlemap.ErrUnknownID if id is absent.
func (t *Tree) UpdateParticle(id uint64, centre []float64, radius float64, forceReinsert bool) (bool, error) {
	if err := t.checkDimension("UpdateParticle", centre); err != nil {
		return false, err
	}
	tight, err := aabb.NewFromCentre(centre, radius)
	if err != nil {
		return false, fmt.Errorf("tree.UpdateParticle: %w", err)
	}

	return t.updateTight(id, tight, forceReinsert)
}

// UpdateParticleAABB is UpdateParticle with an explicit tight box instead
// of a centre/radius pair.
func (t *Tree) UpdateParticleAABB(id uint64, lower, upper []float64, forceReinsert bool) (bool, error) {
	if err := t.checkDimension("UpdateParticleAABB", lower, upper); err != nil {
		return false, err
	}
	tight, err := aabb.New(lower, upper)
	if err != nil {
		return false, fmt.Errorf("tree.UpdateParticleAABB: %w", err)
	}

	return t.updateTight(id, tight, forceReinsert)
}

func (t *Tree) updateTight(id uint64, tight aabb.AABB, forceReinsert bool) (bool, error) {
	leafIdx, err := t.particles.Lookup(id)
	if err != nil {
		return false, fmt.Errorf("tree.Update: %w", err)
	}

	clamped, err := t.clampToBoxOrError("Update", tight)
	if err != nil {
		return false, err
	}

	leaf := t.pool.Get(leafIdx)
	if !forceReinsert && leaf.Box.Contains(clamped) {
		return false, nil
	}

	fat := clamped.Fattened(t.cfg.skinThickness)

	t.unlinkLeaf(leafIdx)

	// Reset the leaf's structural fields for reuse: ParticleID is kept, the
	// node-pool slot is not freed and reallocated. Reusing the slot avoids
	// churn on the free list for the overwhelmingly common case (a
	// particle moving within a live tree).
	node := t.pool.Get(leafIdx)
	node.Box = fat
	node.Left = nodepool.NullNode
	node.Right = nodepool.NullNode
	node.Height = 0
	node.Parent = nodepool.NullNode

	t.insertLeaf(leafIdx)
	t.logf(nil, "reinserted particle %d (leaf %d)", id, leafIdx)

	return true, nil
}
