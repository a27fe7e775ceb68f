package tree

import (
	"fmt"

	"github.com/lvlath-labs/aabbtree/nodepool"
)

// RemoveParticle removes the particle identified by id. Returns
// particlemap.ErrUnknownID if id is absent; the tree is left unchanged in
// that case.
func (t *Tree) RemoveParticle(id uint64) error {
	leafIdx, err := t.particles.Lookup(id)
	if err != nil {
		return fmt.Errorf("tree.RemoveParticle: %w", err)
	}

	t.unlinkLeaf(leafIdx)
	if err := t.pool.Free(leafIdx); err != nil {
		return wrapf("RemoveParticle", ErrInvariantViolated, "freeing leaf %d: %v", leafIdx, err)
	}
	if err := t.particles.Remove(id); err != nil {
		return wrapf("RemoveParticle", ErrInvariantViolated, "particle map desynced for id %d: %v", id, err)
	}
	t.logf(nil, "removed particle %d (leaf %d)", id, leafIdx)

	return nil
}

// unlinkLeaf detaches leafIdx from the tree structure, without freeing
// it from the node pool — the caller
// decides whether to free it (RemoveParticle) or reinsert it under a new
// box (Tree.updateTight's reinsertion path).
func (t *Tree) unlinkLeaf(leafIdx uint32) {
	leaf := t.pool.Get(leafIdx)
	parentIdx := leaf.Parent

	if parentIdx == nodepool.NullNode {
		t.root = nodepool.NullNode

		return
	}

	parent := t.pool.Get(parentIdx)
	var siblingIdx uint32
	if parent.Left == leafIdx {
		siblingIdx = parent.Right
	} else {
		siblingIdx = parent.Left
	}
	gpIdx := parent.Parent
	sibling := t.pool.Get(siblingIdx)

	// parentIdx was just read off the live tree structure above, so it can
	// never already be on the free list or out of range; neither of Free's
	// errors (double free, bad index) can fire here.
	if gpIdx == nodepool.NullNode {
		sibling.Parent = nodepool.NullNode
		t.root = siblingIdx
		_ = t.pool.Free(parentIdx)

		return
	}

	t.rewireParentChild(gpIdx, parentIdx, siblingIdx)
	sibling.Parent = gpIdx
	_ = t.pool.Free(parentIdx)
	t.retrace(gpIdx)
}
