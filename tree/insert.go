package tree

import (
	"fmt"

	"github.com/lvlath-labs/aabbtree/aabb"
	"github.com/lvlath-labs/aabbtree/nodepool"
)

// InsertParticle inserts a new particle with the given caller-supplied id,
// as a hypercube of the given radius centred on centre. Returns
// particlemap.ErrDuplicateID if id is already present, aabb.ErrBadRadius if
// radius <= 0, aabb.ErrDimensionMismatch if len(centre) != t.Dimension(),
// or ErrParticleOutsideBox if the resulting box falls outside a configured
// non-periodic box axis.
func (t *Tree) InsertParticle(id uint64, centre []float64, radius float64) error {
	if err := t.checkDimension("InsertParticle", centre); err != nil {
		return err
	}
	tight, err := aabb.NewFromCentre(centre, radius)
	if err != nil {
		return fmt.Errorf("tree.InsertParticle: %w", err)
	}

	return t.insertTight(id, tight)
}

// InsertParticleAABB inserts a new particle with an explicit tight box.
// Returns particlemap.ErrDuplicateID if id is already present,
// aabb.ErrInvalidAABB if lower > upper on some axis, aabb.ErrDimensionMismatch
// on a length mismatch, or ErrParticleOutsideBox if the box falls outside a
// configured non-periodic box axis.
func (t *Tree) InsertParticleAABB(id uint64, lower, upper []float64) error {
	if err := t.checkDimension("InsertParticleAABB", lower, upper); err != nil {
		return err
	}
	tight, err := aabb.New(lower, upper)
	if err != nil {
		return fmt.Errorf("tree.InsertParticleAABB: %w", err)
	}

	return t.insertTight(id, tight)
}

// insertTight validates tight against the tree's box, fattens it, allocates
// a leaf node, registers it in the particle map and splices it into the
// tree structure. The node allocated for a rejected insert (duplicate ID)
// is freed before returning, so a failed insert never leaks a pool slot.
func (t *Tree) insertTight(id uint64, tight aabb.AABB) error {
	clamped, err := t.clampToBoxOrError("InsertParticle", tight)
	if err != nil {
		return err
	}
	fat := clamped.Fattened(t.cfg.skinThickness)

	leafIdx := t.pool.Allocate()
	leaf := t.pool.Get(leafIdx)
	leaf.Box = fat
	leaf.ParticleID = id

	if err := t.particles.Insert(id, leafIdx); err != nil {
		_ = t.pool.Free(leafIdx)

		return err
	}

	t.insertLeaf(leafIdx)
	t.logf(nil, "inserted particle %d at leaf %d", id, leafIdx)

	return nil
}

// insertLeaf splices an already-allocated, already-boxed leaf node into
// the tree: if the tree is empty, the leaf becomes the root; otherwise it
// descends to find the cheapest sibling by SAH cost, splices in a new
// internal parent, and retraces from there to the root.
func (t *Tree) insertLeaf(leafIdx uint32) {
	if t.root == nodepool.NullNode {
		t.root = leafIdx
		t.pool.Get(leafIdx).Parent = nodepool.NullNode

		return
	}

	leafBox := t.pool.Get(leafIdx).Box
	siblingIdx := t.chooseSibling(leafBox)
	newParentIdx := t.spliceLeaf(siblingIdx, leafIdx, leafBox)
	t.retrace(newParentIdx)
}

// chooseSibling descends from the root, at each internal node picking the
// branch that minimizes the surface-area-heuristic cost of inserting a
// leaf with box leafBox:
//
//	combined          = S(n.box ∪ leafBox)
//	cost              = 2 * combined                     (cost of a new parent here)
//	inheritanceCost    = 2 * (combined - S(n.box))
//	costChild          = S(leafBox ∪ child.box) + inheritanceCost                      if child is a leaf
//	                   = (S(leafBox ∪ child.box) - S(child.box)) + inheritanceCost      otherwise
//
// Descent stops (n becomes the sibling) once cost is lower than both
// children's costs; otherwise it continues into the cheaper child,
// breaking ties toward the left child.
func (t *Tree) chooseSibling(leafBox aabb.AABB) uint32 {
	idx := t.root
	for {
		n := t.pool.Get(idx)
		if n.IsLeaf() {
			return idx
		}

		leftIdx, rightIdx := n.Left, n.Right
		left := t.pool.Get(leftIdx)
		right := t.pool.Get(rightIdx)

		nMeasure := n.Box.SurfaceMeasure()
		combined := n.Box.Union(leafBox).SurfaceMeasure()
		cost := 2 * combined
		inheritanceCost := 2 * (combined - nMeasure)

		costLeft := childCost(leafBox, left, inheritanceCost)
		costRight := childCost(leafBox, right, inheritanceCost)

		if cost < costLeft && cost < costRight {
			return idx
		}
		if costLeft <= costRight {
			idx = leftIdx
		} else {
			idx = rightIdx
		}
	}
}

func childCost(leafBox aabb.AABB, child *nodepool.Node, inheritanceCost float64) float64 {
	unionMeasure := leafBox.Union(child.Box).SurfaceMeasure()
	if child.IsLeaf() {
		return unionMeasure + inheritanceCost
	}

	return (unionMeasure - child.Box.SurfaceMeasure()) + inheritanceCost
}

// spliceLeaf allocates a new internal node p, sets p.box = leafBox ∪
// sibling.box, p.height = sibling.height+1, hangs sibling and leaf as its
// two children, and rewires sibling's old parent (or the tree root) to
// point at p instead. Returns p's index, the point retrace should start
// from.
func (t *Tree) spliceLeaf(siblingIdx, leafIdx uint32, leafBox aabb.AABB) uint32 {
	sibling := t.pool.Get(siblingIdx)
	oldParent := sibling.Parent
	siblingBox := sibling.Box
	siblingHeight := sibling.Height

	newParentIdx := t.pool.Allocate()

	p := t.pool.Get(newParentIdx)
	p.Box = leafBox.Union(siblingBox)
	p.Height = siblingHeight + 1
	p.Parent = oldParent
	p.Left = siblingIdx
	p.Right = leafIdx

	t.pool.Get(siblingIdx).Parent = newParentIdx
	t.pool.Get(leafIdx).Parent = newParentIdx

	t.rewireParentChild(oldParent, siblingIdx, newParentIdx)

	return newParentIdx
}
