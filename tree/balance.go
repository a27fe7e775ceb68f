package tree

import (
	"github.com/lvlath-labs/aabbtree/nodepool"
	"github.com/sirupsen/logrus"
)

// maxInt32 returns the larger of a and b.
func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}

	return b
}

// refit recomputes idx's box and height from its current children. idx
// must be an internal node (not a leaf).
func (t *Tree) refit(idx uint32) {
	n := t.pool.Get(idx)
	left := t.pool.Get(n.Left)
	right := t.pool.Get(n.Right)
	n.Box = left.Box.Union(right.Box)
	n.Height = 1 + maxInt32(left.Height, right.Height)
}

// balanceAt inspects node aIdx and performs an AVL-style rotation if its
// children's heights differ by more than 1, per spec: balance =
// height(right) - height(left); rotate the taller side up when
// |balance| > 1. Leaves and nodes with height < 2 cannot be unbalanced
// (their children are leaves, height 0 apart at most) and are skipped.
//
// Returns the index that now roots this subtree: aIdx itself if no
// rotation occurred (the caller must still refit it, since a child below
// may have changed), or the promoted child's index if a rotation occurred
// (already fully refitted by the rotation).
func (t *Tree) balanceAt(aIdx uint32) uint32 {
	a := t.pool.Get(aIdx)
	if a.IsLeaf() || a.Height < 2 {
		return aIdx
	}
	left := t.pool.Get(a.Left)
	right := t.pool.Get(a.Right)
	balance := right.Height - left.Height

	switch {
	case balance > 1:
		return t.promoteRightChild(aIdx)
	case balance < -1:
		return t.promoteLeftChild(aIdx)
	default:
		return aIdx
	}
}

// promoteRightChild rotates C = A.Right up above A (the "balance > 1"
// case): C.Left becomes A, and whichever of C's original
// children is taller stays attached to C while the shorter one moves down
// to become A's new right child (A's left child, B, is untouched
// throughout). Returns C's index, the new root of this subtree.
func (t *Tree) promoteRightChild(aIdx uint32) uint32 {
	a := t.pool.Get(aIdx)
	bIdx := a.Left
	cIdx := a.Right
	oldParent := a.Parent

	c := t.pool.Get(cIdx)
	fIdx := c.Left
	gIdx := c.Right

	c.Left = aIdx
	c.Parent = oldParent
	a.Parent = cIdx
	t.rewireParentChild(oldParent, aIdx, cIdx)

	bNode := t.pool.Get(bIdx)
	fNode := t.pool.Get(fIdx)
	gNode := t.pool.Get(gIdx)

	if fNode.Height > gNode.Height {
		c.Right = fIdx
		a.Right = gIdx
		gNode.Parent = aIdx
		a.Box = bNode.Box.Union(gNode.Box)
		a.Height = 1 + maxInt32(bNode.Height, gNode.Height)
		c.Box = a.Box.Union(fNode.Box)
		c.Height = 1 + maxInt32(a.Height, fNode.Height)
	} else {
		c.Right = gIdx
		a.Right = fIdx
		fNode.Parent = aIdx
		a.Box = bNode.Box.Union(fNode.Box)
		a.Height = 1 + maxInt32(bNode.Height, fNode.Height)
		c.Box = a.Box.Union(gNode.Box)
		c.Height = 1 + maxInt32(a.Height, gNode.Height)
	}

	return cIdx
}

// promoteLeftChild mirrors promoteRightChild for the "balance < -1" case:
// B = A.Left is promoted above A, B.Right becomes A, and A's right child C
// is untouched throughout.
func (t *Tree) promoteLeftChild(aIdx uint32) uint32 {
	a := t.pool.Get(aIdx)
	bIdx := a.Left
	cIdx := a.Right
	oldParent := a.Parent

	b := t.pool.Get(bIdx)
	pIdx := b.Left
	qIdx := b.Right

	b.Right = aIdx
	b.Parent = oldParent
	a.Parent = bIdx
	t.rewireParentChild(oldParent, aIdx, bIdx)

	cNode := t.pool.Get(cIdx)
	pNode := t.pool.Get(pIdx)
	qNode := t.pool.Get(qIdx)

	if pNode.Height > qNode.Height {
		b.Left = pIdx
		a.Left = qIdx
		qNode.Parent = aIdx
		a.Box = qNode.Box.Union(cNode.Box)
		a.Height = 1 + maxInt32(qNode.Height, cNode.Height)
		b.Box = pNode.Box.Union(a.Box)
		b.Height = 1 + maxInt32(pNode.Height, a.Height)
	} else {
		b.Left = qIdx
		a.Left = pIdx
		pNode.Parent = aIdx
		a.Box = pNode.Box.Union(cNode.Box)
		a.Height = 1 + maxInt32(pNode.Height, cNode.Height)
		b.Box = qNode.Box.Union(a.Box)
		b.Height = 1 + maxInt32(qNode.Height, a.Height)
	}

	return bIdx
}

// rewireParentChild points parentIdx's child slot that used to hold
// oldChild at newChild, or updates t.root when parentIdx is NullNode
// (oldChild was the root).
func (t *Tree) rewireParentChild(parentIdx, oldChild, newChild uint32) {
	if parentIdx == nodepool.NullNode {
		t.root = newChild

		return
	}
	parent := t.pool.Get(parentIdx)
	if parent.Left == oldChild {
		parent.Left = newChild
	} else {
		parent.Right = newChild
	}
}

// retrace walks from start up to the root, balancing and refitting boxes
// and heights at every ancestor.
func (t *Tree) retrace(start uint32) {
	idx := start
	for idx != nodepool.NullNode {
		newRoot := t.balanceAt(idx)
		if newRoot != idx {
			t.logf(logrus.Fields{"node": idx, "promoted": newRoot}, "rotated during retrace")
		}
		t.refit(newRoot)
		idx = t.pool.Get(newRoot).Parent
	}
}
