package nodepool

import (
	"errors"
	"fmt"
	"math"

	"github.com/lvlath-labs/aabbtree/aabb"
)

// Sentinel errors for pool operations.
var (
	// ErrDoubleFree indicates an attempt to free a node already on the free list.
	ErrDoubleFree = errors.New("nodepool: double free")

	// ErrBadIndex indicates an index outside the pool's live range.
	ErrBadIndex = errors.New("nodepool: index out of range")
)

// NullNode is the sentinel index meaning "no such node". It is the maximum
// representable uint32, never a valid live index.
const NullNode uint32 = math.MaxUint32

// Node is a fixed-size tree node record.
//
// Box is the node's bounding box (fattened, for leaves). Height is 0 for
// leaves, -1 exactly when the node sits on the free list, and
// 1+max(Height(Left), Height(Right)) for internal nodes. ParticleID is
// meaningful only for leaves. Next is used exclusively while the node is
// free, threading the free list.
type Node struct {
	Box        aabb.AABB
	Parent     uint32
	Left       uint32
	Right      uint32
	Height     int32
	ParticleID uint64
	Next       uint32
}

// IsLeaf reports whether n is a leaf (no children). Valid only for live
// (non-free) nodes.
func (n *Node) IsLeaf() bool {
	return n.Left == NullNode && n.Right == NullNode
}

// IsFree reports whether n currently sits on the free list.
func (n *Node) IsFree() bool {
	return n.Height == -1
}

func resetNode(n *Node) {
	n.Box = aabb.AABB{}
	n.Parent = NullNode
	n.Left = NullNode
	n.Right = NullNode
	n.Height = 0
	n.ParticleID = 0
	n.Next = NullNode
}

// Pool is an array-backed arena of Nodes with an embedded free list. It is
// the tree's only allocator: node identity is an index into nodes, stable
// across growth because growth only appends.
type Pool struct {
	nodes     []Node
	freeHead  uint32
	nodeCount int
	capacity  int
}

// New builds a Pool pre-sized to initialCapacity (>= 1), with every slot
// on the free list.
func New(initialCapacity int) *Pool {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	p := &Pool{
		nodes:    make([]Node, initialCapacity),
		freeHead: 0,
		capacity: initialCapacity,
	}
	for i := range p.nodes {
		p.nodes[i].Height = -1
		p.nodes[i].Parent = NullNode
		p.nodes[i].Left = NullNode
		p.nodes[i].Right = NullNode
		if i == initialCapacity-1 {
			p.nodes[i].Next = NullNode
		} else {
			p.nodes[i].Next = uint32(i + 1)
		}
	}

	return p
}

// Capacity returns the current number of slots the pool can hold without
// growing.
func (p *Pool) Capacity() int {
	return p.capacity
}

// Count returns the number of currently allocated (live) nodes.
func (p *Pool) Count() int {
	return p.nodeCount
}

// Get returns a pointer to the node at idx. The pointer is invalidated by
// any subsequent call to Allocate that triggers growth; callers needing a
// stable reference across growth should re-fetch by index.
func (p *Pool) Get(idx uint32) *Node {
	return &p.nodes[idx]
}

// Allocate pops a node off the free list, resets it and returns its index.
// If the free list is empty, capacity is doubled first (new slots are
// appended to the free list before the pop). nodeCount is incremented.
//
// Capacity growth uses uint32 indices: a single pool is bounded at
// math.MaxUint32-1 live nodes, a limit no realistic broad-phase workload
// approaches and one documented here rather than guarded against at
// runtime.
func (p *Pool) Allocate() uint32 {
	if p.freeHead == NullNode {
		p.grow()
	}
	idx := p.freeHead
	node := &p.nodes[idx]
	p.freeHead = node.Next
	resetNode(node)
	p.nodeCount++

	return idx
}

// Free pushes idx back onto the free list and marks it free (Height=-1).
// Returns ErrDoubleFree if idx is already free, ErrBadIndex if idx is out
// of range.
func (p *Pool) Free(idx uint32) error {
	if int(idx) >= len(p.nodes) {
		return fmt.Errorf("nodepool.Free: %w: idx=%d capacity=%d", ErrBadIndex, idx, len(p.nodes))
	}
	node := &p.nodes[idx]
	if node.IsFree() {
		return fmt.Errorf("nodepool.Free: %w: idx=%d", ErrDoubleFree, idx)
	}
	node.Height = -1
	node.Parent = NullNode
	node.Next = p.freeHead
	p.freeHead = idx
	p.nodeCount--

	return nil
}

// grow doubles the pool's capacity, appending every new slot to the front
// of the free list (pushed in reverse so indices are consumed in
// ascending order, matching New's initial layout).
func (p *Pool) grow() {
	oldCap := p.capacity
	newCap := oldCap * 2
	grown := make([]Node, newCap)
	copy(grown, p.nodes)
	p.nodes = grown
	p.capacity = newCap

	for i := newCap - 1; i >= oldCap; i-- {
		p.nodes[i].Height = -1
		p.nodes[i].Parent = NullNode
		p.nodes[i].Left = NullNode
		p.nodes[i].Right = NullNode
		if i == newCap-1 {
			p.nodes[i].Next = p.freeHead
		} else {
			p.nodes[i].Next = uint32(i + 1)
		}
	}
	p.freeHead = uint32(oldCap)
}

// FreeListLength walks the free list and returns its length. Used by
// Validate to check nodeCapacity - nodeCount == len(free list).
func (p *Pool) FreeListLength() int {
	n := 0
	for idx := p.freeHead; idx != NullNode; idx = p.nodes[idx].Next {
		n++
	}

	return n
}
