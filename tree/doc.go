// Package tree implements the dynamic AABB tree: a self-balancing binary
// tree spatial index over fat bounding boxes, supporting incremental
// insertion, removal, update and range/overlap queries.
//
// # Structure
//
// The tree is backed by a nodepool.Pool arena: nodes form a binary tree by
// index, not by pointer, so pool growth never invalidates a reference held
// as an index. A particlemap.Map tracks which leaf index currently holds
// each caller-supplied particle ID.
//
// # Insertion
//
// New leaves descend from the root guided by a surface-area-heuristic
// (SAH) cost: at each internal node the cheaper of "become this node's new
// sibling" or "descend into left/right child" is chosen, then a new
// internal parent is spliced in above the chosen sibling. The walk back to
// the root (retrace) rebalances via AVL-style rotations and refits bounding
// boxes and heights at every ancestor.
//
// # Fat AABBs
//
// Every leaf stores its tight box inflated by a configurable skin
// thickness ratio. Update is a structural no-op whenever a particle's
// fattened envelope still contains its new tight box — the central
// optimization that keeps small movements cheap.
//
// # Periodic boxes
//
// When one or more axes are periodic, Query replicates the query box
// across boundary images (see package periodic) rather than storing ghost
// particles, deduplicating candidate IDs across images.
//
// # Concurrency
//
// The tree is single-threaded-mutable: concurrent mutation is undefined
// behavior and is the caller's responsibility to serialize. Concurrent
// reads of a quiescent (not being mutated) tree are safe.
package tree
