// Package aabbtree implements a dynamic axis-aligned bounding box tree: a
// self-balancing binary spatial index over moving particles, built for
// broad-phase collision detection and proximity queries in simulation and
// physics workloads.
//
// The tree stores each particle as a leaf holding a fattened ("fat")
// AABB — the particle's tight bounding box inflated by a configurable
// skin thickness — so small movements don't force a structural update.
// Insertion descends the tree choosing, at each internal node, whichever
// child minimizes the surface-area heuristic (SAH) cost of attaching the
// new leaf there; after any insertion, removal, or forced reinsertion, an
// AVL-style retrace rebalances every ancestor whose children's heights
// differ by more than one.
//
// Everything is organized under focused subpackages:
//
//	aabb/        — the AABB value type: union, overlap, containment, fattening
//	nodepool/    — the arena allocator tree nodes live in (index-based, not pointers)
//	particlemap/ — caller ID to leaf-node-index bookkeeping
//	periodic/    — minimum-image reduction and periodic-boundary query image splitting
//	tree/        — the Tree itself: insert, remove, update, query, validate
//	treemetrics/ — an optional Prometheus collector over a live Tree
//	treeconfig/  — Viper-backed configuration loading for the CLI
//	cmd/treectl/ — a Cobra CLI driving the library end to end
//
// A minimal example:
//
//	t, err := tree.New(2, tree.WithBoxSize([]float64{100, 100}))
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = t.InsertParticle(1, []float64{10, 10}, 1)
//	_ = t.InsertParticle(2, []float64{10.5, 10}, 1)
//	neighbors, _ := t.Query(1) // []uint64{2}
package aabbtree
