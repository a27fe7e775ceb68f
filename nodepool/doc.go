// Package nodepool implements the tree's sole node allocator: a growable
// array of Node records with an intrusive free list threaded through each
// free node's Next field.
//
// Node identity is an index into Pool's backing slice, never a pointer, so
// growing the pool (which reallocates the slice) never invalidates a
// reference held elsewhere as an index. NullNode is the sentinel index
// ("no such node"): the maximum representable uint32. Hot paths compare
// Parent/Left/Right/Next against NullNode directly rather than through an
// optional wrapper, a plain fixed-width sentinel rather than an Option type.
//
// Capacity deliberately caps out at 2^32-2 live nodes; see Allocate's doc
// comment. Free marks a node free (Height=-1, Parent=NullNode) and links it
// into the free list through Next; Allocate resets every field of the
// node it hands out (Height=0, Parent/Left/Right/Next = NullNode, empty
// Box, ParticleID 0) so stale data from a node's previous role (leaf or
// internal) never leaks across reuse.
package nodepool
