// Package particlemap maps caller-supplied opaque particle IDs (uint64) to
// the tree leaf node index holding them.
//
// The ID space is caller-owned and opaque: the tree never inspects or
// generates IDs itself. Insert of an already-present ID and lookup/removal
// of an absent ID are both errors — see ErrDuplicateID and ErrUnknownID.
package particlemap
