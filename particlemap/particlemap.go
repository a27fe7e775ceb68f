package particlemap

import (
	"errors"
	"fmt"
)

// Sentinel errors for Map operations.
var (
	// ErrDuplicateID indicates Insert was called with an ID already present.
	ErrDuplicateID = errors.New("particlemap: duplicate id")

	// ErrUnknownID indicates Remove or Lookup referenced an absent ID.
	ErrUnknownID = errors.New("particlemap: unknown id")
)

// Map is a mapping from external particle ID to leaf node index.
type Map struct {
	byID map[uint64]uint32
}

// New returns an empty Map.
func New() *Map {
	return &Map{byID: make(map[uint64]uint32)}
}

// Insert associates id with leafIdx. Returns ErrDuplicateID if id is
// already present; the map is left unchanged on error.
func (m *Map) Insert(id uint64, leafIdx uint32) error {
	if _, exists := m.byID[id]; exists {
		return fmt.Errorf("particlemap.Insert: %w: id=%d", ErrDuplicateID, id)
	}
	m.byID[id] = leafIdx

	return nil
}

// Remove deletes id from the map. Returns ErrUnknownID if id is absent.
func (m *Map) Remove(id uint64) error {
	if _, exists := m.byID[id]; !exists {
		return fmt.Errorf("particlemap.Remove: %w: id=%d", ErrUnknownID, id)
	}
	delete(m.byID, id)

	return nil
}

// Lookup returns the leaf index for id. Returns ErrUnknownID if id is absent.
func (m *Map) Lookup(id uint64) (uint32, error) {
	idx, exists := m.byID[id]
	if !exists {
		return 0, fmt.Errorf("particlemap.Lookup: %w: id=%d", ErrUnknownID, id)
	}

	return idx, nil
}

// Has reports whether id is currently present.
func (m *Map) Has(id uint64) bool {
	_, exists := m.byID[id]

	return exists
}

// Set overwrites the leaf index stored for an id, without the duplicate
// check Insert performs.
func (m *Map) Set(id uint64, leafIdx uint32) {
	m.byID[id] = leafIdx
}

// Len returns the number of particles currently tracked.
func (m *Map) Len() int {
	return len(m.byID)
}

// Clear empties the map.
func (m *Map) Clear() {
	m.byID = make(map[uint64]uint32)
}

// IDs returns a snapshot slice of all tracked particle IDs. Order is
// unspecified.
func (m *Map) IDs() []uint64 {
	ids := make([]uint64, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}

	return ids
}
