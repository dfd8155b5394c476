package ecs

// SparseSet is a cache-friendly storage for one component kind keyed by entity
// slot id. Values are stored as `any`; the typed helpers in generics.go do the
// assertions.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

func (s *SparseSet) index(e Entity) (int, bool) {
	if s == nil {
		return 0, false
	}
	id := int(e.id())
	if id <= 0 || id-1 >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether e has a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns the value stored for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.index(e)
	if !ok {
		return nil
	}
	return s.denseValues[idx]
}

// Set inserts or replaces the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	id := int(e.id())
	if s == nil || id <= 0 {
		return
	}
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	// A stale generation in the slot is overwritten by the new owner.
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()-1] = idx

	s.denseEntities[last] = 0
	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.id()-1] = -1
	return true
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}
