package ecs

// SparseSet stores one component kind. Values live densely in insertion
// order; sparse maps an entity id to its dense slot plus one, so zero means
// absent.
type SparseSet struct {
	ids    []entityID
	values []any
	sparse []uint32
}

func (s *SparseSet) slot(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	n := s.sparse[id-1]
	return int(n) - 1, n != 0
}

func (s *SparseSet) Has(id entityID) bool {
	_, ok := s.slot(id)
	return ok
}

// Get returns the stored *T for id, or nil.
func (s *SparseSet) Get(id entityID) any {
	i, ok := s.slot(id)
	if !ok {
		return nil
	}
	return s.values[i]
}

// Set stores v for id, replacing any previous value.
func (s *SparseSet) Set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	if i, ok := s.slot(id); ok {
		s.values[i] = v
		return
	}
	if need := int(id) - len(s.sparse); need > 0 {
		s.sparse = append(s.sparse, make([]uint32, need)...)
	}
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
	s.sparse[id-1] = uint32(len(s.ids))
}

// Remove deletes id by moving the last dense entry into its slot.
func (s *SparseSet) Remove(id entityID) bool {
	i, ok := s.slot(id)
	if !ok {
		return false
	}
	last := len(s.ids) - 1
	moved := s.ids[last]

	s.ids[i] = moved
	s.values[i] = s.values[last]
	s.sparse[moved-1] = uint32(i + 1)

	s.values[last] = nil
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = 0
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// snapshot copies the dense ids so callers may mutate the set while walking
// it.
func (s *SparseSet) snapshot() []entityID {
	if s.Len() == 0 {
		return nil
	}
	return append([]entityID(nil), s.ids...)
}
