package ecs

// entityStore tracks per-slot generation and the free-index list. Slot
// indices start at 1 so index 0 always disambiguates the sentinel Entity.
//
// Grounded on the teacher's ecs/storage.go entityStore, generalized to
// return packed Entity values instead of a two-field struct.
type entityStore struct {
	gen  []uint32 // gen[i-1] is the current generation of slot i
	live []bool   // live[i-1] reports whether slot i is currently alive
	free []uint32
}

// spawn reuses a freed slot if one exists (its generation was already
// bumped at despawn time), otherwise allocates a new slot.
func (s *entityStore) spawn() Entity {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.live = append(s.live, false)
		idx = uint32(len(s.gen))
	}
	s.live[idx-1] = true
	return makeEntity(idx, s.gen[idx-1])
}

// despawn marks e's slot dead and bumps its generation, invalidating every
// existing handle to it. Returns false if e was already stale.
func (s *entityStore) despawn(e Entity) bool {
	if !s.alive(e) {
		return false
	}
	idx := e.Index()
	s.live[idx-1] = false
	s.gen[idx-1]++
	s.free = append(s.free, idx)
	return true
}

func (s *entityStore) alive(e Entity) bool {
	idx := e.Index()
	if idx == 0 || int(idx) > len(s.gen) {
		return false
	}
	return s.live[idx-1] && s.gen[idx-1] == e.Generation()
}

// entities returns every currently alive entity, in slot order. Used by
// iteration paths that need the full population rather than a single
// component's dense set (e.g. tests, debug tooling).
func (s *entityStore) entities() []Entity {
	out := make([]Entity, 0, len(s.gen))
	for i, alive := range s.live {
		if alive {
			out = append(out, makeEntity(uint32(i+1), s.gen[i]))
		}
	}
	return out
}

// erasedStorage lets World purge an entity from every component storage on
// despawn without knowing each storage's element type.
type erasedStorage interface {
	removeIndex(idx uint32)
}

// ComponentStorage is a sparse set mapping entity slot index to a value of
// type T, materialized lazily by World the first time a T is inserted.
//
// Grounded on original_source/crates/engine_ecs/src/lib.rs SparseSet<T> and
// the teacher's ecs/sparse_set.go, unified into one generic implementation.
type ComponentStorage[T any] struct {
	sparse   []int32 // sparse[idx-1] -> dense index, or -1
	dense    []T
	entities []uint32 // entities[d] -> slot index backing dense[d]
}

func newComponentStorage[T any]() *ComponentStorage[T] {
	return &ComponentStorage[T]{}
}

func (s *ComponentStorage[T]) Has(idx uint32) bool {
	if idx == 0 || int(idx) > len(s.sparse) {
		return false
	}
	d := s.sparse[idx-1]
	return d >= 0 && int(d) < len(s.entities) && s.entities[d] == idx
}

// Get returns the stored value and true, or the zero value and false.
func (s *ComponentStorage[T]) Get(idx uint32) (T, bool) {
	var zero T
	if !s.Has(idx) {
		return zero, false
	}
	return s.dense[s.sparse[idx-1]], true
}

// GetPtr returns a pointer into the dense array for in-place mutation, or
// nil. The pointer is invalidated by any Insert/Remove on this storage.
func (s *ComponentStorage[T]) GetPtr(idx uint32) *T {
	if !s.Has(idx) {
		return nil
	}
	return &s.dense[s.sparse[idx-1]]
}

// Insert adds or replaces the component for idx, returning the previous
// value if one was present.
func (s *ComponentStorage[T]) Insert(idx uint32, value T) (T, bool) {
	if int(idx) > len(s.sparse) {
		grown := make([]int32, idx)
		copy(grown, s.sparse)
		for i := len(s.sparse); i < len(grown); i++ {
			grown[i] = -1
		}
		s.sparse = grown
	}
	if s.Has(idx) {
		d := s.sparse[idx-1]
		prev := s.dense[d]
		s.dense[d] = value
		return prev, true
	}
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, idx)
	s.sparse[idx-1] = int32(len(s.dense) - 1)
	var zero T
	return zero, false
}

// Remove swap-removes the component for idx if present, patching the
// sparse entry of whichever element got swapped into its place.
func (s *ComponentStorage[T]) Remove(idx uint32) {
	s.removeIndex(idx)
}

func (s *ComponentStorage[T]) removeIndex(idx uint32) {
	if !s.Has(idx) {
		return
	}
	d := s.sparse[idx-1]
	last := len(s.dense) - 1
	if int(d) != last {
		s.dense[d] = s.dense[last]
		s.entities[d] = s.entities[last]
		s.sparse[s.entities[d]-1] = d
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[idx-1] = -1
}

// Len returns the number of live components in the storage.
func (s *ComponentStorage[T]) Len() int { return len(s.dense) }

// DenseIndices returns the backing entity slot indices in dense order.
func (s *ComponentStorage[T]) DenseIndices() []uint32 { return s.entities }

// DenseValues returns the packed component values in dense order, aligned
// with DenseIndices.
func (s *ComponentStorage[T]) DenseValues() []T { return s.dense }
