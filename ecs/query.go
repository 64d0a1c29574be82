package ecs

import "reflect"

// Each iterates every (Entity, *T) pair in dense order — insertion order
// modulo swap-remove, matching spec.md §4.3 invariant (iii). The pointer
// is only valid for the duration of one call to fn.
func Each[T any](w *World, fn func(Entity, *T)) {
	s := storageOf[T](w, false)
	if s == nil {
		return
	}
	indices := s.DenseIndices()
	for i := range indices {
		gen, ok := entityGeneration(w, indices[i])
		if !ok {
			continue
		}
		fn(makeEntity(indices[i], gen), &s.dense[i])
	}
}

// All returns every live entity that currently has a T component, in
// dense order. Prefer Each for hot paths; All is convenient for tests and
// snapshotting.
func All[T any](w *World) []Entity {
	s := storageOf[T](w, false)
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, s.Len())
	for _, idx := range s.DenseIndices() {
		if gen, ok := entityGeneration(w, idx); ok {
			out = append(out, makeEntity(idx, gen))
		}
	}
	return out
}

func entityGeneration(w *World, idx uint32) (uint32, bool) {
	if idx == 0 || int(idx) > len(w.entities.gen) {
		return 0, false
	}
	if !w.entities.live[idx-1] {
		return 0, false
	}
	return w.entities.gen[idx-1], true
}

func assertDistinctTypes(types ...reflect.Type) {
	seen := make(map[reflect.Type]bool, len(types))
	for _, t := range types {
		if seen[t] {
			panic("ecs: multi-component query requested the same component type twice — double mutable borrow of one storage")
		}
		seen[t] = true
	}
}

// Each2 iterates entities carrying both A and B. Per spec.md §4.3, the
// smaller of the two dense sets drives the outer loop and the larger is
// probed with Has, giving O(min(|A|,|B|)) cost. Requesting A == B panics,
// the required dynamic double-mutable-borrow guard from spec.md §9.
func Each2[A, B any](w *World, fn func(Entity, *A, *B)) {
	assertDistinctTypes(
		reflect.TypeOf((*A)(nil)).Elem(),
		reflect.TypeOf((*B)(nil)).Elem(),
	)
	sa := storageOf[A](w, false)
	sb := storageOf[B](w, false)
	if sa == nil || sb == nil {
		return
	}

	if sa.Len() <= sb.Len() {
		for i, idx := range sa.DenseIndices() {
			if !sb.Has(idx) {
				continue
			}
			gen, ok := entityGeneration(w, idx)
			if !ok {
				continue
			}
			fn(makeEntity(idx, gen), &sa.dense[i], sb.GetPtr(idx))
		}
		return
	}
	for i, idx := range sb.DenseIndices() {
		if !sa.Has(idx) {
			continue
		}
		gen, ok := entityGeneration(w, idx)
		if !ok {
			continue
		}
		fn(makeEntity(idx, gen), sa.GetPtr(idx), &sb.dense[i])
	}
}

// Each3 iterates entities carrying A, B, and C, driven by whichever of the
// three dense sets is smallest.
func Each3[A, B, C any](w *World, fn func(Entity, *A, *B, *C)) {
	assertDistinctTypes(
		reflect.TypeOf((*A)(nil)).Elem(),
		reflect.TypeOf((*B)(nil)).Elem(),
		reflect.TypeOf((*C)(nil)).Elem(),
	)
	sa := storageOf[A](w, false)
	sb := storageOf[B](w, false)
	sc := storageOf[C](w, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}

	switch {
	case sa.Len() <= sb.Len() && sa.Len() <= sc.Len():
		for i, idx := range sa.DenseIndices() {
			if !sb.Has(idx) || !sc.Has(idx) {
				continue
			}
			gen, ok := entityGeneration(w, idx)
			if !ok {
				continue
			}
			fn(makeEntity(idx, gen), &sa.dense[i], sb.GetPtr(idx), sc.GetPtr(idx))
		}
	case sb.Len() <= sa.Len() && sb.Len() <= sc.Len():
		for i, idx := range sb.DenseIndices() {
			if !sa.Has(idx) || !sc.Has(idx) {
				continue
			}
			gen, ok := entityGeneration(w, idx)
			if !ok {
				continue
			}
			fn(makeEntity(idx, gen), sa.GetPtr(idx), &sb.dense[i], sc.GetPtr(idx))
		}
	default:
		for i, idx := range sc.DenseIndices() {
			if !sa.Has(idx) || !sb.Has(idx) {
				continue
			}
			gen, ok := entityGeneration(w, idx)
			if !ok {
				continue
			}
			fn(makeEntity(idx, gen), sa.GetPtr(idx), sb.GetPtr(idx), &sc.dense[i])
		}
	}
}
