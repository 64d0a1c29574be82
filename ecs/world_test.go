package ecs

import "testing"

func TestEntityLifecycleGenerational(t *testing.T) {
	w := NewWorld()
	e0 := w.Spawn()
	if !w.Alive(e0) {
		t.Fatalf("freshly spawned entity should be alive")
	}
	if !w.Despawn(e0) {
		t.Fatalf("despawn of alive entity should succeed")
	}
	if w.Alive(e0) {
		t.Fatalf("entity should not be alive after despawn")
	}

	e1 := w.Spawn()
	if e1.Index() != e0.Index() {
		t.Fatalf("expected slot reuse: e0.Index()=%d e1.Index()=%d", e0.Index(), e1.Index())
	}
	if e1.Generation() <= e0.Generation() {
		t.Fatalf("expected strictly greater generation on reuse: e0=%d e1=%d", e0.Generation(), e1.Generation())
	}
	if w.Alive(e0) {
		t.Fatalf("stale handle e0 must remain not-alive even after slot reuse")
	}
	if !w.Alive(e1) {
		t.Fatalf("new handle e1 should be alive")
	}
}

// Scenario B from spec.md §8: insert components for three entities, remove
// the middle one, and check the sparse-set invariants directly.
func TestSparseSetRemoveScenarioB(t *testing.T) {
	w := NewWorld()
	e0 := w.Spawn()
	e1 := w.Spawn()
	e2 := w.Spawn()

	Insert(w, e0, 10)
	Insert(w, e1, 20)
	Insert(w, e2, 30)

	Remove[int](w, e1)

	got := map[Entity]int{}
	Each(w, func(e Entity, v *int) {
		got[e] = *v
	})
	want := map[Entity]int{e0: 10, e2: 30}
	if len(got) != len(want) || got[e0] != 10 || got[e2] != 30 {
		t.Fatalf("iteration result = %v, want %v", got, want)
	}

	s := storageOf[int](w, false)
	if s.Len() != 2 {
		t.Fatalf("dense len = %d, want 2", s.Len())
	}
	if s.sparse[e0.Index()-1] != 0 {
		t.Fatalf("sparse[e0] = %d, want 0", s.sparse[e0.Index()-1])
	}
	if s.sparse[e2.Index()-1] != 1 {
		t.Fatalf("sparse[e2] = %d, want 1 (swapped into e1's old slot)", s.sparse[e2.Index()-1])
	}
	if s.sparse[e1.Index()-1] != -1 {
		t.Fatalf("sparse[e1] = %d, want -1 (removed)", s.sparse[e1.Index()-1])
	}
}

func TestGetReturnsLastInsertedUntilRemoved(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	if _, ok := Get[string](w, e); ok {
		t.Fatalf("expected no component before insert")
	}
	Insert(w, e, "a")
	Insert(w, e, "b")
	v, ok := Get[string](w, e)
	if !ok || v != "b" {
		t.Fatalf("Get = (%q, %v), want (\"b\", true)", v, ok)
	}
	Remove[string](w, e)
	if _, ok := Get[string](w, e); ok {
		t.Fatalf("expected no component after remove")
	}
}

func TestStaleHandleReturnsNotPresentSilently(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	Insert(w, e, 42)
	w.Despawn(e)

	if _, ok := Get[int](w, e); ok {
		t.Fatalf("stale handle should silently report not-present")
	}
	if w.Alive(e) {
		t.Fatalf("stale handle should not be alive")
	}
}

func TestDespawnPurgesAllComponentTypes(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	Insert(w, e, 1)
	Insert(w, e, "tag")
	w.Despawn(e)

	if _, ok := Get[int](w, e); ok {
		t.Fatalf("int component should be purged on despawn")
	}
	if _, ok := Get[string](w, e); ok {
		t.Fatalf("string component should be purged on despawn")
	}
}

type posA struct{ X int }
type posB struct{ Y int }

func TestEach2JoinsSmallerSetFirst(t *testing.T) {
	w := NewWorld()
	e0 := w.Spawn()
	e1 := w.Spawn()
	e2 := w.Spawn()

	Insert(w, e0, posA{X: 1})
	Insert(w, e1, posA{X: 2})
	Insert(w, e2, posA{X: 3})
	Insert(w, e1, posB{Y: 20})

	seen := map[Entity]bool{}
	Each2(w, func(e Entity, a *posA, b *posB) {
		seen[e] = true
		if e != e1 {
			t.Fatalf("only e1 has both components, got %v", e)
		}
		if a.X != 2 || b.Y != 20 {
			t.Fatalf("unexpected values a=%v b=%v", a, b)
		}
	})
	if len(seen) != 1 {
		t.Fatalf("expected exactly one joined entity, got %d", len(seen))
	}
}

func TestEach2PanicsOnSameComponentType(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	Insert(w, e, posA{X: 1})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on double-mutable-borrow of same storage")
		}
	}()
	Each2(w, func(e Entity, a *posA, b *posA) {})
}

func TestResourceTable(t *testing.T) {
	w := NewWorld()
	if HasResource[int](w) {
		t.Fatalf("resource should not exist yet")
	}
	SetResource(w, 7)
	v, ok := Resource[int](w)
	if !ok || v != 7 {
		t.Fatalf("Resource = (%d, %v), want (7, true)", v, ok)
	}
	RemoveResource[int](w)
	if HasResource[int](w) {
		t.Fatalf("resource should be gone after RemoveResource")
	}
}

func TestWorldRunSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var order []int
	w.AddSystem(orderSystem{id: 1, order: &order})
	w.AddSystem(orderSystem{id: 2, order: &order})
	w.RunSystems()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected systems to run in registration order, got %v", order)
	}
}

type orderSystem struct {
	id    int
	order *[]int
}

func (s orderSystem) Update(w *World) { *s.order = append(*s.order, s.id) }
