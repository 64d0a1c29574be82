package ecs

import "strconv"

// Entity is a 64-bit opaque handle packing a 32-bit index and a 32-bit
// generation. The zero value is the reserved invalid sentinel.
//
// Grounded on ecs/entity.go of the teacher repo (index/generation packed
// into a uint64) and original_source/crates/engine_ecs/src/lib.rs (the
// Entity{index, generation} pair this packs).
type Entity uint64

const indexBits = 32

func makeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<indexBits | uint64(index))
}

// Index returns the slot index this entity refers to.
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the generation this handle was minted with.
func (e Entity) Generation() uint32 { return uint32(e >> indexBits) }

// Valid reports whether e is anything other than the reserved sentinel.
// It does not check liveness against a World; use World.Alive for that.
func (e Entity) Valid() bool { return e != 0 }

func (e Entity) String() string { return strconv.FormatUint(uint64(e), 10) }
