package ecs

import "strconv"

// Entity is a generational handle: the low 32 bits index the entity
// store, the high 32 bits carry the slot's generation so recycled
// slots invalidate stale handles. The zero value is never issued,
// which lets components store "no entity" as a plain 0 (see the
// Hand.Held and Grabbable.HeldBy owner fields).
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether the handle was issued by a world. It says
// nothing about liveness; use World.IsAlive for that.
func (e Entity) Valid() bool {
	return e > 0
}
