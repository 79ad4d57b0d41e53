package actor

import (
	"errors"
	"strconv"
)

var ErrEntityNotAlive = errors.New("actor: entity not alive")

// Entity is a stable handle into an Arena: slot id in the low bits,
// slot generation in the high bits. The zero Entity is never issued.
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
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}

// Lifecycle is the removal state of an entity.
type Lifecycle uint8

const (
	// Active entities take part in every collision phase
	Active Lifecycle = iota
	// PendingRemoval entities are still readable this tick (exit hooks fire)
	// but are never scanned, indexed or corrected
	PendingRemoval
	// Removed entities are gone; their handle is stale
	Removed
)

func (l Lifecycle) String() string {
	switch l {
	case Active:
		return "active"
	case PendingRemoval:
		return "pending-removal"
	default:
		return "removed"
	}
}
