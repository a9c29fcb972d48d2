// Package entity tracks the transient simulated objects of a game session
// (bullets, targets, balls) and their spatial state.
package entity

import (
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// Handle identifies a live entity. Handles are never reused within a registry.
type Handle uint64

// Kind groups entities that share update and collision rules.
type Kind string

// Entity is the spatial state of one simulated object.
type Entity struct {
	Handle      Handle
	Kind        Kind
	Pos         vmath.Vec3
	Vel         vmath.Vec3
	Origin      vmath.Vec3 // position at spawn
	Prev        vmath.Vec3 // position before the last step, for swept collision
	Radius      float64
	HalfExtents vmath.Vec3
	Age         float64 // seconds alive
	Hit         bool    // set once the entity registered a hit or score
}

// Box returns the entity's bounding box at its current position.
func (e *Entity) Box() core.Box {
	return core.BoxAround(e.Pos, e.HalfExtents)
}

// Path returns the segment covered during the last step.
func (e *Entity) Path() (from, to vmath.Vec3) {
	return e.Prev, e.Pos
}

// Place moves the entity without sweeping through the space in between.
func (e *Entity) Place(pos vmath.Vec3) {
	e.Pos = pos
	e.Prev = pos
}

// Registry owns the live entities of one game instance.
type Registry struct {
	next   Handle
	byID   map[Handle]*Entity
	byKind map[Kind][]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[Handle]*Entity),
		byKind: make(map[Kind][]Handle),
	}
}

// Spawn creates a new entity and returns its handle.
func (r *Registry) Spawn(kind Kind, pos, vel vmath.Vec3) Handle {
	r.next++
	h := r.next
	r.byID[h] = &Entity{
		Handle: h,
		Kind:   kind,
		Pos:    pos,
		Vel:    vel,
		Origin: pos,
		Prev:   pos,
	}
	r.byKind[kind] = append(r.byKind[kind], h)
	return h
}

// SpawnWith spawns an entity and lets the caller set its shape before it is visible
// to iteration.
func (r *Registry) SpawnWith(kind Kind, pos, vel vmath.Vec3, init func(e *Entity)) Handle {
	h := r.Spawn(kind, pos, vel)
	if init != nil {
		init(r.byID[h])
	}
	return h
}

// Despawn removes an entity. Unknown or already removed handles are ignored.
func (r *Registry) Despawn(h Handle) {
	e, ok := r.byID[h]
	if !ok {
		return
	}
	delete(r.byID, h)

	handles := r.byKind[e.Kind]
	for i, id := range handles {
		if id == h {
			r.byKind[e.Kind] = append(handles[:i:i], handles[i+1:]...)
			break
		}
	}
}

// Get returns the live entity for h.
func (r *Registry) Get(h Handle) (*Entity, bool) {
	e, ok := r.byID[h]
	return e, ok
}

// Alive reports whether h refers to a live entity.
func (r *Registry) Alive(h Handle) bool {
	_, ok := r.byID[h]
	return ok
}

// ForEach calls fn for every live entity of the given kind in spawn order.
// fn may despawn any entity, including the one it was handed; entities
// despawned before their turn are skipped and entities spawned during
// iteration are not visited.
func (r *Registry) ForEach(kind Kind, fn func(e *Entity)) {
	snapshot := append([]Handle(nil), r.byKind[kind]...)
	for _, h := range snapshot {
		if e, ok := r.byID[h]; ok {
			fn(e)
		}
	}
}

// Handles returns the live handles of a kind in spawn order.
func (r *Registry) Handles(kind Kind) []Handle {
	return append([]Handle(nil), r.byKind[kind]...)
}

// Len returns the number of live entities of a kind.
func (r *Registry) Len(kind Kind) int {
	return len(r.byKind[kind])
}

// Total returns the number of live entities of every kind.
func (r *Registry) Total() int {
	return len(r.byID)
}

// Reset removes every entity. Handle numbering continues so stale handles stay dead.
func (r *Registry) Reset() {
	r.byID = make(map[Handle]*Entity)
	r.byKind = make(map[Kind][]Handle)
}
