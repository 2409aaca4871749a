// internal/entity/ecs.go
package entity

import (
	"go-beams/internal/component"
	"go-beams/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Configs     map[types.EntityID]*component.BeamConfig
	Instances   map[types.EntityID]*component.BeamInstance
	Collisions  map[types.EntityID]*component.CollisionState
	Travels     map[types.EntityID]*component.Travel
	Lifecycles  map[types.EntityID]*component.Lifecycle
	Renderables map[types.EntityID]*component.Renderable
	Explosions  map[types.EntityID]*component.Explosion
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Configs:     make(map[types.EntityID]*component.BeamConfig),
		Instances:   make(map[types.EntityID]*component.BeamInstance),
		Collisions:  make(map[types.EntityID]*component.CollisionState),
		Travels:     make(map[types.EntityID]*component.Travel),
		Lifecycles:  make(map[types.EntityID]*component.Lifecycle),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Explosions:  make(map[types.EntityID]*component.Explosion),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// IsBeam reports whether id is a live beam.
func (ecs *ECS) IsBeam(id types.EntityID) bool {
	_, ok := ecs.Lifecycles[id]
	return ok
}

// RemoveBeam deletes every beam component of id. Timers must already be cancelled.
func (ecs *ECS) RemoveBeam(id types.EntityID) {
	delete(ecs.Configs, id)
	delete(ecs.Instances, id)
	delete(ecs.Collisions, id)
	delete(ecs.Travels, id)
	delete(ecs.Lifecycles, id)
	delete(ecs.Renderables, id)
}
