// internal/system/lifecycle.go
package system

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/entity"
	"go-beams/internal/event"
	"go-beams/internal/timer"
	"go-beams/internal/types"
	"time"

	"go.uber.org/zap"
)

// LifecycleSystem runs every beam through
// Traveling → Collided → Cooldown → reset → Traveling.
type LifecycleSystem struct {
	ecs        *entity.ECS
	clock      *timer.Scheduler
	dispatcher *event.Dispatcher
	travel     *TravelSystem
	prober     *CollisionProber
	explosions *ExplosionSystem
	cooldown   time.Duration
	logger     *zap.Logger
}

func NewLifecycleSystem(
	ecs *entity.ECS,
	clock *timer.Scheduler,
	dispatcher *event.Dispatcher,
	travel *TravelSystem,
	prober *CollisionProber,
	explosions *ExplosionSystem,
	cooldown time.Duration,
	logger *zap.Logger,
) *LifecycleSystem {
	s := &LifecycleSystem{
		ecs:        ecs,
		clock:      clock,
		dispatcher: dispatcher,
		travel:     travel,
		prober:     prober,
		explosions: explosions,
		cooldown:   cooldown,
		logger:     logger,
	}
	event.Handle(dispatcher, event.BeamCollided, func(p event.CollisionPayload) {
		s.collide(p.ID, p.Coordinates)
	})
	return s
}

// Spawn creates a beam entity for cfg and starts its first cycle.
func (s *LifecycleSystem) Spawn(cfg component.BeamConfig) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Configs[id] = &cfg
	s.ecs.Instances[id] = &component.BeamInstance{}
	s.ecs.Collisions[id] = &component.CollisionState{}
	s.ecs.Lifecycles[id] = &component.Lifecycle{Phase: component.Traveling}
	s.ecs.Renderables[id] = &component.Renderable{
		HeadColor: config.BeamHeadColor,
		TailColor: config.BeamTailColor,
		Width:     config.BeamWidth,
	}

	s.travel.Start(id)
	s.prober.Start(id)

	s.dispatcher.Dispatch(event.Event{
		Type: event.BeamMounted,
		Data: event.BeamPayload{ID: id, At: s.clock.Now()},
	})
	return id
}

func (s *LifecycleSystem) collide(id types.EntityID, at component.Coordinates) {
	lc, ok := s.ecs.Lifecycles[id]
	if !ok || lc.Phase != component.Traveling {
		return
	}
	lc.Phase = component.Collided
	lc.CollidedAt = s.clock.Now()
	s.travel.Pause(id)
	lc.Explosion, _ = s.explosions.Emit(id, at)

	lc.Phase = component.Cooldown
	lc.Cooldown.Cancel()
	lc.Cooldown = s.clock.After(s.cooldown, func() { s.reset(id) })
}

// reset clears the collision, releases the latch and recreates the beam's
// animation with a new cycle key.
func (s *LifecycleSystem) reset(id types.EntityID) {
	lc, ok := s.ecs.Lifecycles[id]
	if !ok {
		return
	}
	collidedAt := lc.CollidedAt
	lc.Cooldown = nil
	lc.Explosion = 0

	s.ecs.Collisions[id].Reset()
	inst := s.ecs.Instances[id]
	inst.Latched = false
	inst.CycleKey++

	lc.Phase = component.Traveling
	s.travel.Start(id)
	s.prober.Start(id)

	now := s.clock.Now()
	s.logger.Debug("beam reset",
		zap.Uint64("beam", uint64(id)),
		zap.Int("cycle", inst.CycleKey),
		zap.Duration("at", now),
		zap.Duration("cooled", now-collidedAt))

	s.dispatcher.Dispatch(event.Event{
		Type: event.BeamReset,
		Data: event.BeamPayload{ID: id, Cycle: inst.CycleKey, At: now},
	})
}

// Teardown cancels every timer owned by id, disposes of its burst and
// removes the beam. Nothing scheduled for id runs afterwards.
func (s *LifecycleSystem) Teardown(id types.EntityID) {
	lc, ok := s.ecs.Lifecycles[id]
	if !ok {
		return
	}
	s.prober.Stop(id)
	lc.Cooldown.Cancel()
	lc.Cooldown = nil
	s.explosions.DisposeOwned(id)

	cycle := s.ecs.Instances[id].CycleKey
	s.ecs.RemoveBeam(id)

	s.dispatcher.Dispatch(event.Event{
		Type: event.BeamTornDown,
		Data: event.BeamPayload{ID: id, Cycle: cycle, At: s.clock.Now()},
	})
}

// Phase returns the lifecycle phase of id.
func (s *LifecycleSystem) Phase(id types.EntityID) (component.Phase, bool) {
	lc, ok := s.ecs.Lifecycles[id]
	if !ok {
		return 0, false
	}
	return lc.Phase, true
}
