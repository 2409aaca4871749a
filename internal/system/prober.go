// internal/system/prober.go
package system

import (
	"go-beams/internal/component"
	"go-beams/internal/entity"
	"go-beams/internal/event"
	"go-beams/internal/timer"
	"go-beams/internal/types"
	"time"

	"go.uber.org/zap"
)

// BeamGeometry reports the live bounding box of a beam.
type BeamGeometry interface {
	BeamBounds(id types.EntityID) (component.Rect, bool)
}

// CollisionProber polls each travelling beam against the shared boundary on
// a fixed interval. Detection uses the last polled geometry, so a hit can be
// reported up to one interval of travel past the boundary.
type CollisionProber struct {
	ecs        *entity.ECS
	clock      *timer.Scheduler
	dispatcher *event.Dispatcher
	beams      BeamGeometry
	boundary   component.Geometry
	container  component.Geometry
	interval   time.Duration
	logger     *zap.Logger
}

func NewCollisionProber(
	ecs *entity.ECS,
	clock *timer.Scheduler,
	dispatcher *event.Dispatcher,
	beams BeamGeometry,
	boundary, container component.Geometry,
	interval time.Duration,
	logger *zap.Logger,
) *CollisionProber {
	return &CollisionProber{
		ecs:        ecs,
		clock:      clock,
		dispatcher: dispatcher,
		beams:      beams,
		boundary:   boundary,
		container:  container,
		interval:   interval,
		logger:     logger,
	}
}

// Start arms the polling interval for id unless its cycle is already latched.
// Any interval left over from a previous cycle is cancelled first.
func (p *CollisionProber) Start(id types.EntityID) {
	lc, ok := p.ecs.Lifecycles[id]
	if !ok {
		return
	}
	lc.Poll.Cancel()
	lc.Poll = nil

	inst, ok := p.ecs.Instances[id]
	if !ok || inst.Latched {
		return
	}
	lc.Poll = p.clock.Every(p.interval, func() { p.probe(id) })
}

// Stop cancels the polling interval of id.
func (p *CollisionProber) Stop(id types.EntityID) {
	if lc, ok := p.ecs.Lifecycles[id]; ok {
		lc.Poll.Cancel()
		lc.Poll = nil
	}
}

func (p *CollisionProber) probe(id types.EntityID) {
	inst, okInst := p.ecs.Instances[id]
	state, okState := p.ecs.Collisions[id]
	if !okInst || !okState {
		p.Stop(id)
		return
	}
	if inst.Latched {
		return
	}

	beam, ok := p.beams.BeamBounds(id)
	if !ok {
		return
	}
	boundary, ok := p.boundary.Bounds()
	if !ok {
		return
	}
	container, ok := p.container.Bounds()
	if !ok {
		return
	}
	if beam.Bottom() < boundary.Top() {
		return
	}

	coords := component.Coordinates{
		X: beam.Left() - container.Left() + beam.W/2,
		Y: beam.Bottom() - container.Top(),
	}
	state.Detected = true
	state.Coordinates = &coords
	inst.Latched = true
	p.Stop(id)

	now := p.clock.Now()
	p.logger.Debug("beam collided",
		zap.Uint64("beam", uint64(id)),
		zap.Int("cycle", inst.CycleKey),
		zap.Float64("x", coords.X),
		zap.Float64("y", coords.Y),
		zap.Duration("at", now))

	p.dispatcher.Dispatch(event.Event{
		Type: event.BeamCollided,
		Data: event.CollisionPayload{ID: id, Cycle: inst.CycleKey, Coordinates: coords, At: now},
	})
}
