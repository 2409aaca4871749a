package system

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/entity"
	"go-beams/internal/event"
	"go-beams/internal/timer"
	"go-beams/internal/utils"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

// fixture wires the beam systems the same way the scene does, with the
// container and boundary exposed as plain elements.
type fixture struct {
	ecs        *entity.ECS
	clock      *timer.Scheduler
	dispatcher *event.Dispatcher
	travel     *TravelSystem
	prober     *CollisionProber
	explosions *ExplosionSystem
	lifecycle  *LifecycleSystem
	container  *component.Element
	boundary   *component.Element
	events     []event.Event
}

func newFixture(t *testing.T, boundaryTop float64) *fixture {
	t.Helper()
	settings := config.Default()
	logger := zaptest.NewLogger(t)

	f := &fixture{
		ecs:        entity.NewECS(),
		clock:      timer.New(),
		dispatcher: event.NewDispatcher(),
		container:  &component.Element{},
		boundary:   &component.Element{},
	}
	f.container.SetRect(component.Rect{X: 0, Y: 0, W: 1200, H: boundaryTop + 4})
	f.boundary.SetRect(component.Rect{X: 0, Y: boundaryTop, W: 1200, H: 4})

	rng := utils.NewPRNGService(1)
	f.travel = NewTravelSystem(f.ecs, f.clock, f.container)
	f.prober = NewCollisionProber(f.ecs, f.clock, f.dispatcher, f.travel, f.boundary, f.container, settings.Scene.PollInterval, logger)
	f.explosions = NewExplosionSystem(f.ecs, f.clock, f.dispatcher, rng, settings.Explosion, logger)
	f.lifecycle = NewLifecycleSystem(f.ecs, f.clock, f.dispatcher, f.travel, f.prober, f.explosions, settings.Beam.Cooldown, logger)

	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	for _, et := range []event.EventType{
		event.BeamMounted, event.BeamCollided, event.BeamReset,
		event.BeamTornDown, event.ExplosionSpawned, event.ExplosionDisposed,
	} {
		f.dispatcher.Subscribe(et, record)
	}
	return f
}

// linearBeam moves one pixel per millisecond from y=-20, so its bottom edge
// (thin variant, 8px) is at t-12 after t milliseconds of travel.
func linearBeam(offset float64) component.BeamConfig {
	return component.BeamConfig{
		InitialOffset: offset,
		StartY:        -20,
		Travel:        1800,
		Duration:      1820 * time.Millisecond,
		Variant:       component.VariantThin,
	}
}

func (f *fixture) ofType(et event.EventType) []event.Event {
	var out []event.Event
	for _, e := range f.events {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}

func (f *fixture) step(total, dt time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += dt {
		f.clock.Advance(dt)
	}
}
