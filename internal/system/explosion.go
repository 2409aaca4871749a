// internal/system/explosion.go
package system

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/entity"
	"go-beams/internal/event"
	"go-beams/internal/timer"
	"go-beams/internal/types"
	"go-beams/internal/utils"
	"math"
	"time"

	"go.uber.org/zap"
)

// ExplosionSystem spawns particle bursts at collision points and disposes of
// them when their display window ends.
type ExplosionSystem struct {
	ecs        *entity.ECS
	clock      *timer.Scheduler
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	settings   config.ExplosionSettings
	byOwner    map[types.EntityID]types.EntityID
	logger     *zap.Logger
}

func NewExplosionSystem(
	ecs *entity.ECS,
	clock *timer.Scheduler,
	dispatcher *event.Dispatcher,
	rng *utils.PRNGService,
	settings config.ExplosionSettings,
	logger *zap.Logger,
) *ExplosionSystem {
	return &ExplosionSystem{
		ecs:        ecs,
		clock:      clock,
		dispatcher: dispatcher,
		rng:        rng,
		settings:   settings,
		byOwner:    make(map[types.EntityID]types.EntityID),
		logger:     logger,
	}
}

// Emit shows a burst for owner at the given point. If owner's live burst is
// already at the same point it is returned unchanged and created is false;
// a burst at another point replaces it.
func (s *ExplosionSystem) Emit(owner types.EntityID, at component.Coordinates) (id types.EntityID, created bool) {
	if prev, ok := s.byOwner[owner]; ok {
		if exp, live := s.ecs.Explosions[prev]; live && exp.At == at {
			return prev, false
		}
		s.Dispose(prev)
	}

	id = s.ecs.NewEntity()
	now := s.clock.Now()
	exp := &component.Explosion{
		Owner:     owner,
		At:        at,
		Particles: s.particles(),
		SpawnedAt: now,
		Lifetime:  s.settings.Lifetime,
	}
	exp.Expiry = s.clock.After(s.settings.Lifetime, func() { s.Dispose(id) })
	s.ecs.Explosions[id] = exp
	s.byOwner[owner] = id

	s.dispatcher.Dispatch(event.Event{
		Type: event.ExplosionSpawned,
		Data: event.ExplosionPayload{ID: id, Owner: owner, Coordinates: at, At: now},
	})
	return id, true
}

func (s *ExplosionSystem) particles() []component.Particle {
	particles := make([]component.Particle, config.ParticleCount)
	for i := range particles {
		particles[i] = component.Particle{
			ID:         i,
			DirectionX: math.Floor(s.rng.Range(-8, 8)),
			DirectionY: math.Floor(s.rng.Range(-20, -4)),
			Duration:   s.rng.Duration(s.settings.MinParticleDuration, s.settings.MaxParticleDuration),
		}
	}
	return particles
}

// Dispose removes the burst and cancels its expiry timer.
func (s *ExplosionSystem) Dispose(id types.EntityID) {
	exp, ok := s.ecs.Explosions[id]
	if !ok {
		return
	}
	exp.Expiry.Cancel()
	delete(s.ecs.Explosions, id)
	if s.byOwner[exp.Owner] == id {
		delete(s.byOwner, exp.Owner)
	}

	s.dispatcher.Dispatch(event.Event{
		Type: event.ExplosionDisposed,
		Data: event.ExplosionPayload{ID: id, Owner: exp.Owner, Coordinates: exp.At, At: s.clock.Now()},
	})
}

// DisposeOwned removes owner's burst, if any.
func (s *ExplosionSystem) DisposeOwned(owner types.EntityID) {
	if id, ok := s.byOwner[owner]; ok {
		s.Dispose(id)
	}
}

// Active returns the number of live bursts.
func (s *ExplosionSystem) Active() int {
	return len(s.ecs.Explosions)
}

// ParticleFrame is a particle's offset from its burst origin and its opacity.
type ParticleFrame struct {
	DX, DY  float64
	Opacity float64
}

// SampleParticle eases the particle from the origin to its direction while
// fading it from 1 to 0.
func SampleParticle(p component.Particle, elapsed time.Duration) ParticleFrame {
	if p.Duration <= 0 {
		return ParticleFrame{DX: p.DirectionX, DY: p.DirectionY}
	}
	k := utils.EaseOut(float64(elapsed) / float64(p.Duration))
	return ParticleFrame{
		DX:      utils.Lerp(0, p.DirectionX, k),
		DY:      utils.Lerp(0, p.DirectionY, k),
		Opacity: 1 - k,
	}
}

// GlowOpacity fades the burst's glow bar in.
func GlowOpacity(elapsed time.Duration) float64 {
	return utils.EaseOut(float64(elapsed) / float64(config.GlowFadeDuration))
}
