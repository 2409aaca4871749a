// internal/system/travel.go
package system

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/entity"
	"go-beams/internal/types"
	"time"
)

// Clock is the virtual time source shared by the systems of one scene.
type Clock interface {
	Now() time.Duration
}

// TravelSystem animates beams from StartY to Travel and reports their live
// bounding boxes.
type TravelSystem struct {
	ecs       *entity.ECS
	clock     Clock
	container component.Geometry
}

func NewTravelSystem(ecs *entity.ECS, clock Clock, container component.Geometry) *TravelSystem {
	return &TravelSystem{ecs: ecs, clock: clock, container: container}
}

// Start discards any previous animation of id and begins a fresh one from
// the beam's initial position. The configured delay applies again.
func (s *TravelSystem) Start(id types.EntityID) {
	cfg, ok := s.ecs.Configs[id]
	if !ok {
		return
	}
	s.ecs.Travels[id] = &component.Travel{
		Config:    cfg,
		StartedAt: s.clock.Now(),
	}
}

// Pause freezes the animation where it is.
func (s *TravelSystem) Pause(id types.EntityID) {
	tr, ok := s.ecs.Travels[id]
	if !ok || tr.Paused {
		return
	}
	tr.Paused = true
	tr.PausedAt = s.clock.Now()
}

// OffsetY returns the beam's current vertical translation inside the scene.
func (s *TravelSystem) OffsetY(id types.EntityID) (float64, bool) {
	tr, ok := s.ecs.Travels[id]
	if !ok {
		return 0, false
	}
	now := s.clock.Now()
	if tr.Paused {
		now = tr.PausedAt
	}
	return TravelOffset(*tr.Config, now-tr.StartedAt), true
}

// BeamBounds implements BeamGeometry.
func (s *TravelSystem) BeamBounds(id types.EntityID) (component.Rect, bool) {
	container, ok := s.container.Bounds()
	if !ok {
		return component.Rect{}, false
	}
	y, ok := s.OffsetY(id)
	if !ok {
		return component.Rect{}, false
	}
	cfg := s.ecs.Configs[id]
	return component.Rect{
		X: container.X + cfg.InitialOffset,
		Y: container.Y + y,
		W: config.BeamWidth,
		H: cfg.Variant.Height(),
	}, true
}

// TravelOffset is the linear, looping traversal: StartY during the delay, then
// StartY→Travel over Duration, holding at Travel for RepeatDelay, repeated.
func TravelOffset(cfg component.BeamConfig, elapsed time.Duration) float64 {
	elapsed -= cfg.Delay
	if elapsed <= 0 || cfg.Duration <= 0 {
		return cfg.StartY
	}
	period := cfg.Duration + cfg.RepeatDelay
	phase := elapsed % period
	if phase >= cfg.Duration {
		return cfg.Travel
	}
	frac := float64(phase) / float64(cfg.Duration)
	return cfg.StartY + (cfg.Travel-cfg.StartY)*frac
}
