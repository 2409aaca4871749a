// internal/event/types.go
package event

import (
	"go-beams/internal/component"
	"go-beams/internal/types"
	"time"
)

const (
	BeamMounted       EventType = "BeamMounted"       // Beam entity created and travelling
	BeamCollided      EventType = "BeamCollided"      // Prober latched a collision
	BeamReset         EventType = "BeamReset"         // Cooldown finished, new cycle started
	BeamTornDown      EventType = "BeamTornDown"      // Beam removed with all its timers
	ExplosionSpawned  EventType = "ExplosionSpawned"  // Emitter created a burst
	ExplosionDisposed EventType = "ExplosionDisposed" // Burst removed
)

// BeamPayload accompanies BeamMounted, BeamReset and BeamTornDown.
type BeamPayload struct {
	ID    types.EntityID
	Cycle int
	At    time.Duration
}

// CollisionPayload accompanies BeamCollided.
type CollisionPayload struct {
	ID          types.EntityID
	Cycle       int
	Coordinates component.Coordinates
	At          time.Duration
}

// ExplosionPayload accompanies ExplosionSpawned and ExplosionDisposed.
type ExplosionPayload struct {
	ID          types.EntityID
	Owner       types.EntityID
	Coordinates component.Coordinates
	At          time.Duration
}
