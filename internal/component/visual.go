// internal/component/visual.go
package component

import (
	"go-beams/internal/timer"
	"go-beams/internal/types"
	"time"
)

// Particle is one fragment of an explosion. Directions are pixel offsets
// from the collision point at the end of the particle's animation.
type Particle struct {
	ID         int
	DirectionX float64
	DirectionY float64
	Duration   time.Duration
}

// Explosion is a short-lived burst at a collision point.
type Explosion struct {
	Owner     types.EntityID
	At        Coordinates
	Particles []Particle
	SpawnedAt time.Duration
	Lifetime  time.Duration
	Expiry    *timer.Handle
}
