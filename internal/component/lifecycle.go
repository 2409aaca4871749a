// internal/component/lifecycle.go
package component

import (
	"go-beams/internal/timer"
	"go-beams/internal/types"
	"time"
)

// Phase is the state of a beam's lifecycle.
type Phase int

const (
	Traveling Phase = iota
	Collided
	Cooldown
)

func (p Phase) String() string {
	switch p {
	case Traveling:
		return "traveling"
	case Collided:
		return "collided"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Lifecycle keeps the beam's phase and every timer handle it owns.
type Lifecycle struct {
	Phase      Phase
	Poll       *timer.Handle
	Cooldown   *timer.Handle
	Explosion  types.EntityID
	CollidedAt time.Duration
}
