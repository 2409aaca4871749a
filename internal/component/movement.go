// internal/component/movement.go
package component

import "time"

// Travel is the animation state of one beam cycle. A fresh value is created
// for every cycle; the previous one is discarded, never rewound.
type Travel struct {
	Config    *BeamConfig
	StartedAt time.Duration
	Paused    bool
	PausedAt  time.Duration
}
