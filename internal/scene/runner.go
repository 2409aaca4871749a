// internal/scene/runner.go
package scene

import (
	"context"
	"go-beams/internal/config"
	"time"
)

// Run drives s from the wall clock until ctx is done, then unmounts it. The
// scene must not be touched by other goroutines while Run owns it. The
// virtual time step per tick is capped at MaxDeltaTime so a stalled process
// does not skip whole cycles.
func Run(ctx context.Context, s *Scene, tick time.Duration) Stats {
	if !s.Mounted() {
		s.Mount()
	}
	defer s.Unmount()

	maxStep := time.Duration(config.MaxDeltaTime * float64(time.Second))
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return s.Stats()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > maxStep {
				dt = maxStep
			}
			if dt > 0 {
				s.Update(dt)
			}
		}
	}
}
