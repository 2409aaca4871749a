package system

import (
	"go-beams/internal/component"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTravelOffset(t *testing.T) {
	cfg := component.BeamConfig{
		StartY:   -20,
		Travel:   1800,
		Duration: 1820 * time.Millisecond,
		Delay:    100 * time.Millisecond,
	}
	withRepeat := cfg
	withRepeat.RepeatDelay = 180 * time.Millisecond

	tests := []struct {
		name    string
		cfg     component.BeamConfig
		elapsed time.Duration
		want    float64
	}{
		{"before delay", cfg, 50 * time.Millisecond, -20},
		{"delay boundary", cfg, 100 * time.Millisecond, -20},
		{"mid travel", cfg, 600 * time.Millisecond, 480},
		{"loops", cfg, 100*time.Millisecond + 1820*time.Millisecond + 20*time.Millisecond, 0},
		{"holds during repeat delay", withRepeat, 100*time.Millisecond + 1900*time.Millisecond, 1800},
		{"after repeat delay", withRepeat, 100*time.Millisecond + 2000*time.Millisecond + 20*time.Millisecond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TravelOffset(tt.cfg, tt.elapsed), 1e-6)
		})
	}
}

func TestBeamBoundsFollowContainer(t *testing.T) {
	f := newFixture(t, 487.9)
	f.container.SetRect(component.Rect{X: 30, Y: 40, W: 800, H: 600})
	id := f.lifecycle.Spawn(linearBeam(100))

	f.clock.Advance(20 * time.Millisecond)
	r, ok := f.travel.BeamBounds(id)
	require.True(t, ok)
	assert.InDelta(t, 130, r.X, 1e-9)
	assert.InDelta(t, 40, r.Y, 1e-6)
	assert.InDelta(t, 8, r.H, 1e-9)

	f.container.Clear()
	_, ok = f.travel.BeamBounds(id)
	assert.False(t, ok)

	_, ok = f.travel.BeamBounds(9999)
	assert.False(t, ok)
}

func TestTravelRestartCreatesFreshAnimation(t *testing.T) {
	f := newFixture(t, 10000)
	id := f.lifecycle.Spawn(linearBeam(0))
	first := f.ecs.Travels[id]

	f.clock.Advance(300 * time.Millisecond)
	f.travel.Start(id)
	second := f.ecs.Travels[id]

	assert.NotSame(t, first, second)
	assert.Equal(t, 300*time.Millisecond, second.StartedAt)
	y, _ := f.travel.OffsetY(id)
	assert.Equal(t, -20.0, y)
}
