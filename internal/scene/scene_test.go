package scene

import (
	"context"
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/event"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func testSettings() config.Settings {
	s := config.Default()
	s.Scene.Seed = 42
	return s
}

func advance(s *Scene, total, dt time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += dt {
		s.Update(dt)
	}
}

func TestMountCreatesConfiguredBeams(t *testing.T) {
	s := New(testSettings(), WithLogger(zaptest.NewLogger(t)))
	s.Layout(config.ScreenWidth, config.ScreenHeight)
	s.Mount()
	s.Mount()

	assert.True(t, s.Mounted())
	assert.Len(t, s.Beams(), config.BeamCount)
	assert.Len(t, s.Configs(), config.BeamCount)

	views := s.Snapshot()
	require.Len(t, views, config.BeamCount)
	for i, v := range views {
		if i > 0 {
			assert.Less(t, views[i-1].ID, v.ID)
		}
		assert.Equal(t, component.Traveling, v.Phase)
		assert.Zero(t, v.CycleKey)
		assert.True(t, v.LaidOut)
	}
	assert.Equal(t, config.BeamCount, s.Clock.Pending())
}

func TestBoundaryNotYetLaidOut(t *testing.T) {
	var s *Scene
	gate := 200 * time.Millisecond
	boundary := component.GeometryFunc(func() (component.Rect, bool) {
		if s.Clock.Now() < gate {
			return component.Rect{}, false
		}
		c, _ := s.Container().Bounds()
		return component.Rect{X: c.X, Y: c.Bottom() - 4, W: c.W, H: 4}, true
	})
	s = New(testSettings(), WithLogger(zaptest.NewLogger(t)), WithBoundary(boundary))
	s.Layout(config.ScreenWidth, config.ScreenHeight)
	s.Mount()

	advance(s, gate, 10*time.Millisecond)
	assert.Zero(t, s.Stats().Collisions)
	for _, v := range s.Snapshot() {
		assert.False(t, v.Detected)
	}

	advance(s, 8*time.Second, 10*time.Millisecond)
	assert.NotZero(t, s.Stats().Collisions)
}

func TestBoundaryNeverLaidOut(t *testing.T) {
	s := New(testSettings(), WithBoundary(&component.Element{}))
	s.Layout(config.ScreenWidth, config.ScreenHeight)
	s.Mount()

	advance(s, 10*time.Second, 16*time.Millisecond)
	assert.Zero(t, s.Stats().Collisions)
	assert.Equal(t, config.BeamCount, s.Clock.Pending())
}

func TestEveryBeamEventuallyCollides(t *testing.T) {
	s := New(testSettings())
	s.Layout(config.ScreenWidth, config.ScreenHeight)
	s.Mount()

	hit := map[uint64]bool{}
	event.Handle(s.Dispatcher, event.BeamCollided, func(p event.CollisionPayload) {
		hit[uint64(p.ID)] = true
	})

	// Worst case: 3s delay plus 2.5s travel.
	advance(s, 6*time.Second, 10*time.Millisecond)
	assert.Len(t, hit, config.BeamCount)

	stats := s.Stats()
	assert.Equal(t, config.BeamCount, stats.Beams)
	assert.GreaterOrEqual(t, stats.Collisions, config.BeamCount)
}

func TestUnmountCancelsEverything(t *testing.T) {
	s := New(testSettings(), WithLogger(zaptest.NewLogger(t)))
	s.Layout(config.ScreenWidth, config.ScreenHeight)
	s.Mount()
	advance(s, 3*time.Second, 16*time.Millisecond)
	require.NotZero(t, s.Stats().Collisions)

	s.Unmount()
	assert.False(t, s.Mounted())
	assert.Zero(t, s.Clock.Pending())
	assert.Empty(t, s.ECS.Lifecycles)
	assert.Empty(t, s.ECS.Explosions)
	assert.Empty(t, s.Snapshot())

	before := s.Stats()
	fired := s.Clock.Fired()
	advance(s, 5*time.Second, 16*time.Millisecond)
	assert.Equal(t, fired, s.Clock.Fired())
	assert.Equal(t, before.Collisions, s.Stats().Collisions)
	assert.Equal(t, before.Resets, s.Stats().Resets)

	s.Unmount()
}

func TestRemountAfterUnmount(t *testing.T) {
	s := New(testSettings())
	s.Layout(config.ScreenWidth, config.ScreenHeight)
	s.Mount()
	first := s.Beams()
	s.Unmount()

	s.Mount()
	second := s.Beams()
	require.Len(t, second, config.BeamCount)
	assert.NotEqual(t, first[0], second[0])
}

func TestPlacement(t *testing.T) {
	place := component.Rect{X: 100, Y: 50, W: 400, H: 300}
	s := New(testSettings(), WithPlacement(place))
	s.Layout(config.ScreenWidth, config.ScreenHeight)

	c, ok := s.Container().Bounds()
	require.True(t, ok)
	assert.Equal(t, place, c)

	b, ok := s.Boundary().Bounds()
	require.True(t, ok)
	assert.Equal(t, component.Rect{X: 100, Y: 346, W: 400, H: 4}, b)
}

func TestDrawLayersInOrder(t *testing.T) {
	s := New(testSettings())
	var order []string
	s.Mount(LayerFunc(func(*ebiten.Image) { order = append(order, "a") }))
	s.Mount(LayerFunc(func(*ebiten.Image) { order = append(order, "b") }))
	for _, c := range s.children {
		c.Draw(nil)
	}
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestRunUnmountsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := New(testSettings(), WithLogger(zaptest.NewLogger(t)))
	s.Layout(config.ScreenWidth, config.ScreenHeight)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	stats := Run(ctx, s, 5*time.Millisecond)
	assert.Equal(t, config.BeamCount, stats.Beams)
	assert.Positive(t, stats.Now)
	assert.LessOrEqual(t, stats.Now, time.Second)
	assert.False(t, s.Mounted())
	assert.Zero(t, s.Clock.Pending())
}

func TestSnapshotDuringCooldown(t *testing.T) {
	s := New(testSettings())
	s.Layout(config.ScreenWidth, config.ScreenHeight)
	s.Mount()

	var cooling *BeamView
	for elapsed := time.Duration(0); cooling == nil && elapsed < 6*time.Second; elapsed += 10 * time.Millisecond {
		s.Update(10 * time.Millisecond)
		for _, v := range s.Snapshot() {
			if v.Phase == component.Cooldown {
				v := v
				cooling = &v
				break
			}
		}
	}
	require.NotNil(t, cooling)
	assert.Equal(t, cooling.CollidedAt+config.CooldownDuration, cooling.ResetAt)
	assert.Contains(t, s.ECS.Explosions, cooling.Burst)
	assert.True(t, cooling.Detected)

	for _, v := range s.Snapshot() {
		if v.Phase == component.Traveling {
			assert.Zero(t, v.ResetAt)
			assert.Zero(t, v.Burst)
		}
	}
}
