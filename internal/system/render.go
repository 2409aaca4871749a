// internal/system/render.go
package system

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/entity"
	"go-beams/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// beamSegments is how many strokes approximate the beam's vertical gradient.
const beamSegments = 4

// RenderSystem draws beams, bursts and, optionally, the boundary.
type RenderSystem struct {
	ecs          *entity.ECS
	clock        Clock
	beams        BeamGeometry
	boundary     component.Geometry
	container    component.Geometry
	ShowBoundary bool
}

func NewRenderSystem(ecs *entity.ECS, clock Clock, beams BeamGeometry, boundary, container component.Geometry) *RenderSystem {
	return &RenderSystem{
		ecs:       ecs,
		clock:     clock,
		beams:     beams,
		boundary:  boundary,
		container: container,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.ShowBoundary {
		if b, ok := s.boundary.Bounds(); ok {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), config.BoundaryColor, false)
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, render.DarkenColor(config.BoundaryColor), false)
		}
	}

	for id, r := range s.ecs.Renderables {
		rect, ok := s.beams.BeamBounds(id)
		if !ok {
			continue
		}
		step := rect.H / beamSegments
		for i := 0; i < beamSegments; i++ {
			c := render.Mix(r.HeadColor, r.TailColor, float64(i)/beamSegments)
			y0 := rect.Y + float64(i)*step
			x := rect.CenterX()
			vector.StrokeLine(screen, float32(x), float32(y0), float32(x), float32(y0+step), r.Width, c, true)
		}
	}

	container, ok := s.container.Bounds()
	if !ok {
		return
	}
	now := s.clock.Now()
	for _, exp := range s.ecs.Explosions {
		elapsed := now - exp.SpawnedAt
		ox := container.X + exp.At.X
		oy := container.Y + exp.At.Y

		glow := render.Fade(config.GlowColor, GlowOpacity(elapsed))
		vector.DrawFilledRect(screen,
			float32(ox-config.GlowWidth/2), float32(oy),
			config.GlowWidth, config.GlowHeight, glow, true)

		for _, p := range exp.Particles {
			f := SampleParticle(p, elapsed)
			if f.Opacity <= 0 {
				continue
			}
			c := render.Fade(config.ParticleColor, f.Opacity)
			vector.DrawFilledRect(screen,
				float32(ox+f.DX-config.ParticleSize/2), float32(oy+f.DY-config.ParticleSize/2),
				config.ParticleSize, config.ParticleSize, c, true)
		}
	}
}
