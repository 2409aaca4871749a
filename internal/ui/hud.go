// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-beams/internal/config"
	"go-beams/internal/scene"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD prints scene counters in the top-left corner.
type HUD struct {
	face    text.Face
	color   color.Color
	Visible bool
}

func NewHUD() *HUD {
	return &HUD{
		face:    text.NewGoXFace(basicfont.Face7x13),
		color:   config.TextLightColor,
		Visible: true,
	}
}

// Lines formats the counters shown by Draw.
func Lines(stats scene.Stats, seed int64, fps float64) []string {
	return []string{
		fmt.Sprintf("t %.1fs  fps %.0f", stats.Now.Seconds(), fps),
		fmt.Sprintf("beams %d  bursts %d  timers %d", stats.Beams, stats.Explosions, stats.Timers),
		fmt.Sprintf("collisions %d  resets %d", stats.Collisions, stats.Resets),
		fmt.Sprintf("seed %d", seed),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if !h.Visible {
		return
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.HUDMarginX, float64(config.HUDMarginY+i*config.HUDLineHeight))
		op.ColorScale.ScaleWithColor(h.color)
		text.Draw(screen, line, h.face, op)
	}
}

// DrawCentered prints s centred on the screen.
func (h *HUD) DrawCentered(screen *ebiten.Image, s string) {
	w, lh := text.Measure(s, h.face, 0)
	b := screen.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-w)/2, (float64(b.Dy())-lh)/2)
	op.ColorScale.ScaleWithColor(h.color)
	text.Draw(screen, s, h.face, op)
}
