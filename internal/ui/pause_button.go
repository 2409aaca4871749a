// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton is a round pause/play toggle that pulses when clicked.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// play triangle
		var path vector.Path
		path.MoveTo(b.X-size*0.6, b.Y-size*0.7)
		path.LineTo(b.X-size*0.6, b.Y+size*0.7)
		path.LineTo(b.X+size*0.7, b.Y)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, bl, a := b.PlayColor.RGBA()
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR = float32(r) / 0xffff
			vs[i].ColorG = float32(g) / 0xffff
			vs[i].ColorB = float32(bl) / 0xffff
			vs[i].ColorA = float32(a) / 0xffff
		}
		screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{
			AntiAlias:      true,
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		})
		return
	}

	width := size * 0.3
	height := size
	spacing := size * 0.2
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

// IsClicked reports whether (x, y) lies inside the button.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// Ready reports whether enough time has passed since the last toggle.
func (b *PauseButton) Ready(now time.Time, repeat time.Duration) bool {
	return now.Sub(b.LastToggleTime) >= repeat
}

func (b *PauseButton) TogglePause(now time.Time) {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = now
	b.LastToggleTime = now
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

var whiteImage *ebiten.Image

// whitePixel returns the centre texel of a 3x3 white image so that filtering
// never samples outside it.
func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}
