// internal/component/render.go
package component

import "image/color"

// Renderable describes how a beam is drawn.
type Renderable struct {
	HeadColor color.NRGBA
	TailColor color.NRGBA
	Width     float32
}
