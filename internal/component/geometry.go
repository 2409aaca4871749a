// internal/component/geometry.go
package component

// Rect is an axis-aligned bounding box in screen space.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Geometry is anything that can report its current bounding box. ok is false
// while the element has not been laid out.
type Geometry interface {
	Bounds() (r Rect, ok bool)
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func() (Rect, bool)

func (f GeometryFunc) Bounds() (Rect, bool) { return f() }

// Element is a Geometry whose box is assigned by a layout pass.
type Element struct {
	rect    Rect
	laidOut bool
}

// SetRect lays the element out.
func (e *Element) SetRect(r Rect) {
	e.rect = r
	e.laidOut = true
}

// Clear marks the element as not laid out.
func (e *Element) Clear() {
	e.rect = Rect{}
	e.laidOut = false
}

func (e *Element) Bounds() (Rect, bool) {
	if e == nil || !e.laidOut {
		return Rect{}, false
	}
	return e.rect, true
}
