// internal/component/beam.go
package component

import "time"

// VisualVariant selects the thickness class of a beam.
type VisualVariant int

const (
	VariantThin VisualVariant = iota
	VariantMedium
	VariantThick
)

// Height returns the beam's drawn length in pixels.
func (v VisualVariant) Height() float64 {
	switch v {
	case VariantMedium:
		return 12
	case VariantThick:
		return 16
	default:
		return 8
	}
}

func (v VisualVariant) String() string {
	switch v {
	case VariantThin:
		return "thin"
	case VariantMedium:
		return "medium"
	case VariantThick:
		return "thick"
	default:
		return "unknown"
	}
}

// BeamConfig is generated once per beam and never mutated.
type BeamConfig struct {
	InitialOffset float64 // x offset inside the scene, px
	StartY        float64 // y at the start of each traversal, px
	Travel        float64 // y at the end of each traversal, px
	Duration      time.Duration
	Delay         time.Duration
	RepeatDelay   time.Duration
	Variant       VisualVariant
}

// Coordinates are relative to the scene container's top-left corner.
type Coordinates struct {
	X, Y float64
}

// CollisionState is written only by the beam's prober. Coordinates is nil
// when nothing has been detected in the current cycle.
type CollisionState struct {
	Detected    bool
	Coordinates *Coordinates
}

// Reset returns the state to {false, absent}.
func (c *CollisionState) Reset() {
	c.Detected = false
	c.Coordinates = nil
}

// BeamInstance is the generation of a beam's animated element.
type BeamInstance struct {
	CycleKey int
	Latched  bool
}
