package system

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDefaultScene(t *testing.T) {
	settings := config.Default()
	gen := NewBeamGenerator(utils.NewPRNGService(99), settings.Beam)

	beams := gen.Generate(config.BeamCount)
	assert.Len(t, beams, 60)

	variants := map[component.VisualVariant]int{}
	for _, b := range beams {
		assert.GreaterOrEqual(t, b.InitialOffset, 0.0)
		assert.Less(t, b.InitialOffset, 2000.0)
		assert.GreaterOrEqual(t, b.Duration, time.Second)
		assert.Less(t, b.Duration, 2500*time.Millisecond)
		assert.GreaterOrEqual(t, b.Delay, time.Duration(0))
		assert.Less(t, b.Delay, 3*time.Second)
		assert.Zero(t, b.RepeatDelay)
		assert.Equal(t, -20.0, b.StartY)
		assert.Equal(t, 1800.0, b.Travel)
		assert.Contains(t, []component.VisualVariant{component.VariantThin, component.VariantMedium, component.VariantThick}, b.Variant)
		variants[b.Variant]++
	}
	assert.Len(t, variants, 3)
}

func TestGenerateIsReproducible(t *testing.T) {
	settings := config.Default()
	a := NewBeamGenerator(utils.NewPRNGService(5), settings.Beam).Generate(10)
	b := NewBeamGenerator(utils.NewPRNGService(5), settings.Beam).Generate(10)
	assert.Equal(t, a, b)
}

func TestGenerateEmpty(t *testing.T) {
	gen := NewBeamGenerator(utils.NewPRNGService(1), config.Default().Beam)
	assert.Empty(t, gen.Generate(0))
	assert.Empty(t, gen.Generate(-3))
}

func TestVariantHeights(t *testing.T) {
	assert.Equal(t, 8.0, component.VariantThin.Height())
	assert.Equal(t, 12.0, component.VariantMedium.Height())
	assert.Equal(t, 16.0, component.VariantThick.Height())
	assert.Equal(t, "medium", component.VariantMedium.String())
}
