// internal/system/generator.go
package system

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/utils"
)

// BeamGenerator produces randomized beam configurations.
type BeamGenerator struct {
	rng      *utils.PRNGService
	settings config.BeamSettings
}

func NewBeamGenerator(rng *utils.PRNGService, settings config.BeamSettings) *BeamGenerator {
	return &BeamGenerator{rng: rng, settings: settings}
}

// Generate returns count independent configurations. It has no side effects
// besides advancing the generator's random stream.
func (g *BeamGenerator) Generate(count int) []component.BeamConfig {
	if count <= 0 {
		return nil
	}
	beams := make([]component.BeamConfig, count)
	for i := range beams {
		beams[i] = component.BeamConfig{
			InitialOffset: g.rng.Range(0, g.settings.MaxOffset),
			StartY:        g.settings.StartY,
			Travel:        g.settings.Travel,
			Duration:      g.rng.Duration(g.settings.MinDuration, g.settings.MaxDuration),
			Delay:         g.rng.Duration(0, g.settings.MaxDelay),
			RepeatDelay:   g.settings.RepeatDelay,
			Variant:       component.VisualVariant(g.rng.Intn(config.BeamVariantCount)),
		}
	}
	return beams
}
