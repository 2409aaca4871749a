// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	BeamCount        = 60
	BeamMaxOffset    = 2000.0
	BeamStartY       = -20.0
	BeamTravel       = 1800.0
	BeamWidth        = 0.5
	BeamMinDuration  = time.Second
	BeamMaxDuration  = 2500 * time.Millisecond
	BeamMaxDelay     = 3 * time.Second
	BeamRepeatDelay  = 0
	BeamVariantCount = 3

	PollInterval     = 50 * time.Millisecond
	CooldownDuration = 2000 * time.Millisecond
	BoundaryHeight   = 4.0

	ParticleCount       = 5
	ParticleMinDuration = 200 * time.Millisecond
	ParticleMaxDuration = 600 * time.Millisecond
	ExplosionLifetime   = 2000 * time.Millisecond
	GlowFadeDuration    = 400 * time.Millisecond
	GlowWidth           = 8.0
	GlowHeight          = 2.0
	ParticleSize        = 2.0

	HUDMarginX     = 10
	HUDMarginY     = 10
	HUDLineHeight  = 16
	PauseKeyRepeat = 300 * time.Millisecond
)

var (
	BackgroundColor = color.NRGBA{0, 0, 0, 255}
	BeamHeadColor   = color.NRGBA{255, 255, 255, 77}
	BeamTailColor   = color.NRGBA{255, 255, 255, 0}
	GlowColor       = color.NRGBA{255, 255, 255, 26}
	ParticleColor   = color.NRGBA{255, 255, 255, 38}
	BoundaryColor   = color.NRGBA{220, 60, 60, 160}
	TextLightColor  = color.NRGBA{240, 240, 240, 255}
	OverlayColor    = color.NRGBA{0, 0, 0, 128}
)
