// internal/state/scene_state.go
package state

import (
	"go-beams/internal/config"
	"go-beams/internal/scene"
	"go-beams/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// SceneState runs the beam scene in the window.
type SceneState struct {
	sm       *StateMachine
	scene    *scene.Scene
	settings config.Settings
	logger   *zap.Logger
	reload   <-chan config.Settings

	hud         *ui.HUD
	pauseButton *ui.PauseButton
	width       int
	height      int
}

var _ State = (*SceneState)(nil)

// NewSceneState builds and mounts a scene. Settings received on reload
// replace the scene on the next update.
func NewSceneState(sm *StateMachine, settings config.Settings, logger *zap.Logger, reload <-chan config.Settings) *SceneState {
	s := &SceneState{
		sm:       sm,
		settings: settings,
		logger:   logger,
		reload:   reload,
		hud:      ui.NewHUD(),
		pauseButton: ui.NewPauseButton(
			float32(settings.Scene.Width-30), 30, 14,
			config.TextLightColor, config.TextLightColor,
		),
		width:  settings.Scene.Width,
		height: settings.Scene.Height,
	}
	s.build()
	return s
}

func (s *SceneState) build() {
	s.scene = scene.New(s.settings, scene.WithLogger(s.logger))
	s.scene.Layout(s.width, s.height)
	s.scene.Mount()
}

// Scene returns the running scene.
func (s *SceneState) Scene() *scene.Scene {
	return s.scene
}

func (s *SceneState) Enter() {
	s.pauseButton.SetPaused(false)
	s.scene.Mount()
}

func (s *SceneState) Update(deltaTime float64) {
	s.handleInput()
	if s.sm.Current() != s {
		return
	}
	s.pollReload()
	s.Step(deltaTime)
}

// Step advances the scene by deltaTime seconds.
func (s *SceneState) Step(deltaTime float64) {
	s.scene.Update(time.Duration(deltaTime * float64(time.Second)))
}

func (s *SceneState) handleInput() {
	now := time.Now()
	pause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pause = pause || s.pauseButton.IsClicked(x, y)
	}
	if pause && s.pauseButton.Ready(now, config.PauseKeyRepeat) {
		s.pauseButton.TogglePause(now)
		s.sm.Push(NewPauseState(s.sm, s))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reseed(now.UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		s.scene.Render.ShowBoundary = !s.scene.Render.ShowBoundary
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.hud.Visible = !s.hud.Visible
	}
}

func (s *SceneState) pollReload() {
	select {
	case settings := <-s.reload:
		s.Reload(settings)
	default:
	}
}

// Reload replaces the scene with one built from settings. The window size is
// fixed at startup, so size changes only take effect on restart.
func (s *SceneState) Reload(settings config.Settings) {
	s.scene.Unmount()
	s.settings = settings
	s.build()
	s.logger.Info("scene reloaded",
		zap.Int("beams", settings.Scene.BeamCount),
		zap.Duration("poll_interval", settings.Scene.PollInterval))
}

// Reseed replaces the scene with a freshly generated one.
func (s *SceneState) Reseed(seed int64) {
	s.settings.Scene.Seed = seed
	s.Reload(s.settings)
}

// Layout resizes the scene to the host screen.
func (s *SceneState) Layout(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.scene.Layout(width, height)
}

func (s *SceneState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.scene.Draw(screen)
	s.pauseButton.Draw(screen)
	s.hud.Draw(screen, ui.Lines(s.scene.Stats(), s.scene.Seed(), ebiten.ActualFPS()))
}

func (s *SceneState) Exit() {}

// Close unmounts the scene.
func (s *SceneState) Close() {
	s.scene.Unmount()
}
