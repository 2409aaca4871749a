// internal/state/pause_state.go
package state

import (
	"go-beams/internal/config"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the scene's virtual clock and draws it under an overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *SceneState
}

func NewPauseState(sm *StateMachine, prevState *SceneState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}

	now := time.Now()
	if unpause && s.previousState.pauseButton.Ready(now, config.PauseKeyRepeat) {
		s.Resume(now)
	}
}

// Resume pops the overlay and returns to the scene.
func (s *PauseState) Resume(now time.Time) {
	s.previousState.pauseButton.TogglePause(now)
	if s.stateMachine.Current() == s {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)
	s.previousState.hud.DrawCentered(screen, "PAUSED")
}

func (s *PauseState) Exit() {}
