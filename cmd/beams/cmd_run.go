// cmd/beams/cmd_run.go
package main

import (
	"fmt"
	"go-beams/internal/config"
	"go-beams/internal/state"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the scene in a window",
	Long: `Opens the scene in a window. Keys:
  P / F9  pause and resume
  R       regenerate the beams with a new seed
  B       show or hide the boundary
  H       show or hide the counters

Edits to the config file are applied live by rebuilding the scene.`,
	RunE: runWindow,
}

// AppGame adapts the state machine to ebiten's game loop.
type AppGame struct {
	stateMachine   *state.StateMachine
	scene          *state.SceneState
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.Layout(a.width, a.height)
	return a.width, a.height
}

func runWindow(cmd *cobra.Command, args []string) error {
	reload := make(chan config.Settings, 1)
	config.Watch(vcfg, logger, func(s *config.Settings) {
		select {
		case <-reload:
		default:
		}
		select {
		case reload <- *s:
		default:
		}
	})

	sm := state.NewStateMachine()
	sceneState := state.NewSceneState(sm, *settings, logger, reload)
	defer sceneState.Close()
	sm.SetState(sceneState)

	app := &AppGame{
		stateMachine:   sm,
		scene:          sceneState,
		width:          settings.Scene.Width,
		height:         settings.Scene.Height,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Scene.Width, settings.Scene.Height)
	ebiten.SetWindowTitle("Beams")
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window loop failed: %w", err)
	}
	return nil
}
