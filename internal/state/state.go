// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine keeps a stack of states. Only the top one is updated and
// drawn; states beneath it stay entered until they are popped or replaced.
type StateMachine struct {
	stack []State
}

// NewStateMachine creates a state machine with no initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits every stacked state, top first, and enters newState.
// A nil newState leaves the machine empty.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push enters s on top of the current state without exiting it.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop exits the top state and returns it. The state below becomes current.
func (sm *StateMachine) Pop() State {
	if len(sm.stack) == 0 {
		return nil
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
	return top
}

// Current returns the top state.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth returns the number of stacked states.
func (sm *StateMachine) Depth() int {
	return len(sm.stack)
}

func (sm *StateMachine) Update(deltaTime float64) {
	if cur := sm.Current(); cur != nil {
		cur.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if cur := sm.Current(); cur != nil {
		cur.Draw(screen)
	}
}
