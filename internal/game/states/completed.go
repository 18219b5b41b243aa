package states

import "github.com/Faultbox/breakout3d/internal/engine/input"

// CompletedState ends the game loop.
type CompletedState struct {
	Summary Summary
}

// NewCompletedState creates the terminal state.
func NewCompletedState(sum Summary) *CompletedState {
	return &CompletedState{Summary: sum}
}

func (s *CompletedState) Name() string { return "completed" }
func (s *CompletedState) Enter() error { return nil }
func (s *CompletedState) Exit() error { return nil }
func (s *CompletedState) Update(Frame) error { return nil }
func (s *CompletedState) Render() error { return nil }
func (s *CompletedState) HandleInput(input.Event) error { return nil }
func (s *CompletedState) Final() bool { return true }
