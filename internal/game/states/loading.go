package states

import (
	"fmt"

	"github.com/Faultbox/breakout3d/internal/engine/input"
	"github.com/Faultbox/breakout3d/internal/game/level"
	"github.com/Faultbox/breakout3d/internal/levels"
)

// LoadingState populates the level and hands over to RunningState.
type LoadingState struct {
	layout  levels.Layout
	level   Level
	manager *Manager
	sounds  Sounds

	Stats level.Stats
}

// NewLoadingState creates a loading state for layout. sounds is handed to
// the running state and may be nil.
func NewLoadingState(layout levels.Layout, lvl Level, manager *Manager, sounds Sounds) *LoadingState {
	return &LoadingState{layout: layout, level: lvl, manager: manager, sounds: sounds}
}

// Name returns "loading".
func (s *LoadingState) Name() string { return "loading" }

// Enter loads the layout. A layout that cannot be loaded aborts the game.
func (s *LoadingState) Enter() error {
	st, err := s.level.Load(s.layout)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}
	s.Stats = st
	s.manager.Change(NewRunningState(s.level, s.manager, s.sounds))
	return nil
}

// Exit is called when leaving this state.
func (s *LoadingState) Exit() error { return nil }

// Update is called every frame.
func (s *LoadingState) Update(Frame) error { return nil }

// Render is called every frame to draw the state.
func (s *LoadingState) Render() error { return nil }

// HandleInput processes input events.
func (s *LoadingState) HandleInput(input.Event) error { return nil }
