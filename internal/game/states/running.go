package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/engine/input"
	"github.com/Faultbox/breakout3d/internal/game/level"
	"github.com/Faultbox/breakout3d/internal/logger"
)

// Summary is the outcome of a played level.
type Summary struct {
	Elapsed   float32 // seconds spent running
	Bounces   int
	Destroyed int
	Remaining int
}

// Sounds reacts to ball contacts.
type Sounds interface {
	Contact(c level.Contact)
}

// RunningState steps and draws the level until the ball leaves the field.
type RunningState struct {
	level   Level
	manager *Manager
	sounds  Sounds

	start   float32
	started bool
	initial int
	summary Summary
}

// NewRunningState creates the running state. sounds may be nil.
func NewRunningState(lvl Level, manager *Manager, sounds Sounds) *RunningState {
	return &RunningState{level: lvl, manager: manager, sounds: sounds}
}

// Name returns "running".
func (s *RunningState) Name() string { return "running" }

// Enter is called when entering this state.
func (s *RunningState) Enter() error {
	s.initial = s.level.Remaining()
	s.summary = Summary{Remaining: s.initial}
	s.started = false
	return nil
}

// Exit is called when leaving this state.
func (s *RunningState) Exit() error { return nil }

// Update advances the level and switches to CompletedState once the ball
// has crossed the exit edge.
func (s *RunningState) Update(f Frame) error {
	if !s.started {
		s.start, s.started = f.Time, true
	}
	if c := s.level.Update(f.DT, f.Time, f.Commands); c != level.ContactNone {
		s.summary.Bounces++
		if s.sounds != nil {
			s.sounds.Contact(c)
		}
	}
	s.summary.Elapsed = f.Time - s.start
	s.summary.Remaining = s.level.Remaining()
	s.summary.Destroyed = s.initial - s.summary.Remaining

	if s.level.IsCompleted() {
		logger.Info("level completed",
			zap.Float32("elapsed", s.summary.Elapsed),
			zap.Int("bounces", s.summary.Bounces),
			zap.Int("destroyed", s.summary.Destroyed),
			zap.Int("remaining", s.summary.Remaining))
		s.manager.Change(NewCompletedState(s.summary))
	}
	return nil
}

// Render draws the level.
func (s *RunningState) Render() error {
	s.level.Render()
	return nil
}

// HandleInput resizes the level's projection when the drawable changes.
func (s *RunningState) HandleInput(event input.Event) error {
	if event.Type == input.EventWindowResize {
		s.level.Resize(int32(event.Width), int32(event.Height))
	}
	return nil
}

// Summary returns the progress so far.
func (s *RunningState) Summary() Summary {
	return s.summary
}
