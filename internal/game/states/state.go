// Package states implements game state management.
package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/engine/input"
	"github.com/Faultbox/breakout3d/internal/logger"
)

// Frame is the per-frame input to a state.
type Frame struct {
	DT       float32 // seconds since the previous frame
	Time     float32 // seconds since start
	Commands input.Commands
}

// State represents a game state (loading, running, completed).
type State interface {
	// Name identifies the state in logs.
	Name() string

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(f Frame) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleInput processes input events.
	HandleInput(event input.Event) error
}

// Final is implemented by states that end the game loop once entered.
type Final interface {
	Final() bool
}

// Manager manages game state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change. It takes effect on the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Finished reports whether the current state is final and no change is
// pending.
func (m *Manager) Finished() bool {
	if m.next != nil || m.current == nil {
		return false
	}
	f, ok := m.current.(Final)
	return ok && f.Final()
}

// Update processes state changes and updates current state.
func (m *Manager) Update(f Frame) error {
	for m.next != nil {
		from := "none"
		if m.current != nil {
			from = m.current.Name()
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current, m.next = m.next, nil
		logger.Info("state change", zap.String("from", from), zap.String("to", m.current.Name()))
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(f)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(event input.Event) error {
	if m.current != nil {
		return m.current.HandleInput(event)
	}
	return nil
}
