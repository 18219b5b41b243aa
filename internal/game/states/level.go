package states

import (
	"github.com/Faultbox/breakout3d/internal/engine/input"
	"github.com/Faultbox/breakout3d/internal/game/level"
	"github.com/Faultbox/breakout3d/internal/levels"
)

// Level is the part of level.Level the states drive.
type Level interface {
	Load(layout levels.Layout) (level.Stats, error)
	Update(dt, t float32, cmds input.Commands) level.Contact
	Render()
	IsCompleted() bool
	Resize(width, height int32)
	Remaining() int
}
