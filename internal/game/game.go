// Package game implements the main game loop and state management.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/config"
	"github.com/Faultbox/breakout3d/internal/engine/audio"
	"github.com/Faultbox/breakout3d/internal/engine/debug"
	"github.com/Faultbox/breakout3d/internal/engine/input"
	"github.com/Faultbox/breakout3d/internal/engine/renderer"
	"github.com/Faultbox/breakout3d/internal/engine/window"
	"github.com/Faultbox/breakout3d/internal/game/level"
	"github.com/Faultbox/breakout3d/internal/game/states"
	"github.com/Faultbox/breakout3d/internal/levels"
	"github.com/Faultbox/breakout3d/internal/logger"
)

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	input    *input.Input
	bindings input.Bindings
	gpu      *gpu
	audio    *audio.Manager
	shots    *debug.Screenshots
	states   *states.Manager
}

// New creates the window, the GL resources and the level, and schedules
// the loading state.
func New(cfg *config.Config) (*Game, error) {
	layout, err := levels.Load(cfg.Game.Level)
	if err != nil {
		return nil, err
	}

	logger.Info("initializing game",
		zap.String("level", layout.Name),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		config:   cfg,
		bindings: input.DefaultBindings(),
		shots:    debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "breakout"),
		states:   states.NewManager(),
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      "Breakout 3D",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := renderer.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	width, height := g.window.Size()
	renderer.Resize(width, height)

	var res level.Resources
	g.gpu, res, err = newGPU(cfg, int32(width), int32(height))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create gpu resources: %w", err)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := level.OptionsFrom(cfg, seed)
	opts.Width, opts.Height = int32(width), int32(height)
	lvl := level.New(res, opts)

	var sounds states.Sounds
	g.audio, err = newAudio(cfg.Audio)
	if err != nil {
		logger.Warn("audio unavailable, running silent", zap.Error(err))
	} else if g.audio != nil {
		sounds = &contactSounds{player: g.audio}
	}

	g.input = input.New()
	g.states.Change(states.NewLoadingState(layout, lvl, g.states, sounds))

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop. It returns when the window is closed, quit
// is pressed or the level is completed.
func (g *Game) Run() error {
	g.running = true

	start := g.window.Time()
	last := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting game loop")

	for g.running {
		now := g.window.Time()
		dt := now - last
		last = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				renderer.Resize(event.Width, event.Height)
			}
			if err := g.states.HandleInput(event); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
		}
		cmds := g.bindings.Read(g.input)
		if cmds.Quit {
			g.running = false
			break
		}

		// 2. Update game state
		frame := states.Frame{DT: float32(dt), Time: float32(now - start), Commands: cmds}
		if err := g.states.Update(frame); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		if g.states.Finished() {
			g.running = false
			break
		}

		// 3. Render
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if cmds.Screenshot {
			w, h := g.window.Size()
			if name, err := g.shots.Capture(w, h); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", name))
			}
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		frameCount++
		if now-fpsTimer >= 1 {
			fps := float64(frameCount) / (now - fpsTimer)
			logger.Debug("fps", zap.Float64("fps", fps), zap.Float64("dt_ms", dt*1000))
			if g.config.Game.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("Breakout 3D - %.0f fps", fps))
			}
			frameCount = 0
			fpsTimer = now
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.gpu != nil {
		g.gpu.destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
