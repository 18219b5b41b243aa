package input

import "github.com/veandco/go-sdl2/sdl"

// Commands is the per-frame snapshot of player and camera intent. Axes are
// in [-1, 1] and relative to the screen.
type Commands struct {
	Paddle      float32 // + moves the paddle toward screen right
	PanRight    float32
	PanUp       float32
	Zoom        float32 // + raises the camera
	ResetCamera bool
	Screenshot  bool
	Quit        bool
}

// Keys reports key state. Input implements it.
type Keys interface {
	IsKeyDown(sdl.Scancode) bool
	IsKeyPressed(sdl.Scancode) bool
}

// Bindings maps keys to commands.
type Bindings struct {
	PaddleLeft, PaddleRight []sdl.Scancode
	PanLeft, PanRight       []sdl.Scancode
	PanUp, PanDown          []sdl.Scancode
	ZoomIn, ZoomOut         []sdl.Scancode
	ResetCamera             []sdl.Scancode
	Screenshot              []sdl.Scancode
	Quit                    []sdl.Scancode
}

// DefaultBindings uses the arrow keys for the paddle, WASD to pan, Q/E to
// zoom, R to reset the camera, F12 for a screenshot and Escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		PaddleLeft:  []sdl.Scancode{sdl.SCANCODE_LEFT},
		PaddleRight: []sdl.Scancode{sdl.SCANCODE_RIGHT},
		PanLeft:     []sdl.Scancode{sdl.SCANCODE_A},
		PanRight:    []sdl.Scancode{sdl.SCANCODE_D},
		PanUp:       []sdl.Scancode{sdl.SCANCODE_W},
		PanDown:     []sdl.Scancode{sdl.SCANCODE_S},
		ZoomIn:      []sdl.Scancode{sdl.SCANCODE_Q},
		ZoomOut:     []sdl.Scancode{sdl.SCANCODE_E},
		ResetCamera: []sdl.Scancode{sdl.SCANCODE_R},
		Screenshot:  []sdl.Scancode{sdl.SCANCODE_F12},
		Quit:        []sdl.Scancode{sdl.SCANCODE_ESCAPE},
	}
}

// Read builds the commands for this frame.
func (b Bindings) Read(k Keys) Commands {
	return Commands{
		Paddle:      axis(k, b.PaddleRight, b.PaddleLeft),
		PanRight:    axis(k, b.PanRight, b.PanLeft),
		PanUp:       axis(k, b.PanUp, b.PanDown),
		Zoom:        axis(k, b.ZoomOut, b.ZoomIn),
		ResetCamera: pressed(k, b.ResetCamera),
		Screenshot:  pressed(k, b.Screenshot),
		Quit:        pressed(k, b.Quit),
	}
}

func axis(k Keys, pos, neg []sdl.Scancode) float32 {
	var v float32
	if down(k, pos) {
		v++
	}
	if down(k, neg) {
		v--
	}
	return v
}

func down(k Keys, codes []sdl.Scancode) bool {
	for _, c := range codes {
		if k.IsKeyDown(c) {
			return true
		}
	}
	return false
}

func pressed(k Keys, codes []sdl.Scancode) bool {
	for _, c := range codes {
		if k.IsKeyPressed(c) {
			return true
		}
	}
	return false
}
