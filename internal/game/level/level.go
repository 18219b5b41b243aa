// Package level runs one Breakout level: it turns a brick layout into
// instanced pools, steps the ball and particles, and renders the frame
// through the shadow, HDR and tone-map passes.
package level

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/config"
	"github.com/Faultbox/breakout3d/internal/engine/camera"
	"github.com/Faultbox/breakout3d/internal/engine/instance"
	"github.com/Faultbox/breakout3d/internal/engine/lighting"
	"github.com/Faultbox/breakout3d/internal/engine/model"
	"github.com/Faultbox/breakout3d/internal/engine/renderer"
	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/internal/engine/shadow"
	"github.com/Faultbox/breakout3d/internal/game/entity"
	"github.com/Faultbox/breakout3d/internal/levels"
	"github.com/Faultbox/breakout3d/internal/logger"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Model table slots.
const (
	ModelIron entity.ModelID = iota
	ModelWood
	ModelPaper
	ModelPaddle
	ModelBall
	ModelBackground
	ModelQuad
	modelCount
)

const (
	brickSize   = 1.0
	brickPool   = 50
	sparkPool   = 1000
	ballRadius  = 0.25
	debrisCount = 4
)

// DepthTarget is a shadow map render target.
type DepthTarget interface {
	Clear()
	Begin()
	End()
	Texture() uint32
}

// CubeTarget is an omnidirectional shadow map storing depth linearly up to
// FarPlane.
type CubeTarget interface {
	DepthTarget
	FarPlane() float32
}

// ColorTarget is the off-screen target of the lit pass.
type ColorTarget interface {
	Bind()
	Clear(r, g, b, a float32)
	Unbind()
	ColorTexture() uint32
}

// ToneMapper draws an HDR texture to the screen.
type ToneMapper interface {
	Resolve(hdrTexture uint32)
}

// Programs are the shaders used by each pass.
type Programs struct {
	Lit                shader.Program
	LitInstanced       shader.Program
	Depth              shader.Program
	DepthInstanced     shader.Program
	CubeDepth          shader.Program
	CubeDepthInstanced shader.Program
	Colored            shader.Program
}

// Models fills the level's model table. The level never frees them.
type Models struct {
	Iron, Wood, Paper model.Drawable
	Paddle, Ball      model.Drawable
	Background        model.Drawable
	Quad              model.Drawable
}

// Resources are the GPU collaborators a level renders with.
type Resources struct {
	Programs  Programs
	Models    Models
	SunShadow DepthTarget
	Point     CubeTarget
	HDR       ColorTarget
	Resolver  ToneMapper
}

// Options are the tunables of a level.
type Options struct {
	BallSpeed        float32
	PaddleSpeed      float32
	ExitThreshold    float32
	ParticleLifetime float32
	Frustum          config.FrustumConfig
	Width, Height    int32
	Rand             *rand.Rand
}

// OptionsFrom reads level options from cfg. seed feeds the particle jitter.
func OptionsFrom(cfg *config.Config, seed int64) Options {
	return Options{
		BallSpeed:        cfg.Game.BallSpeed,
		PaddleSpeed:      cfg.Game.PaddleSpeed,
		ExitThreshold:    cfg.Game.ExitThreshold,
		ParticleLifetime: cfg.Game.ParticleLifetime,
		Frustum:          cfg.Shadows.Frustum,
		Width:            int32(cfg.Graphics.Width),
		Height:           int32(cfg.Graphics.Height),
		Rand:             rand.New(rand.NewSource(seed)),
	}
}

// Stats describes a loaded layout.
type Stats struct {
	Iron, Wood, Paper int
	Ignored           int // cells with codes outside 0..3
	Reserved          int // ignored cells carrying a reserved special-brick code
	MaxCols           int
}

// Bricks returns the number of bricks created.
func (s Stats) Bricks() int {
	return s.Iron + s.Wood + s.Paper
}

// wall is an infinite plane bounding the field.
type wall struct {
	normal math.Vec3
	point  math.Vec3
}

// Level is a loaded Breakout level.
type Level struct {
	res    Resources
	opts   Options
	models [modelCount]model.Drawable

	bricksIron   *instance.Pool[entity.Brick]
	bricksWood   *instance.Pool[entity.Brick]
	bricksPaper  *instance.Pool[entity.Brick]
	particles    *instance.Pool[entity.Particle] // brick debris
	coloredQuads *instance.Pool[entity.Particle] // ball sparks

	queue renderer.Queue

	stats      Stats
	frustum    shadow.Frustum
	camera     *camera.Camera
	sun        lighting.Sun
	point      lighting.PointLight
	walls      [3]wall
	player     entity.Player
	ball       entity.Ball
	background entity.Transform
	candidates []candidate
	aspect     float32
}

// New returns an empty level bound to res. Call Load before Update or
// Render.
func New(res Resources, opts Options) *Level {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	l := &Level{
		res:          res,
		opts:         opts,
		bricksIron:   instance.NewPool[entity.Brick](brickPool),
		bricksWood:   instance.NewPool[entity.Brick](brickPool),
		bricksPaper:  instance.NewPool[entity.Brick](brickPool),
		particles:    instance.NewPool[entity.Particle](sparkPool),
		coloredQuads: instance.NewPool[entity.Particle](sparkPool),
		sun:          lighting.DefaultSun(),
		point:        lighting.DefaultPointLight(),
		aspect:       1,
	}
	l.models = [modelCount]model.Drawable{
		ModelIron:       res.Models.Iron,
		ModelWood:       res.Models.Wood,
		ModelPaper:      res.Models.Paper,
		ModelPaddle:     res.Models.Paddle,
		ModelBall:       res.Models.Ball,
		ModelBackground: res.Models.Background,
		ModelQuad:       res.Models.Quad,
	}
	l.Resize(opts.Width, opts.Height)
	l.candidates = l.collisionOrder()
	return l
}

// Load populates the level from layout, replacing any previous content.
// An empty layout is rejected with levels.ErrEmptyLayout.
func (l *Level) Load(layout levels.Layout) (Stats, error) {
	if err := layout.Validate(); err != nil {
		return Stats{}, fmt.Errorf("load level %q: %w", layout.Name, err)
	}

	l.bricksIron.Clear()
	l.bricksWood.Clear()
	l.bricksPaper.Clear()
	l.particles.Clear()
	l.coloredQuads.Clear()

	var st Stats
	for i, row := range layout.Rows {
		if len(row) > st.MaxCols {
			st.MaxCols = len(row)
		}
		for j, code := range row {
			if code == levels.Empty {
				continue
			}
			b := entity.Brick{Transform: entity.At(math.Vec3{X: float32(i), Z: float32(j)})}
			switch code {
			case levels.Iron:
				b.Model = ModelIron
				l.bricksIron.Push(b)
				st.Iron++
			case levels.Wood:
				b.Model, b.Destructible = ModelWood, true
				l.bricksWood.Push(b)
				st.Wood++
			case levels.Paper:
				b.Model, b.Destructible = ModelPaper, true
				l.bricksPaper.Push(b)
				st.Paper++
			default:
				if code >= levels.Reserved {
					st.Reserved++
				}
				st.Ignored++
			}
		}
	}
	l.stats = st

	l.bricksIron.SetModel(l.models[ModelIron])
	l.bricksWood.SetModel(l.models[ModelWood])
	l.bricksPaper.SetModel(l.models[ModelPaper])
	l.particles.SetModel(l.models[ModelIron])
	l.coloredQuads.SetModel(l.models[ModelQuad])

	n := float32(st.MaxCols)
	mid := n/2 - 0.5*brickSize
	f := l.opts.Frustum
	l.frustum = shadow.LevelFrustum(st.MaxCols, f.Near, f.Far, f.Margin)
	l.camera = camera.NewOverhead(math.Vec3{}, camera.FieldVolume(st.MaxCols, 1, 10))

	l.sun.Eye = math.Vec3{X: mid, Y: 6, Z: mid}
	l.sun.Center = math.Vec3{X: mid, Z: mid}

	l.background = entity.Transform{
		Position: math.Vec3{X: mid, Z: mid},
		Scale:    math.Splat(1.2),
	}

	l.walls = [3]wall{
		{normal: math.Vec3{Z: 1}, point: math.Vec3{Z: -0.5 * brickSize}},
		{normal: math.Vec3{X: 1}, point: math.Vec3{X: -0.5 * brickSize}},
		{normal: math.Vec3{Z: -1}, point: math.Vec3{Z: n - 0.5*brickSize}},
	}

	l.player = entity.Player{
		Transform: entity.Transform{
			Position: math.Vec3{X: 10, Z: 7.5},
			Scale:    math.Vec3{X: 0.5, Y: 1, Z: 2},
		},
		Model: ModelPaddle,
	}
	l.ball = entity.Ball{
		Transform: entity.At(l.player.Position.Sub(math.Vec3{X: 1, Z: 0.25}.Scale(4))),
		Radius:    ballRadius,
		Velocity:  math.Vec3{X: -3, Z: -3}.Scale(l.opts.BallSpeed),
		Model:     ModelBall,
	}

	logger.Info("level loaded",
		zap.String("name", layout.Name),
		zap.Int("iron", st.Iron),
		zap.Int("wood", st.Wood),
		zap.Int("paper", st.Paper),
		zap.Int("ignored", st.Ignored),
		zap.Int("reserved", st.Reserved),
		zap.Int("maxCols", st.MaxCols))
	return st, nil
}

// Resize updates the aspect ratio of the camera projection.
func (l *Level) Resize(width, height int32) {
	if width > 0 && height > 0 {
		l.aspect = float32(width) / float32(height)
	}
}

// IsCompleted reports whether the ball has left through the exit edge.
func (l *Level) IsCompleted() bool {
	return l.ball.Position.X >= l.opts.ExitThreshold
}

// Stats returns the counts of the last Load.
func (l *Level) Stats() Stats {
	return l.stats
}

// Remaining returns the number of destructible bricks left.
func (l *Level) Remaining() int {
	return l.bricksWood.Len() + l.bricksPaper.Len()
}

// Ball returns the ball.
func (l *Level) Ball() entity.Ball {
	return l.ball
}

// Camera returns the level camera. It is nil before Load.
func (l *Level) Camera() *camera.Camera {
	return l.camera
}
