package level

import (
	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/engine/input"
	"github.com/Faultbox/breakout3d/internal/engine/instance"
	"github.com/Faultbox/breakout3d/internal/engine/lighting"
	"github.com/Faultbox/breakout3d/internal/game/entity"
	"github.com/Faultbox/breakout3d/internal/logger"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Contact names the surface the ball touched during an update.
type Contact string

// Contacts in priority order.
const (
	ContactNone   Contact = ""
	ContactPaddle Contact = "paddle"
	ContactWall1  Contact = "wall1"
	ContactWall2  Contact = "wall2"
	ContactWall3  Contact = "wall3"
	ContactWood   Contact = "wood"
	ContactPaper  Contact = "paper"
	ContactIron   Contact = "iron"
)

// candidate is one entry of the collision priority list.
type candidate struct {
	contact Contact
	test    func() bool
}

// collisionOrder lists every surface the ball can hit, highest priority
// first. A candidate matches only when it responds, by reflecting the ball
// or removing a brick. The first match ends the tick.
func (l *Level) collisionOrder() []candidate {
	return []candidate{
		{ContactPaddle, l.hitPaddle},
		{ContactWall1, func() bool { return l.hitWall(0) }},
		{ContactWall2, func() bool { return l.hitWall(1) }},
		{ContactWall3, func() bool { return l.hitWall(2) }},
		{ContactWood, func() bool { return l.hitBricks(l.bricksWood) }},
		{ContactPaper, func() bool { return l.hitBricks(l.bricksPaper) }},
		{ContactIron, func() bool { return l.hitBricks(l.bricksIron) }},
	}
}

func (l *Level) hitPaddle() bool {
	return l.ball.CollideBox(l.player.Position, l.player.HalfExtents()) == entity.Bounce
}

func (l *Level) hitWall(i int) bool {
	w := l.walls[i]
	return l.ball.CollidePlane(w.normal, w.point) == entity.Bounce
}

// hitBricks stops at the first brick that responds. A destructible brick in
// contact is removed; an indestructible one only counts when it bounces the
// ball.
func (l *Level) hitBricks(pool *instance.Pool[entity.Brick]) bool {
	for i := 0; i < pool.Len(); i++ {
		b := pool.Get(i)
		hit := l.ball.CollideBox(b.Position, b.HalfExtents())
		if hit == entity.Miss || (hit == entity.Graze && !b.Destructible) {
			continue
		}
		if b.Destructible {
			pool.Delete(i)
			l.spawnDebris(b)
			logger.Debug("brick destroyed",
				zap.Float32("x", b.Position.X),
				zap.Float32("z", b.Position.Z),
				zap.Int("remaining", l.Remaining()))
		}
		return true
	}
	return false
}

// Update advances the level by dt seconds. t is the time since start and
// drives the point-light orbit. It returns the surface that responded to
// the ball this tick, if any. A ball still overlapping a surface it already
// bounced off reports nothing.
func (l *Level) Update(dt, t float32, cmds input.Commands) Contact {
	l.spawnSpark()
	age(l.coloredQuads, dt)
	age(l.particles, dt)

	l.ball.Move(dt)

	contact := ContactNone
	for _, c := range l.candidates {
		if c.test() {
			contact = c.contact
			break
		}
	}

	l.point.Eye = lighting.Orbit(t)

	l.processCommands(dt, cmds)
	return contact
}

func (l *Level) processCommands(dt float32, cmds input.Commands) {
	if cmds.Paddle != 0 {
		// Screen right is -Z.
		dz := -cmds.Paddle * l.opts.PaddleSpeed * dt
		l.player.Slide(dz, -0.5*brickSize, float32(l.stats.MaxCols)-0.5*brickSize)
	}
	if l.camera == nil {
		return
	}
	if cmds.ResetCamera {
		l.camera.Reset()
	}
	l.camera.Pan(cmds.PanRight, cmds.PanUp, dt)
	if cmds.Zoom != 0 {
		l.camera.Zoom(cmds.Zoom, dt)
	}
}

// Spark tints range from red to orange.
var (
	sparkRed    = math.Vec3{X: 1}
	sparkOrange = math.Vec3{X: 1, Y: 0.5, Z: 0.1}
)

// spawnSpark emits one spark at the ball with random jitter, size, yaw and
// tint.
func (l *Level) spawnSpark() {
	r := l.opts.Rand
	tint := sparkRed.Lerp(sparkOrange, r.Float32())
	l.coloredQuads.Push(entity.Particle{
		Transform: entity.Transform{
			Position: l.ball.Position.Add(math.Vec3{
				X: 0.2 * r.Float32(),
				Y: 0.2 * r.Float32(),
				Z: 0.2 * r.Float32(),
			}),
			Rotation: math.Vec3{Y: 360 * r.Float32()},
			Scale:    math.Splat(0.2 * r.Float32()),
		},
		Color: math.Vec4{tint.X, tint.Y, tint.Z, 1},
		Tau:   l.opts.ParticleLifetime,
	})
}

// spawnDebris scatters small fragments where a brick broke.
func (l *Level) spawnDebris(b entity.Brick) {
	r := l.opts.Rand
	for range debrisCount {
		l.particles.Push(entity.Particle{
			Transform: entity.Transform{
				Position: b.Position.Add(math.Vec3{
					X: r.Float32() - 0.5,
					Y: 0.5 * r.Float32(),
					Z: r.Float32() - 0.5,
				}),
				Rotation: math.Vec3{X: 360 * r.Float32(), Y: 360 * r.Float32()},
				Scale:    math.Splat(0.1 + 0.15*r.Float32()),
			},
			Color: math.Vec4{1, 1, 1, 1},
			Tau:   4 * l.opts.ParticleLifetime,
		})
	}
}

// age decrements every particle's lifetime and removes the expired ones.
// After a swap-delete the same index holds an unvisited particle.
func age(pool *instance.Pool[entity.Particle], dt float32) {
	for i := 0; i < pool.Len(); {
		p := pool.Get(i)
		if p.Age(dt) {
			pool.Delete(i)
			continue
		}
		pool.Set(i, p)
		i++
	}
}
