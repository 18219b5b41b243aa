// Package entity provides the placed objects of a level: bricks, the ball,
// the paddle and particles.
package entity

import (
	"github.com/Faultbox/breakout3d/pkg/math"
)

// ModelID indexes the level's model table. Entities never own models.
type ModelID int

// Transform places an entity in the world. Rotation is Euler degrees.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// At returns a unit-scale transform at position.
func At(position math.Vec3) Transform {
	return Transform{Position: position, Scale: math.Splat(1)}
}

// Matrix returns the model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Position, t.Rotation, t.Scale)
}

// HalfExtents returns half the scale, the box half-size of a unit-cube model.
func (t Transform) HalfExtents() math.Vec3 {
	return t.Scale.Scale(0.5)
}

// Brick is a grid cell occupant. Destructible bricks are removed on their
// first hit.
type Brick struct {
	Transform
	Model        ModelID
	Destructible bool
}

// ModelMatrix returns the instance matrix.
func (b Brick) ModelMatrix() math.Mat4 {
	return b.Matrix()
}

// Player is the paddle.
type Player struct {
	Transform
	Model ModelID
}

// Slide moves the paddle along Z by dz, keeping it between minZ and maxZ.
func (p *Player) Slide(dz, minZ, maxZ float32) {
	half := p.HalfExtents().Z
	z := p.Position.Z + dz
	lo, hi := minZ+half, maxZ-half
	if lo > hi {
		lo, hi = (minZ+maxZ)/2, (minZ+maxZ)/2
	}
	p.Position.Z = min(max(z, lo), hi)
}

// Particle is a short-lived colored spark. Tau is the remaining lifetime in
// seconds.
type Particle struct {
	Transform
	Color math.Vec4
	Tau   float32
}

// ModelMatrix returns the instance matrix.
func (p Particle) ModelMatrix() math.Mat4 {
	return p.Matrix()
}

// InstanceColor returns the per-instance color.
func (p Particle) InstanceColor() math.Vec4 {
	return p.Color
}

// Age decrements Tau by dt and reports whether the particle has expired.
func (p *Particle) Age(dt float32) bool {
	p.Tau -= dt
	return p.Tau <= 0
}
