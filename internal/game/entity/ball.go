package entity

import (
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Ball is the single moving sphere of a level.
type Ball struct {
	Transform
	Radius   float32
	Velocity math.Vec3 // units per second
	Model    ModelID
}

// Move advances the ball by one Euler step.
func (b *Ball) Move(dt float32) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Hit is the outcome of a collision test.
type Hit int

const (
	Miss   Hit = iota // not touching
	Graze             // touching but already moving away, velocity untouched
	Bounce            // velocity was reflected
)

// CollideBox tests the ball against an axis-aligned box. On contact the
// velocity component along the X or Z axis of least penetration is flipped
// if it points into the box. Y is never reflected.
func (b *Ball) CollideBox(center, half math.Vec3) Hit {
	c := b.Position
	closest := c.Clamp(center.Sub(half), center.Add(half))
	if c.Sub(closest).LengthSqr() > b.Radius*b.Radius {
		return Miss
	}

	dx := c.X - center.X
	dz := c.Z - center.Z
	penX := half.X + b.Radius - abs(dx)
	penZ := half.Z + b.Radius - abs(dz)

	if penX <= penZ {
		if into(b.Velocity.X, dx) {
			b.Velocity.X = -b.Velocity.X
			return Bounce
		}
	} else if into(b.Velocity.Z, dz) {
		b.Velocity.Z = -b.Velocity.Z
		return Bounce
	}
	return Graze
}

// CollidePlane tests the ball against an infinite plane through point with
// unit normal n. The ball touches when its center is less than Radius in
// front of the plane, or behind it. The velocity is reflected about n only
// while moving against the normal.
func (b *Ball) CollidePlane(n, point math.Vec3) Hit {
	if b.Position.Sub(point).Dot(n) >= b.Radius {
		return Miss
	}
	if b.Velocity.Dot(n) < 0 {
		b.Velocity = b.Velocity.Reflect(n)
		return Bounce
	}
	return Graze
}

// into reports whether velocity v moves toward the box along an axis where
// the ball sits at offset d from the box center. A centered ball always
// counts as moving in.
func into(v, d float32) bool {
	if d == 0 {
		return v != 0
	}
	return v*d < 0
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
