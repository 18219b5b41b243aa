// Package camera provides the level's look-at camera.
package camera

import (
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Volume is an orthographic view volume in view space.
type Volume struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// FieldVolume frames a play field of maxCols unit bricks with half a brick
// of margin, as seen by an overhead camera at the origin with screen up
// along -X and screen right along -Z.
func FieldVolume(maxCols int, near, far float32) Volume {
	const brick = 1
	hi := 0.5 * float32(brick)
	lo := -float32(maxCols) - 0.5*brick + 1
	return Volume{Left: lo, Right: hi, Bottom: lo, Top: hi, Near: near, Far: far}
}

// Camera looks from Target+Eye toward Target+Center through an
// orthographic Volume. Eye and Center are the pose relative to Target;
// panning moves Target only.
type Camera struct {
	Eye    math.Vec3
	Center math.Vec3
	Up     math.Vec3
	Target math.Vec3

	Volume Volume

	// Scale applied to Volume about its center. Larger shows more.
	ZoomFactor       float32
	MinZoom, MaxZoom float32
	PanSpeed         float32 // units per second
	ZoomSpeed        float32 // zoom factor per second

	home pose
}

type pose struct {
	eye, center, up, target math.Vec3
	zoom                    float32
}

// NewOverhead returns a camera 5 units above target looking straight down,
// with screen up along -X.
func NewOverhead(target math.Vec3, v Volume) *Camera {
	c := &Camera{
		Eye:        math.Vec3{Y: 5},
		Up:         math.Vec3{X: -1},
		Target:     target,
		Volume:     v,
		ZoomFactor: 1,
		MinZoom:    0.25,
		MaxZoom:    4,
		PanSpeed:   5,
		ZoomSpeed:  1,
	}
	c.home = pose{c.Eye, c.Center, c.Up, c.Target, c.ZoomFactor}
	return c
}

// Position returns the eye in world space.
func (c *Camera) Position() math.Vec3 {
	return c.Target.Add(c.Eye)
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target.Add(c.Center), c.Up)
}

// Projection returns the orthographic projection for the given aspect ratio.
// The volume is widened along the longer screen axis so the field keeps its
// proportions.
func (c *Camera) Projection(aspect float32) math.Mat4 {
	v := c.Volume
	cx, cy := (v.Left+v.Right)/2, (v.Bottom+v.Top)/2
	hw, hh := (v.Right-v.Left)/2*c.ZoomFactor, (v.Top-v.Bottom)/2*c.ZoomFactor
	switch {
	case aspect > 1:
		hw *= aspect
	case aspect > 0 && aspect < 1:
		hh /= aspect
	}
	return math.Ortho(cx-hw, cx+hw, cy-hh, cy+hh, v.Near, v.Far)
}

// Pan moves the target on the XZ plane along the screen axes. right and up
// are in [-1, 1].
func (c *Camera) Pan(right, up, dt float32) {
	forward := c.Center.Sub(c.Eye).Normalize()
	screenRight := forward.Cross(c.Up).Normalize()
	screenUp := screenRight.Cross(forward)

	move := screenRight.Scale(right).Add(screenUp.Scale(up))
	move.Y = 0
	if move.LengthSqr() == 0 {
		return
	}
	c.Target = c.Target.Add(move.Scale(c.PanSpeed * dt))
}

// Zoom grows (positive) or shrinks the visible area, clamped to
// MinZoom..MaxZoom.
func (c *Camera) Zoom(amount, dt float32) {
	z := c.ZoomFactor + amount*c.ZoomSpeed*dt
	c.ZoomFactor = min(max(z, c.MinZoom), c.MaxZoom)
}

// Reset restores the pose given to NewOverhead.
func (c *Camera) Reset() {
	c.Eye, c.Center, c.Up, c.Target = c.home.eye, c.home.center, c.home.up, c.home.target
	c.ZoomFactor = c.home.zoom
}
