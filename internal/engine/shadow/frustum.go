// Package shadow renders depth maps for the sun and the point light.
package shadow

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/breakout3d/pkg/math"
)

// Frustum is the orthographic volume of the directional shadow map, in the
// light's view space.
type Frustum struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// LevelFrustum frames a square play field of maxCols bricks plus margin on
// every side, for a light looking at the field's center.
func LevelFrustum(maxCols int, near, far, margin float32) Frustum {
	half := float32(maxCols)/2 + margin
	return Frustum{
		Left: -half, Right: half,
		Bottom: -half, Top: half,
		Near: near, Far: far,
	}
}

// Projection returns the orthographic projection.
func (f Frustum) Projection() math.Mat4 {
	return math.Ortho(f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far)
}

// LightSpaceMatrix combines the projection with the light's view matrix.
func (f Frustum) LightSpaceMatrix(view math.Mat4) math.Mat4 {
	return f.Projection().Mul(view)
}

// cubeFaces lists target direction and up vector per cube face in
// +X, -X, +Y, -Y, +Z, -Z order.
var cubeFaces = [6][2]math.Vec3{
	{{X: 1}, {Y: -1}},
	{{X: -1}, {Y: -1}},
	{{Y: 1}, {Z: 1}},
	{{Y: -1}, {Z: -1}},
	{{Z: 1}, {Y: -1}},
	{{Z: -1}, {Y: -1}},
}

// CubeFaceMatrices returns the six view-projection matrices of a cube map
// centered on pos, ordered like the GL cube map faces.
func CubeFaceMatrices(pos math.Vec3, near, far float32) [6]math.Mat4 {
	proj := math.Perspective(math32.Pi/2, 1, near, far)
	var out [6]math.Mat4
	for i, f := range cubeFaces {
		out[i] = proj.Mul(math.LookAt(pos, pos.Add(f[0]), f[1]))
	}
	return out
}
