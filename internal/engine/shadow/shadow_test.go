package shadow

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/breakout3d/pkg/math"
)

func near(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-4
}

func TestLevelFrustum(t *testing.T) {
	tests := []struct {
		maxCols int
		margin  float32
		half    float32
	}{
		{12, 0.5, 6.5},
		{1, 0.5, 1},
		{7, 0, 3.5},
	}
	for _, tt := range tests {
		f := LevelFrustum(tt.maxCols, 1, 10, tt.margin)
		if f.Left != -tt.half || f.Right != tt.half || f.Bottom != -tt.half || f.Top != tt.half {
			t.Errorf("LevelFrustum(%d, margin %v) = %+v, want half %v", tt.maxCols, tt.margin, f, tt.half)
		}
		if f.Near != 1 || f.Far != 10 {
			t.Errorf("near/far = %v/%v", f.Near, f.Far)
		}
	}
}

func TestLightSpaceMatrixFramesField(t *testing.T) {
	const maxCols = 12
	mid := float32(maxCols)/2 - 0.5
	eye := math.Vec3{X: mid, Y: 6, Z: mid}
	center := math.Vec3{X: mid, Z: mid}
	view := math.LookAt(eye, center, math.Vec3{X: -1})

	lsm := LevelFrustum(maxCols, 1, 10, 0.5).LightSpaceMatrix(view)

	// Brick corners on the field edge land inside clip space.
	for _, p := range []math.Vec3{
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: maxCols - 0.5, Y: 0.5, Z: maxCols - 0.5},
		{X: -0.5, Y: -0.5, Z: maxCols - 0.5},
	} {
		c := lsm.TransformVec3(p)
		if c.X < -1 || c.X > 1 || c.Y < -1 || c.Y > 1 || c.Z < -1 || c.Z > 1 {
			t.Errorf("%v maps outside clip space: %v", p, c)
		}
	}
	// The field center maps to the clip-space center.
	c := lsm.TransformVec3(center)
	if !near(c.X, 0) || !near(c.Y, 0) {
		t.Errorf("center maps to %v, want x=y=0", c)
	}
}

func TestCubeFaceMatrices(t *testing.T) {
	pos := math.Vec3{X: 5, Y: 1.5, Z: 4.5}
	faces := CubeFaceMatrices(pos, 0.1, 25)

	dirs := []math.Vec3{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}}
	for i, d := range dirs {
		p := pos.Add(d.Scale(2))
		c := faces[i].TransformVec3(p)
		if !near(c.X, 0) || !near(c.Y, 0) {
			t.Errorf("face %d: point along its axis maps to %v, want screen center", i, c)
		}
		if c.Z < -1 || c.Z > 1 {
			t.Errorf("face %d: depth %v outside [-1,1]", i, c.Z)
		}
	}
}
