package camera

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/breakout3d/pkg/math"
)

func near(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-4
}

func TestOverheadLooksAtTarget(t *testing.T) {
	target := math.Vec3{X: 5.5, Z: 5.5}
	c := NewOverhead(target, FieldVolume(12, 1, 10))

	if pos := c.Position(); pos != (math.Vec3{X: 5.5, Y: 5, Z: 5.5}) {
		t.Errorf("Position() = %v", pos)
	}
	v := c.ViewMatrix().TransformVec3(target)
	if !near(v.X, 0) || !near(v.Y, 0) || !near(v.Z, -5) {
		t.Errorf("target in view space = %v, want (0,0,-5)", v)
	}
	// Screen up is -X.
	up := c.ViewMatrix().TransformVec3(target.Add(math.Vec3{X: -1}))
	if !near(up.Y, 1) {
		t.Errorf("-X in view space = %v, want y = 1", up)
	}
}

func TestFieldVolume(t *testing.T) {
	tests := []struct {
		maxCols int
		lo, hi  float32
	}{
		{1, -0.5, 0.5},
		{12, -11.5, 0.5},
		{3, -2.5, 0.5},
	}
	for _, tt := range tests {
		v := FieldVolume(tt.maxCols, 1, 10)
		if v.Left != tt.lo || v.Bottom != tt.lo || v.Right != tt.hi || v.Top != tt.hi {
			t.Errorf("FieldVolume(%d) = %+v, want [%v, %v]", tt.maxCols, v, tt.lo, tt.hi)
		}
		if v.Near != 1 || v.Far != 10 {
			t.Errorf("FieldVolume(%d) depth = %v..%v", tt.maxCols, v.Near, v.Far)
		}
	}
}

func TestProjectionFramesField(t *testing.T) {
	// Bricks sit at (row, 0, col) for row, col in [0, maxCols).
	c := NewOverhead(math.Vec3{}, FieldVolume(12, 1, 10))
	vp := c.Projection(1).Mul(c.ViewMatrix())

	corners := []math.Vec3{
		{X: -0.5, Z: -0.5},
		{X: 11.5, Z: 11.5},
		{X: -0.5, Z: 11.5},
		{X: 11.5, Z: -0.5},
	}
	for _, p := range corners {
		ndc := vp.TransformVec3(p)
		if !near(abs(ndc.X), 1) || !near(abs(ndc.Y), 1) {
			t.Errorf("corner %v maps to %v, want on the NDC border", p, ndc)
		}
	}
	// Row 0 is at the top of the screen.
	if top := vp.TransformVec3(math.Vec3{X: -0.5, Z: 5}); !near(top.Y, 1) {
		t.Errorf("row edge maps to y = %v, want 1", top.Y)
	}
}

func TestProjectionAspect(t *testing.T) {
	c := NewOverhead(math.Vec3{}, Volume{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10})
	wide := c.Projection(2).TransformVec3(math.Vec3{X: 2, Y: 1, Z: -5})
	if !near(wide.X, 1) || !near(wide.Y, 1) {
		t.Errorf("aspect 2 corner = %v", wide)
	}
	tall := c.Projection(0.5).TransformVec3(math.Vec3{X: 1, Y: 2, Z: -5})
	if !near(tall.X, 1) || !near(tall.Y, 1) {
		t.Errorf("aspect 0.5 corner = %v", tall)
	}
}

func TestPan(t *testing.T) {
	tests := []struct {
		name      string
		right, up float32
		want      math.Vec3
	}{
		{"up moves toward -X", 0, 1, math.Vec3{X: -5}},
		{"right moves toward -Z", 1, 0, math.Vec3{Z: -5}},
		{"none", 0, 0, math.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOverhead(math.Vec3{}, FieldVolume(1, 1, 10))
			c.Pan(tt.right, tt.up, 1)
			if !near(c.Target.X, tt.want.X) || c.Target.Y != 0 || !near(c.Target.Z, tt.want.Z) {
				t.Errorf("Target = %v, want %v", c.Target, tt.want)
			}
		})
	}
}

func TestZoomClamps(t *testing.T) {
	c := NewOverhead(math.Vec3{}, FieldVolume(1, 1, 10))
	c.Zoom(-1, 10)
	if c.ZoomFactor != c.MinZoom {
		t.Errorf("ZoomFactor = %v, want min %v", c.ZoomFactor, c.MinZoom)
	}
	c.Zoom(1, 100)
	if c.ZoomFactor != c.MaxZoom {
		t.Errorf("ZoomFactor = %v, want max %v", c.ZoomFactor, c.MaxZoom)
	}
}

func TestReset(t *testing.T) {
	c := NewOverhead(math.Vec3{X: 1}, FieldVolume(1, 1, 10))
	c.Pan(1, 1, 1)
	c.Zoom(1, 1)
	c.Reset()
	if c.Target != (math.Vec3{X: 1}) || c.Eye.Y != 5 || c.ZoomFactor != 1 {
		t.Errorf("after Reset: target %v eye %v zoom %v", c.Target, c.Eye, c.ZoomFactor)
	}
	c.Pan(1, 0, 1)
	c.Reset()
	if c.Target != (math.Vec3{X: 1}) {
		t.Errorf("second Reset: target %v", c.Target)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
