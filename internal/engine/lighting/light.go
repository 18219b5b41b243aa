// Package lighting holds the sun and point light and exposes them to shaders.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Sun is a directional light shining from Eye toward Center.
type Sun struct {
	Eye      math.Vec3
	Center   math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// DefaultSun returns a dim white sun above the origin.
func DefaultSun() Sun {
	return Sun{
		Eye:      math.Vec3{Y: 6},
		Ambient:  math.Splat(0.1),
		Diffuse:  math.Splat(0.6),
		Specular: math.Splat(0.3),
	}
}

// Direction returns the normalized direction the light travels.
func (s Sun) Direction() math.Vec3 {
	return s.Center.Sub(s.Eye).Normalize()
}

// ViewMatrix returns the view from Eye toward Center.
func (s Sun) ViewMatrix() math.Mat4 {
	return math.LookAt(s.Eye, s.Center, upFor(s.Direction()))
}

// Cast writes the light to the struct uniform named prefix, e.g. "sun[0]".
func (s Sun) Cast(prefix string, p shader.Program) {
	p.SetVec3(prefix+".eye", s.Eye)
	p.SetVec3(prefix+".center", s.Center)
	p.SetVec3(prefix+".ambient", s.Ambient)
	p.SetVec3(prefix+".diffuse", s.Diffuse)
	p.SetVec3(prefix+".specular", s.Specular)
}

// PointLight is an omnidirectional light with distance attenuation
// 1 / (Constant + Linear*d + Quadratic*d*d).
type PointLight struct {
	Eye       math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultPointLight returns a warm light with a short falloff.
func DefaultPointLight() PointLight {
	return PointLight{
		Eye:       Orbit(0),
		Ambient:   math.Splat(0.05),
		Diffuse:   math.Vec3{X: 3, Y: 2.4, Z: 1.8},
		Specular:  math.Splat(1),
		Constant:  1,
		Linear:    0.09,
		Quadratic: 0.032,
	}
}

// Cast writes the light to the struct uniform named prefix, e.g. "pointLights[0]".
func (l PointLight) Cast(prefix string, p shader.Program) {
	p.SetVec3(prefix+".eye", l.Eye)
	p.SetVec3(prefix+".ambient", l.Ambient)
	p.SetVec3(prefix+".diffuse", l.Diffuse)
	p.SetVec3(prefix+".specular", l.Specular)
	p.SetFloat(prefix+".constant", l.Constant)
	p.SetFloat(prefix+".linear", l.Linear)
	p.SetFloat(prefix+".quadratic", l.Quadratic)
}

// Orbit returns the point-light position at time t seconds: an ellipse over
// the play field at height 1.5.
func Orbit(t float32) math.Vec3 {
	a := 3 * t
	return math.Vec3{
		X: 5 + 4.5*math32.Sin(a),
		Y: 1.5,
		Z: 4.5 + 5.5*math32.Cos(a),
	}
}

// upFor picks an up vector that is not parallel to dir.
func upFor(dir math.Vec3) math.Vec3 {
	if dir.Y > 0.99 || dir.Y < -0.99 {
		return math.Vec3{X: -1}
	}
	return math.Vec3{Y: 1}
}
