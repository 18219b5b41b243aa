package shader

import (
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Program is a linked shader program addressed by uniform name.
// Rendering code depends on this interface rather than on GL handles.
type Program interface {
	Bind()
	Unbind()
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v math.Vec4)
	SetMat4(name string, m math.Mat4)
	// SetTexture binds tex to a texture unit owned by the sampler name and
	// points the sampler uniform at it. target is a GL texture target.
	SetTexture(target uint32, name string, tex uint32)
}
