package shadow

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/breakout3d/internal/engine/framebuffer"
)

// CubeMap is a six-face depth map for point light shadows. The depth shader
// writes distance to the light divided by the far plane.
type CubeMap struct {
	fbo          uint32
	depthCube    uint32
	resolution   int32
	farPlane     float32
	prevViewport [4]int32
}

// NewCubeMap creates a depth cube map. farPlane bounds the encoded distance.
func NewCubeMap(resolution int32, farPlane float32) (*CubeMap, error) {
	cm := &CubeMap{resolution: resolution, farPlane: farPlane}

	gl.GenTextures(1, &cm.depthCube)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cm.depthCube)
	for face := uint32(0); face < 6; face++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face, 0, gl.DEPTH_COMPONENT24,
			resolution, resolution, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(1, &cm.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, cm.fbo)
	gl.FramebufferTexture(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, cm.depthCube, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	err := framebuffer.StatusError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	if err != nil {
		cm.Destroy()
		return nil, fmt.Errorf("shadow cube map: %w", err)
	}
	return cm, nil
}

// FarPlane returns the distance encoded as depth 1.0.
func (cm *CubeMap) FarPlane() float32 {
	return cm.farPlane
}

// Clear resets all six faces.
func (cm *CubeMap) Clear() {
	clearDepth(cm.fbo)
}

// Begin binds the cube map for a layered depth pass.
func (cm *CubeMap) Begin() {
	beginDepth(cm.fbo, cm.resolution, &cm.prevViewport)
}

// End restores the default framebuffer and the previous viewport.
func (cm *CubeMap) End() {
	endDepth(&cm.prevViewport)
}

// Texture returns the depth cube texture.
func (cm *CubeMap) Texture() uint32 {
	return cm.depthCube
}

// Destroy releases the GPU resources.
func (cm *CubeMap) Destroy() {
	if cm.fbo != 0 {
		gl.DeleteFramebuffers(1, &cm.fbo)
		cm.fbo = 0
	}
	if cm.depthCube != 0 {
		gl.DeleteTextures(1, &cm.depthCube)
		cm.depthCube = 0
	}
}
