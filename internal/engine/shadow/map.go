package shadow

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/breakout3d/internal/engine/framebuffer"
)

// Map is a depth-only framebuffer for directional light shadows.
type Map struct {
	fbo          uint32
	depthTexture uint32
	resolution   int32
	prevViewport [4]int32
}

// NewMap creates a square depth map.
func NewMap(resolution int32) (*Map, error) {
	sm := &Map{resolution: resolution}

	gl.GenFramebuffers(1, &sm.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.fbo)

	gl.GenTextures(1, &sm.depthTexture)
	gl.BindTexture(gl.TEXTURE_2D, sm.depthTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, resolution, resolution, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	// Outside the frustum reads as fully lit.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := []float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.depthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	err := framebuffer.StatusError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err != nil {
		sm.Destroy()
		return nil, fmt.Errorf("shadow map: %w", err)
	}
	return sm, nil
}

// Clear resets the depth map to the far plane.
func (sm *Map) Clear() {
	clearDepth(sm.fbo)
}

// Begin binds the map for a depth pass and sets the viewport to its size.
func (sm *Map) Begin() {
	beginDepth(sm.fbo, sm.resolution, &sm.prevViewport)
}

// End restores the default framebuffer and the previous viewport.
func (sm *Map) End() {
	endDepth(&sm.prevViewport)
}

// Texture returns the depth texture for sampling in the lit pass.
func (sm *Map) Texture() uint32 {
	return sm.depthTexture
}

// Destroy releases the GPU resources.
func (sm *Map) Destroy() {
	if sm.fbo != 0 {
		gl.DeleteFramebuffers(1, &sm.fbo)
		sm.fbo = 0
	}
	if sm.depthTexture != 0 {
		gl.DeleteTextures(1, &sm.depthTexture)
		sm.depthTexture = 0
	}
}

func clearDepth(fbo uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// beginDepth leaves the depth buffer intact so several passes can
// accumulate into one map between Clear calls.
func beginDepth(fbo uint32, resolution int32, prev *[4]int32) {
	gl.GetIntegerv(gl.VIEWPORT, &prev[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.Viewport(0, 0, resolution, resolution)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
}

func endDepth(prev *[4]int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(prev[0], prev[1], prev[2], prev[3])
	gl.CullFace(gl.BACK)
}
