// Package framebuffer provides OpenGL off-screen render targets.
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/logger"
)

// ErrIncomplete is returned when the driver rejects a framebuffer setup.
var ErrIncomplete = errors.New("framebuffer incomplete")

// Format selects the color attachment storage.
type Format int

const (
	// LDR is 8 bits per channel.
	LDR Format = iota
	// HDR is 16-bit float per channel, for values above 1.0.
	HDR
)

func (f Format) String() string {
	if f == HDR {
		return "RGBA16F"
	}
	return "RGBA8"
}

// glFormat returns internal format and pixel type for the color texture.
func (f Format) glFormat() (internal int32, pixelType uint32) {
	if f == HDR {
		return gl.RGBA16F, gl.FLOAT
	}
	return gl.RGBA8, gl.UNSIGNED_BYTE
}

// Framebuffer is an off-screen target with a color texture and a depth buffer.
type Framebuffer struct {
	fbo          uint32
	colorTexture uint32
	depthRBO     uint32
	width        int32
	height       int32
	format       Format
	prevViewport [4]int32
}

// New creates a framebuffer of the given size and color format.
func New(width, height int32, format Format) (*Framebuffer, error) {
	fb := &Framebuffer{
		width:  max(width, 1),
		height: max(height, 1),
		format: format,
	}
	if err := fb.create(); err != nil {
		return nil, fmt.Errorf("creating %s framebuffer: %w", format, err)
	}
	logger.Debug("framebuffer created",
		zap.Stringer("format", format),
		zap.Int32("width", fb.width),
		zap.Int32("height", fb.height))
	return fb, nil
}

func (fb *Framebuffer) create() error {
	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	internal, pixelType := fb.format.glFormat()
	gl.GenTextures(1, &fb.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, fb.width, fb.height, 0, gl.RGBA, pixelType, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.colorTexture, 0)

	gl.GenRenderbuffers(1, &fb.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depthRBO)

	err := StatusError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err != nil {
		fb.Destroy()
		return err
	}
	return nil
}

// StatusError converts a glCheckFramebufferStatus result to an error
// wrapping ErrIncomplete, or nil when complete.
func StatusError(status uint32) error {
	if status == gl.FRAMEBUFFER_COMPLETE {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIncomplete, statusName(status))
}

func statusName(status uint32) string {
	switch status {
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "incomplete attachment"
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "missing attachment"
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "incomplete draw buffer"
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "incomplete read buffer"
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return "unsupported"
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "incomplete multisample"
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return "incomplete layer targets"
	default:
		return fmt.Sprintf("status 0x%x", status)
	}
}

// Bind makes this framebuffer the render target and sets the viewport to
// its size. The previous viewport is restored by Unbind.
func (fb *Framebuffer) Bind() {
	gl.GetIntegerv(gl.VIEWPORT, &fb.prevViewport[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Unbind restores the default framebuffer and the viewport saved by Bind.
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	v := fb.prevViewport
	gl.Viewport(v[0], v[1], v[2], v[3])
}

// Clear clears color and depth with the given color.
func (fb *Framebuffer) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ColorTexture returns the color attachment texture.
func (fb *Framebuffer) ColorTexture() uint32 {
	return fb.colorTexture
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// Resize reallocates the attachments if the size changed.
func (fb *Framebuffer) Resize(width, height int32) {
	width, height = max(width, 1), max(height, 1)
	if width == fb.width && height == fb.height {
		return
	}
	fb.width, fb.height = width, height

	internal, pixelType := fb.format.glFormat()
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, fb.width, fb.height, 0, gl.RGBA, pixelType, nil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
}

// Destroy releases all OpenGL resources.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.colorTexture != 0 {
		gl.DeleteTextures(1, &fb.colorTexture)
		fb.colorTexture = 0
	}
	if fb.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &fb.depthRBO)
		fb.depthRBO = 0
	}
}
