package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/breakout3d/internal/engine/shader"
)

// Resolver tone-maps an HDR color texture onto the current framebuffer with
// a full-screen triangle.
type Resolver struct {
	program  shader.Program
	exposure float32
	vao      uint32
}

// NewResolver creates a resolver drawing through the tone-map program with a
// fixed exposure.
func NewResolver(program shader.Program, exposure float32) *Resolver {
	r := &Resolver{program: program, exposure: exposure}
	// Core profile requires a bound VAO even for attribute-less draws.
	gl.GenVertexArrays(1, &r.vao)
	return r
}

// Exposure returns the tone-map exposure.
func (r *Resolver) Exposure() float32 {
	return r.exposure
}

// Resolve clears the default framebuffer and draws hdrTexture onto it.
func (r *Resolver) Resolve(hdrTexture uint32) {
	ClearScreen()
	gl.Disable(gl.DEPTH_TEST)
	r.program.Bind()
	r.program.SetTexture(gl.TEXTURE_2D, "hdrBuffer", hdrTexture)
	r.program.SetFloat("exposure", r.exposure)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	r.program.Unbind()
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy releases the vertex array.
func (r *Resolver) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}
