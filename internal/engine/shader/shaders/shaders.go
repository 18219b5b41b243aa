// Package shaders embeds the GLSL sources used by the renderer.
package shaders

import (
	_ "embed"

	"github.com/Faultbox/breakout3d/internal/engine/shader"
)

//go:embed lit.vert
var litVert string

//go:embed lit_instanced.vert
var litInstancedVert string

//go:embed lit.frag
var litFrag string

//go:embed depth.vert
var depthVert string

//go:embed depth_instanced.vert
var depthInstancedVert string

//go:embed depth.frag
var depthFrag string

//go:embed cube_depth.vert
var cubeDepthVert string

//go:embed cube_depth_instanced.vert
var cubeDepthInstancedVert string

//go:embed cube_depth.geom
var cubeDepthGeom string

//go:embed cube_depth.frag
var cubeDepthFrag string

//go:embed colored.vert
var coloredVert string

//go:embed colored.frag
var coloredFrag string

//go:embed hdr.vert
var hdrVert string

//go:embed hdr.frag
var hdrFrag string

// Lit draws individually placed models with sun and point-light shadows.
func Lit() shader.Source {
	return shader.Source{Name: "lit", Vertex: litVert, Fragment: litFrag}
}

// LitInstanced is Lit with the model matrix taken from instance attributes.
func LitInstanced() shader.Source {
	return shader.Source{Name: "lit_instanced", Vertex: litInstancedVert, Fragment: litFrag}
}

// Depth writes directional shadow depth for single models.
func Depth() shader.Source {
	return shader.Source{Name: "depth", Vertex: depthVert, Fragment: depthFrag}
}

// DepthInstanced writes directional shadow depth for instance pools.
func DepthInstanced() shader.Source {
	return shader.Source{Name: "depth_instanced", Vertex: depthInstancedVert, Fragment: depthFrag}
}

// CubeDepth writes linear point-light depth to all six cube faces.
func CubeDepth() shader.Source {
	return shader.Source{Name: "cube_depth", Vertex: cubeDepthVert, Geometry: cubeDepthGeom, Fragment: cubeDepthFrag}
}

// CubeDepthInstanced is CubeDepth for instance pools.
func CubeDepthInstanced() shader.Source {
	return shader.Source{Name: "cube_depth_instanced", Vertex: cubeDepthInstancedVert, Geometry: cubeDepthGeom, Fragment: cubeDepthFrag}
}

// Colored draws unlit instanced quads tinted by a per-instance color.
func Colored() shader.Source {
	return shader.Source{Name: "colored", Vertex: coloredVert, Fragment: coloredFrag}
}

// HDR tone-maps the off-screen color buffer onto the default framebuffer.
func HDR() shader.Source {
	return shader.Source{Name: "hdr", Vertex: hdrVert, Fragment: hdrFrag}
}
