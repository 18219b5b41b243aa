// Package model loads meshes and materials and draws them with OpenGL.
package model

import (
	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Vertex is the interleaved vertex layout uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	Tangent  [3]float32
}

// vertexFloats is the number of float32 in a Vertex.
const vertexFloats = 11

// ImageRef points at a texture image either on disk (Path) or in memory (Data).
// Key identifies the image for deduplication.
type ImageRef struct {
	Key  string
	Path string
	Data []byte
}

// IsZero reports whether the reference names no image.
func (r ImageRef) IsZero() bool {
	return r.Path == "" && r.Data == nil
}

// Material describes the textures of one mesh. Missing maps fall back to flat
// textures derived from BaseColor.
type Material struct {
	Name      string
	Diffuse   ImageRef
	Specular  ImageRef
	Normal    ImageRef
	BaseColor math.Vec4
	Shininess float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// MeshData is one CPU-side mesh ready for upload.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Material Material
	Bounds   Bounds
}

// Data is a CPU-side model: the meshes of one asset.
type Data struct {
	Name   string
	Meshes []MeshData
}

// Drawable is anything that can be drawn once or as an instanced batch.
type Drawable interface {
	// Draw draws the model with the given model matrix.
	Draw(p shader.Program, model math.Mat4)
	// DrawInstanced draws one instance per matrix in a single call per mesh.
	// colors is either nil or the same length as models.
	DrawInstanced(p shader.Program, models []math.Mat4, colors []math.Vec4)
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], v.Position[i])
			b.Max[i] = max(b.Max[i], v.Position[i])
		}
	}
	return b
}
