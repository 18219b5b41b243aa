package model

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/internal/logger"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Instance attribute layout: a mat4 in locations 4-7 and a vec4 color in 8.
const (
	instanceModelLoc = 4
	instanceColorLoc = 8
	instanceFloats   = 20
)

type gpuMesh struct {
	name        string
	vao         uint32
	vbo         uint32
	ebo         uint32
	indexCount  int32
	textures    Textures
	instanceVBO uint32
	instanceCap int
}

// Model is a set of meshes uploaded to the GPU.
type Model struct {
	Name    string
	meshes  []*gpuMesh
	scratch []float32
}

// Upload resolves the textures of data through src and uploads its meshes.
// Texture substitutions are added to report.
func Upload(data *Data, src TextureSource, report *Report) (*Model, error) {
	m := &Model{Name: data.Name}
	for i := range data.Meshes {
		md := &data.Meshes[i]
		if len(md.Vertices) == 0 || len(md.Indices) == 0 {
			continue
		}
		tex, err := ResolveTextures(md.Name, md.Material, src, report)
		if err != nil {
			m.Destroy()
			return nil, fmt.Errorf("model %s: %w", data.Name, err)
		}
		gm := &gpuMesh{name: md.Name, textures: tex}
		gm.upload(md)
		m.meshes = append(m.meshes, gm)
	}
	logger.Debug("model uploaded", zap.String("name", data.Name), zap.Int("meshes", len(m.meshes)))
	return m, nil
}

func (g *gpuMesh) upload(md *MeshData) {
	flat := make([]float32, 0, len(md.Vertices)*vertexFloats)
	for _, v := range md.Vertices {
		flat = append(flat, v.Position[:]...)
		flat = append(flat, v.Normal[:]...)
		flat = append(flat, v.TexCoord[:]...)
		flat = append(flat, v.Tangent[:]...)
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*4, gl.Ptr(flat), gl.STATIC_DRAW)

	stride := int32(vertexFloats * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 8*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(md.Indices)*4, gl.Ptr(md.Indices), gl.STATIC_DRAW)

	g.indexCount = int32(len(md.Indices))
	gl.BindVertexArray(0)
}

func (g *gpuMesh) bindMaterial(p shader.Program) {
	p.SetTexture(gl.TEXTURE_2D, "diffuseMap", g.textures.Diffuse)
	p.SetTexture(gl.TEXTURE_2D, "specularMap", g.textures.Specular)
	p.SetTexture(gl.TEXTURE_2D, "normalMap", g.textures.Normal)
	p.SetFloat("shininess", g.textures.Shininess)
}

// Draw draws every mesh with the "model" uniform set to model.
func (m *Model) Draw(p shader.Program, model math.Mat4) {
	p.SetMat4("model", model)
	for _, g := range m.meshes {
		g.bindMaterial(p)
		gl.BindVertexArray(g.vao)
		gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// DrawInstanced uploads the instance matrices and colors once and issues one
// instanced draw per mesh.
func (m *Model) DrawInstanced(p shader.Program, models []math.Mat4, colors []math.Vec4) {
	if len(models) == 0 {
		return
	}
	m.scratch = packInstances(m.scratch[:0], models, colors)
	for _, g := range m.meshes {
		g.bindMaterial(p)
		g.uploadInstances(m.scratch, len(models))
		gl.BindVertexArray(g.vao)
		gl.DrawElementsInstanced(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil, int32(len(models)))
	}
	gl.BindVertexArray(0)
}

// packInstances interleaves a matrix and a color per instance. Missing colors
// are white.
func packInstances(buf []float32, models []math.Mat4, colors []math.Vec4) []float32 {
	for i, mat := range models {
		buf = append(buf, mat[:]...)
		c := math.RGBA(1, 1, 1, 1)
		if i < len(colors) {
			c = colors[i]
		}
		buf = append(buf, c[:]...)
	}
	return buf
}

func (g *gpuMesh) uploadInstances(buf []float32, count int) {
	const stride = int32(instanceFloats * 4)

	if g.instanceVBO == 0 {
		gl.GenBuffers(1, &g.instanceVBO)
		gl.BindVertexArray(g.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.instanceVBO)
		for i := uint32(0); i < 4; i++ {
			gl.EnableVertexAttribArray(instanceModelLoc + i)
			gl.VertexAttribPointerWithOffset(instanceModelLoc+i, 4, gl.FLOAT, false, stride, uintptr(i*16))
			gl.VertexAttribDivisor(instanceModelLoc+i, 1)
		}
		gl.EnableVertexAttribArray(instanceColorLoc)
		gl.VertexAttribPointerWithOffset(instanceColorLoc, 4, gl.FLOAT, false, stride, 64)
		gl.VertexAttribDivisor(instanceColorLoc, 1)
		gl.BindVertexArray(0)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, g.instanceVBO)
	if count > g.instanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.DYNAMIC_DRAW)
		g.instanceCap = count
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Destroy releases the GPU buffers. Textures belong to the texture cache.
func (m *Model) Destroy() {
	for _, g := range m.meshes {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		if g.instanceVBO != 0 {
			gl.DeleteBuffers(1, &g.instanceVBO)
		}
	}
	m.meshes = nil
}
