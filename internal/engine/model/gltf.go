package model

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/logger"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// defaultShininess is used when a material gives no roughness.
const defaultShininess = 32

// LoadGLTF opens a .gltf or .glb file and converts it to CPU-side meshes.
func LoadGLTF(path string) (*Data, *Report, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf %q: %w", path, err)
	}
	return ParseGLTF(doc, path)
}

// ParseGLTF converts every mesh primitive of doc into a MeshData. source is
// the document path; external images resolve relative to its directory.
// Degradations are recorded in the returned Report; only a document with no
// usable primitive is an error.
func ParseGLTF(doc *gltf.Document, source string) (*Data, *Report, error) {
	report := &Report{Source: source}
	data := &Data{Name: filepath.Base(source)}
	images := gltfImages(doc, source, report)

	for mi, gm := range doc.Meshes {
		meshName := gm.Name
		if meshName == "" {
			meshName = fmt.Sprintf("mesh%d", mi)
		}
		for pi, prim := range gm.Primitives {
			name := fmt.Sprintf("%s/%d", meshName, pi)
			md, err := gltfPrimitive(doc, name, prim, report)
			if err != nil {
				report.Add(name, SkippedPrimitive, err.Error())
				logger.Warn("gltf primitive skipped",
					zap.String("source", source),
					zap.String("mesh", name),
					zap.Error(err))
				continue
			}
			if prim.Material != nil && *prim.Material < len(doc.Materials) {
				md.Material = gltfMaterial(doc.Materials[*prim.Material], images)
			} else {
				md.Material = DefaultMaterial(math.RGBA(1, 1, 1, 1))
			}
			data.Meshes = append(data.Meshes, *md)
		}
	}

	if len(data.Meshes) == 0 {
		return nil, report, fmt.Errorf("%s: %w", source, ErrNoPosition)
	}
	return data, report, nil
}

func gltfPrimitive(doc *gltf.Document, name string, prim *gltf.Primitive, report *Report) (*MeshData, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, ErrNoPosition
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}

	md := &MeshData{Name: name, Vertices: make([]Vertex, len(positions))}
	for i, p := range positions {
		v := Vertex{Position: p, Normal: [3]float32{0, 1, 0}}
		if i < len(normals) {
			v.Normal = normals[i]
		}
		if i < len(uvs) {
			v.TexCoord = uvs[i]
		}
		md.Vertices[i] = v
	}

	if prim.Indices != nil {
		md.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		md.Indices = make([]uint32, len(positions))
		for i := range md.Indices {
			md.Indices[i] = uint32(i)
		}
	}

	if len(normals) < len(positions) {
		report.Add(name, MissingNormals, "")
	}
	if len(uvs) < len(positions) {
		report.Add(name, MissingTexCoords, "default tangents")
		DefaultTangents(md)
	} else {
		ComputeTangents(md)
	}
	md.Bounds = computeBounds(md.Vertices)
	return md, nil
}

// gltfImages resolves every texture of doc to an ImageRef, indexed like
// doc.Textures.
func gltfImages(doc *gltf.Document, source string, report *Report) []ImageRef {
	dir := filepath.Dir(source)
	refs := make([]ImageRef, len(doc.Textures))
	for i, tex := range doc.Textures {
		if tex.Source == nil || *tex.Source >= len(doc.Images) {
			continue
		}
		img := doc.Images[*tex.Source]
		key := fmt.Sprintf("%s#image%d", source, *tex.Source)
		switch {
		case img.BufferView != nil:
			raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
			if err != nil {
				report.Add(key, FallbackDiffuse, err.Error())
				continue
			}
			refs[i] = ImageRef{Key: key, Data: raw}
		case img.IsEmbeddedResource():
			raw, err := img.MarshalData()
			if err != nil {
				report.Add(key, FallbackDiffuse, err.Error())
				continue
			}
			refs[i] = ImageRef{Key: key, Data: raw}
		case img.URI != "":
			path := filepath.Join(dir, img.URI)
			refs[i] = ImageRef{Key: path, Path: path}
		}
	}
	return refs
}

// gltfMaterial maps a metallic-roughness material onto diffuse/specular/normal
// maps. The metallic-roughness texture stands in for the specular map.
func gltfMaterial(gm *gltf.Material, images []ImageRef) Material {
	mat := DefaultMaterial(math.RGBA(1, 1, 1, 1))
	mat.Name = gm.Name

	ref := func(idx int) ImageRef {
		if idx >= 0 && idx < len(images) {
			return images[idx]
		}
		return ImageRef{}
	}

	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		cf := pbr.BaseColorFactorOrDefault()
		mat.BaseColor = math.RGBA(float32(cf[0]), float32(cf[1]), float32(cf[2]), float32(cf[3]))
		if pbr.BaseColorTexture != nil {
			mat.Diffuse = ref(pbr.BaseColorTexture.Index)
		}
		if pbr.MetallicRoughnessTexture != nil {
			mat.Specular = ref(pbr.MetallicRoughnessTexture.Index)
		}
		roughness := float32(pbr.RoughnessFactorOrDefault())
		mat.Shininess = (1-roughness)*(1-roughness)*128 + 1
	}
	if gm.NormalTexture != nil && gm.NormalTexture.Index != nil {
		mat.Normal = ref(*gm.NormalTexture.Index)
	}
	return mat
}

// DefaultMaterial returns a material with no texture maps and the given base
// color.
func DefaultMaterial(base math.Vec4) Material {
	return Material{BaseColor: base, Shininess: defaultShininess}
}
