package model

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/breakout3d/pkg/math"
)

// Cube returns a unit cube centered on the origin, colored base.
func Cube(name string, base math.Vec4) *Data {
	type face struct{ n, u, v math.Vec3 }
	faces := []face{
		{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
		{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
		{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
		{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
	}
	md := MeshData{Name: name}
	for _, f := range faces {
		center := f.n.Scale(0.5)
		appendQuad(&md, center, f.u.Scale(0.5), f.v.Scale(0.5), f.n)
	}
	return single(name, md, base)
}

// Quad returns a unit quad in the XY plane facing +Z.
func Quad(name string, base math.Vec4) *Data {
	md := MeshData{Name: name}
	appendQuad(&md, math.Vec3{}, math.Vec3{X: 0.5}, math.Vec3{Y: 0.5}, math.Vec3{Z: 1})
	return single(name, md, base)
}

// Plane returns a size x size floor in the XZ plane at y = -0.5 facing +Y,
// so it sits under unit cubes placed at y = 0.
func Plane(name string, size float32, base math.Vec4) *Data {
	md := MeshData{Name: name}
	h := size / 2
	appendQuad(&md, math.Vec3{Y: -0.5}, math.Vec3{X: h}, math.Vec3{Z: -h}, math.Vec3{Y: 1})
	return single(name, md, base)
}

// Sphere returns a UV sphere.
func Sphere(name string, radius float32, segments, rings int, base math.Vec4) *Data {
	segments = max(segments, 3)
	rings = max(rings, 2)

	md := MeshData{Name: name}
	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			n := math.Vec3{
				X: math32.Sin(phi) * math32.Cos(theta),
				Y: math32.Cos(phi),
				Z: math32.Sin(phi) * math32.Sin(theta),
			}
			md.Vertices = append(md.Vertices, Vertex{
				Position: n.Scale(radius).Array(),
				Normal:   n.Array(),
				TexCoord: [2]float32{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			cur := uint32(ring*(segments+1) + seg)
			next := cur + uint32(segments+1)
			md.Indices = append(md.Indices, cur, next, cur+1, cur+1, next, next+1)
		}
	}
	return single(name, md, base)
}

// appendQuad adds a quad spanning center +- u +- v with normal n.
func appendQuad(md *MeshData, center, u, v, n math.Vec3) {
	base := uint32(len(md.Vertices))
	corners := [4]struct {
		su, sv float32
		uv     [2]float32
	}{
		{-1, -1, [2]float32{0, 0}},
		{1, -1, [2]float32{1, 0}},
		{1, 1, [2]float32{1, 1}},
		{-1, 1, [2]float32{0, 1}},
	}
	for _, c := range corners {
		p := center.Add(u.Scale(c.su)).Add(v.Scale(c.sv))
		md.Vertices = append(md.Vertices, Vertex{Position: p.Array(), Normal: n.Array(), TexCoord: c.uv})
	}
	md.Indices = append(md.Indices, base, base+1, base+2, base, base+2, base+3)
}

func single(name string, md MeshData, base math.Vec4) *Data {
	ComputeTangents(&md)
	md.Bounds = computeBounds(md.Vertices)
	md.Material = DefaultMaterial(base)
	md.Material.Name = name
	return &Data{Name: name, Meshes: []MeshData{md}}
}
