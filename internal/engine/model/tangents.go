package model

import "github.com/Faultbox/breakout3d/pkg/math"

// ComputeTangents fills per-vertex tangents from positions and texture
// coordinates. Triangles with degenerate UV area are skipped and vertices
// left without a tangent get one perpendicular to their normal.
func ComputeTangents(m *MeshData) {
	acc := make([]math.Vec3, len(m.Vertices))

	add := func(i0, i1, i2 uint32) {
		if int(i0) >= len(m.Vertices) || int(i1) >= len(m.Vertices) || int(i2) >= len(m.Vertices) {
			return
		}
		v0, v1, v2 := m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]
		e1 := vec(v1.Position).Sub(vec(v0.Position))
		e2 := vec(v2.Position).Sub(vec(v0.Position))
		du1, dv1 := v1.TexCoord[0]-v0.TexCoord[0], v1.TexCoord[1]-v0.TexCoord[1]
		du2, dv2 := v2.TexCoord[0]-v0.TexCoord[0], v2.TexCoord[1]-v0.TexCoord[1]

		det := du1*dv2 - du2*dv1
		if det == 0 {
			return
		}
		t := e1.Scale(dv2 / det).Sub(e2.Scale(dv1 / det))
		acc[i0] = acc[i0].Add(t)
		acc[i1] = acc[i1].Add(t)
		acc[i2] = acc[i2].Add(t)
	}

	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			add(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			add(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Tangent = orthoTangent(vec(m.Vertices[i].Normal), acc[i]).Array()
	}
}

// DefaultTangents assigns every vertex a tangent perpendicular to its normal.
func DefaultTangents(m *MeshData) {
	for i := range m.Vertices {
		m.Vertices[i].Tangent = orthoTangent(vec(m.Vertices[i].Normal), math.Vec3{}).Array()
	}
}

// orthoTangent Gram-Schmidt orthogonalizes t against n.
func orthoTangent(n, t math.Vec3) math.Vec3 {
	t = t.Sub(n.Scale(n.Dot(t)))
	if t.LengthSqr() < 1e-8 {
		if abs(n.X) < 0.9 {
			t = math.Vec3{X: 1}.Sub(n.Scale(n.X))
		} else {
			t = math.Vec3{Y: 1}.Sub(n.Scale(n.Y))
		}
	}
	return t.Normalize()
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
