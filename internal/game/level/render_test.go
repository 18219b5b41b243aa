package level

import (
	"strings"
	"testing"

	"github.com/Faultbox/breakout3d/internal/engine/shadow"
	"github.com/Faultbox/breakout3d/internal/game/entity"
	"github.com/Faultbox/breakout3d/internal/levels"
	"github.com/Faultbox/breakout3d/pkg/math"
)

func loadedRig(t *testing.T) *rig {
	t.Helper()
	r := newRig()
	if _, err := r.level.Load(levels.Layout{Rows: [][]int{{1, 2, 3}}}); err != nil {
		t.Fatal(err)
	}
	r.level.coloredQuads.Push(entity.Particle{Transform: entity.At(math.Vec3{}), Tau: 1})
	r.tr.lines = nil
	return r
}

func TestRenderOrder(t *testing.T) {
	r := loadedRig(t)
	r.level.Render()

	individual := func(prog string) []string {
		return []string{"paddle.draw@" + prog, "ball.draw@" + prog, "background.draw@" + prog}
	}
	pools := func(prog string) []string {
		return []string{"iron.instanced@" + prog + " 1", "wood.instanced@" + prog + " 1", "paper.instanced@" + prog + " 1"}
	}

	var want []string
	add := func(lines ...string) { want = append(want, lines...) }
	add("sun.clear", "point.clear")
	add("sun.begin", "depth.bind")
	add(individual("depth")...)
	add("depth.unbind", "sun.end")
	add("point.begin", "cube.bind")
	add(individual("cube")...)
	add("cube.unbind", "point.end")
	add("sun.begin", "depthInst.bind")
	add(pools("depthInst")...)
	add("depthInst.unbind", "sun.end")
	add("point.begin", "cubeInst.bind")
	add(pools("cubeInst")...)
	add("cubeInst.unbind", "point.end")
	add("hdr.bind", "hdr.clear")
	add("lit.bind", "lit.texture shadowMap[0]", "lit.texture cubeDepthMap[0]")
	add(individual("lit")...)
	add("lit.unbind")
	add("litInst.bind", "litInst.texture shadowMap[0]", "litInst.texture cubeDepthMap[0]")
	add(pools("litInst")...)
	add("litInst.unbind")
	add("colored.bind", "quad.instanced@colored 1", "colored.unbind")
	add("hdr.unbind", "resolve 7")

	got := r.tr.lines
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("render trace mismatch\ngot:\n  %s\nwant:\n  %s",
			strings.Join(got, "\n  "), strings.Join(want, "\n  "))
	}
}

func TestRenderClearsQueueEachFrame(t *testing.T) {
	r := loadedRig(t)
	r.level.Render()
	r.tr.lines = nil
	r.level.Render()

	n := 0
	for _, line := range r.tr.lines {
		if line == "ball.draw@lit" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("ball drawn %d times in the lit pass, want 1", n)
	}
	if r.level.queue.Len() != 0 {
		t.Errorf("queue holds %d entries after Render", r.level.queue.Len())
	}
}

func TestRenderUniforms(t *testing.T) {
	r := loadedRig(t)
	l := r.level
	l.Render()
	p := r.programs

	wantLightSpace := l.frustum.LightSpaceMatrix(l.sun.ViewMatrix())
	if p.depth.Mat4s["lightSpaceMatrix"] != wantLightSpace || p.depthInst.Mat4s["lightSpaceMatrix"] != wantLightSpace {
		t.Error("depth passes use a different light-space matrix")
	}

	faces := shadow.CubeFaceMatrices(l.point.Eye, cubeNear, 25)
	for _, prog := range []*struct {
		name string
		m    map[string]math.Mat4
		f    map[string]float32
		v    map[string]math.Vec3
	}{
		{"cube", p.cube.Mat4s, p.cube.Floats, p.cube.Vec3s},
		{"cubeInst", p.cubeInst.Mat4s, p.cubeInst.Floats, p.cubeInst.Vec3s},
	} {
		if prog.m["shadowMatrices[0]"] != faces[0] || prog.m["shadowMatrices[5]"] != faces[5] {
			t.Errorf("%s: cube face matrices not set", prog.name)
		}
		if prog.f["farPlane"] != 25 || prog.v["lightPos"] != l.point.Eye {
			t.Errorf("%s: farPlane %v lightPos %v", prog.name, prog.f["farPlane"], prog.v["lightPos"])
		}
	}

	for _, lit := range []string{"lit", "litInst"} {
		rec := p.lit
		if lit == "litInst" {
			rec = p.litInst
		}
		if rec.Mat4s["lightSpaceMatrix[0]"] != wantLightSpace {
			t.Errorf("%s: lightSpaceMatrix[0] differs from the depth pass", lit)
		}
		if rec.Textures["shadowMap[0]"] != 3 || rec.Textures["cubeDepthMap[0]"] != 4 {
			t.Errorf("%s: shadow textures = %v", lit, rec.Textures)
		}
		if rec.Floats["farPlane"] != 25 {
			t.Errorf("%s: farPlane = %v", lit, rec.Floats["farPlane"])
		}
		if rec.Vec3s["cameraPos"] != (math.Vec3{Y: 5}) {
			t.Errorf("%s: cameraPos = %v", lit, rec.Vec3s["cameraPos"])
		}
		if rec.Vec3s["sun[0].eye"] != (math.Vec3{X: 1, Y: 6, Z: 1}) {
			t.Errorf("%s: sun eye = %v", lit, rec.Vec3s["sun[0].eye"])
		}
		if rec.Vec3s["pointLights[0].eye"] != l.point.Eye || rec.Floats["pointLights[0].quadratic"] != l.point.Quadratic {
			t.Errorf("%s: point light uniforms missing", lit)
		}
		if rec.Mat4s["view"] != l.camera.ViewMatrix() || rec.Mat4s["projection"] != l.camera.Projection(1) {
			t.Errorf("%s: camera matrices differ", lit)
		}
	}

	if p.colored.Floats["brightness"] != 1 {
		t.Errorf("colored brightness = %v", p.colored.Floats["brightness"])
	}
	if p.colored.Mat4s["view"] != l.camera.ViewMatrix() {
		t.Error("colored pass uses a different view")
	}
}

func TestRenderSkipsEmptyPools(t *testing.T) {
	r := newRig()
	if _, err := r.level.Load(levels.Layout{Rows: [][]int{{2}}}); err != nil {
		t.Fatal(err)
	}
	r.tr.lines = nil
	r.level.Render()
	for _, line := range r.tr.lines {
		if strings.HasPrefix(line, "iron.") || strings.HasPrefix(line, "paper.") || strings.HasPrefix(line, "quad.") {
			t.Errorf("empty pool drew: %s", line)
		}
	}
}
