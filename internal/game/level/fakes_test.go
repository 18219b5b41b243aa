package level

import (
	"fmt"

	"github.com/Faultbox/breakout3d/internal/config"
	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/internal/engine/shader/shadertest"
	"github.com/Faultbox/breakout3d/pkg/math"
)

type trace struct {
	lines []string
}

func (t *trace) add(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

func progName(p shader.Program) string {
	if r, ok := p.(*shadertest.Recorder); ok {
		return r.Name
	}
	return "?"
}

type fakeModel struct {
	name string
	tr   *trace
}

func (m *fakeModel) Draw(p shader.Program, _ math.Mat4) {
	m.tr.add("%s.draw@%s", m.name, progName(p))
}

func (m *fakeModel) DrawInstanced(p shader.Program, models []math.Mat4, _ []math.Vec4) {
	m.tr.add("%s.instanced@%s %d", m.name, progName(p), len(models))
}

type fakeDepth struct {
	name string
	tex  uint32
	far  float32
	tr   *trace
}

func (d *fakeDepth) Clear() { d.tr.add("%s.clear", d.name) }
func (d *fakeDepth) Begin() { d.tr.add("%s.begin", d.name) }
func (d *fakeDepth) End() { d.tr.add("%s.end", d.name) }
func (d *fakeDepth) Texture() uint32 { return d.tex }
func (d *fakeDepth) FarPlane() float32 { return d.far }

type fakeHDR struct {
	tr *trace
}

func (h *fakeHDR) Bind() { h.tr.add("hdr.bind") }
func (h *fakeHDR) Clear(_, _, _, _ float32) { h.tr.add("hdr.clear") }
func (h *fakeHDR) Unbind() { h.tr.add("hdr.unbind") }
func (h *fakeHDR) ColorTexture() uint32 { return 7 }

type fakeResolver struct {
	tr *trace
}

func (r *fakeResolver) Resolve(tex uint32) { r.tr.add("resolve %d", tex) }

type rig struct {
	tr       *trace
	programs struct {
		lit, litInst, depth, depthInst, cube, cubeInst, colored *shadertest.Recorder
	}
	level *Level
}

// newRig builds a level whose collaborators all write to one trace.
func newRig() *rig {
	r := &rig{tr: &trace{}}
	log := &r.tr.lines
	r.programs.lit = shadertest.New("lit", log)
	r.programs.litInst = shadertest.New("litInst", log)
	r.programs.depth = shadertest.New("depth", log)
	r.programs.depthInst = shadertest.New("depthInst", log)
	r.programs.cube = shadertest.New("cube", log)
	r.programs.cubeInst = shadertest.New("cubeInst", log)
	r.programs.colored = shadertest.New("colored", log)

	model := func(name string) *fakeModel { return &fakeModel{name: name, tr: r.tr} }
	res := Resources{
		Programs: Programs{
			Lit:                r.programs.lit,
			LitInstanced:       r.programs.litInst,
			Depth:              r.programs.depth,
			DepthInstanced:     r.programs.depthInst,
			CubeDepth:          r.programs.cube,
			CubeDepthInstanced: r.programs.cubeInst,
			Colored:            r.programs.colored,
		},
		Models: Models{
			Iron:       model("iron"),
			Wood:       model("wood"),
			Paper:      model("paper"),
			Paddle:     model("paddle"),
			Ball:       model("ball"),
			Background: model("background"),
			Quad:       model("quad"),
		},
		SunShadow: &fakeDepth{name: "sun", tex: 3, tr: r.tr},
		Point:     &fakeDepth{name: "point", tex: 4, far: 25, tr: r.tr},
		HDR:       &fakeHDR{tr: r.tr},
		Resolver:  &fakeResolver{tr: r.tr},
	}
	r.level = New(res, OptionsFrom(config.Default(), 42))
	return r
}
