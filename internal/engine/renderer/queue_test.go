package renderer

import (
	"testing"

	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/internal/engine/shader/shadertest"
	"github.com/Faultbox/breakout3d/pkg/math"
)

type namedModel struct {
	name string
	log  *[]string
}

func (m namedModel) Draw(p shader.Program, model math.Mat4) {
	*m.log = append(*m.log, m.name)
	p.SetMat4("model", model)
}

func (m namedModel) DrawInstanced(p shader.Program, models []math.Mat4, colors []math.Vec4) {}

func TestQueueDrawsInSubmissionOrder(t *testing.T) {
	var log []string
	var q Queue
	q.Submit(namedModel{"ball", &log}, math.Translate(1, 0, 0))
	q.Submit(namedModel{"paddle", &log}, math.Translate(2, 0, 0))
	q.Submit(namedModel{"floor", &log}, math.Translate(3, 0, 0))

	rec := shadertest.New("lit", nil)
	q.Draw(rec)

	want := []string{"ball", "paddle", "floor"}
	if len(log) != len(want) {
		t.Fatalf("drew %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("draw %d = %s, want %s", i, log[i], want[i])
		}
	}
	if rec.Mat4s["model"][12] != 3 {
		t.Errorf("last model matrix x = %v, want 3", rec.Mat4s["model"][12])
	}
}

func TestQueueDrawTwiceThenClear(t *testing.T) {
	var log []string
	var q Queue
	q.Submit(namedModel{"ball", &log}, math.Identity())

	rec := shadertest.New("depth", nil)
	q.Draw(rec)
	q.Draw(rec)
	if len(log) != 2 {
		t.Errorf("draws = %d, want 2 (queue survives a pass)", len(log))
	}

	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", q.Len())
	}
	q.Draw(rec)
	if len(log) != 2 {
		t.Errorf("cleared queue still drew")
	}
}
