package instance

import (
	"testing"

	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/pkg/math"
)

type block struct{ id int }

func (b block) ModelMatrix() math.Mat4 {
	return math.Translate(float32(b.id), 0, 0)
}

type spark struct {
	block
	color math.Vec4
}

func (s spark) InstanceColor() math.Vec4 {
	return s.color
}

type recordingModel struct {
	calls  int
	models []math.Mat4
	colors []math.Vec4
}

func (m *recordingModel) Draw(p shader.Program, model math.Mat4) {}

func (m *recordingModel) DrawInstanced(p shader.Program, models []math.Mat4, colors []math.Vec4) {
	m.calls++
	m.models = append([]math.Mat4(nil), models...)
	m.colors = append([]math.Vec4(nil), colors...)
}

func fill(n int) *Pool[block] {
	p := NewPool[block](2)
	for i := 0; i < n; i++ {
		p.Push(block{id: i})
	}
	return p
}

func TestPushGrowsPastCapacity(t *testing.T) {
	p := fill(10)
	if p.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", p.Len())
	}
	for i := 0; i < 10; i++ {
		if p.Get(i).id != i {
			t.Errorf("Get(%d) = %d", i, p.Get(i).id)
		}
	}
}

func TestDeleteSwapsWithLast(t *testing.T) {
	const n = 6
	for k := 0; k < n-1; k++ {
		p := fill(n)
		p.Delete(k)

		if p.Len() != n-1 {
			t.Fatalf("k=%d: Len() = %d, want %d", k, p.Len(), n-1)
		}
		if got := p.Get(k).id; got != n-1 {
			t.Errorf("k=%d: Get(k) = %d, want former last %d", k, got, n-1)
		}
		for i := 0; i < n-1; i++ {
			if i == k {
				continue
			}
			if got := p.Get(i).id; got != i {
				t.Errorf("k=%d: Get(%d) = %d, want unchanged", k, i, got)
			}
		}
	}
}

func TestDeleteLast(t *testing.T) {
	p := fill(3)
	p.Delete(2)
	if p.Len() != 2 || p.Get(0).id != 0 || p.Get(1).id != 1 {
		t.Errorf("after deleting last: len=%d", p.Len())
	}
	p.Delete(0)
	p.Delete(0)
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestSetAndClear(t *testing.T) {
	p := fill(3)
	p.Set(1, block{id: 42})
	if p.Get(1).id != 42 {
		t.Errorf("Get(1) = %d, want 42", p.Get(1).id)
	}
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() after Clear = %d", p.Len())
	}
}

func TestDrawInstancesSingleCall(t *testing.T) {
	p := fill(3)
	m := &recordingModel{}

	p.DrawInstances(nil)
	if m.calls != 0 {
		t.Fatal("drew without a model")
	}

	p.SetModel(m)
	p.DrawInstances(nil)

	if m.calls != 1 {
		t.Fatalf("calls = %d, want 1", m.calls)
	}
	if len(m.models) != 3 {
		t.Fatalf("instances = %d, want 3", len(m.models))
	}
	if m.models[2][12] != 2 {
		t.Errorf("third instance x = %v, want 2", m.models[2][12])
	}
	if m.colors != nil {
		t.Errorf("uncolored items produced colors %v", m.colors)
	}
}

func TestDrawInstancesEmptyPool(t *testing.T) {
	p := NewPool[block](4)
	m := &recordingModel{}
	p.SetModel(m)
	p.DrawInstances(nil)
	if m.calls != 0 {
		t.Errorf("calls = %d, want 0", m.calls)
	}
}

func TestDrawInstancesColors(t *testing.T) {
	p := NewPool[spark](2)
	p.Push(spark{block{0}, math.RGBA(1, 0, 0, 1)})
	p.Push(spark{block{1}, math.RGBA(0, 1, 0, 1)})
	m := &recordingModel{}
	p.SetModel(m)

	p.DrawInstances(nil)

	if len(m.colors) != 2 || m.colors[1] != math.RGBA(0, 1, 0, 1) {
		t.Errorf("colors = %v", m.colors)
	}
}
