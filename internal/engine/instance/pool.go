// Package instance batches many copies of one model into a single draw.
package instance

import (
	"github.com/Faultbox/breakout3d/internal/engine/model"
	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Item is an instance placed in the world.
type Item interface {
	ModelMatrix() math.Mat4
}

// Colored items carry a per-instance color.
type Colored interface {
	InstanceColor() math.Vec4
}

// Pool is an index-addressable set of instances sharing one model.
// Delete swaps the last element into the freed slot, so iteration order is
// not stable across deletions.
type Pool[T Item] struct {
	items    []T
	model    model.Drawable
	matrices []math.Mat4
	colors   []math.Vec4
}

// NewPool returns an empty pool with room for capacity items. Capacity is a
// hint; the pool grows past it as needed.
func NewPool[T Item](capacity int) *Pool[T] {
	return &Pool[T]{items: make([]T, 0, capacity)}
}

// Push appends an item.
func (p *Pool[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Len returns the number of live items.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Get returns the item at i.
func (p *Pool[T]) Get(i int) T {
	return p.items[i]
}

// Set replaces the item at i.
func (p *Pool[T]) Set(i int, item T) {
	p.items[i] = item
}

// Delete removes the item at i by moving the last item into its place.
func (p *Pool[T]) Delete(i int) {
	last := len(p.items) - 1
	p.items[i] = p.items[last]
	var zero T
	p.items[last] = zero
	p.items = p.items[:last]
}

// Clear removes every item.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

// SetModel binds the model every instance is drawn with.
func (p *Pool[T]) SetModel(m model.Drawable) {
	p.model = m
}

// Model returns the bound model.
func (p *Pool[T]) Model() model.Drawable {
	return p.model
}

// DrawInstances draws every live item with one instanced draw through prog.
// Nothing is drawn when the pool is empty or has no model.
func (p *Pool[T]) DrawInstances(prog shader.Program) {
	if p.model == nil || len(p.items) == 0 {
		return
	}
	p.matrices = p.matrices[:0]
	p.colors = p.colors[:0]
	for _, it := range p.items {
		p.matrices = append(p.matrices, it.ModelMatrix())
		if c, ok := any(it).(Colored); ok {
			p.colors = append(p.colors, c.InstanceColor())
		}
	}
	var colors []math.Vec4
	if len(p.colors) == len(p.matrices) {
		colors = p.colors
	}
	p.model.DrawInstanced(prog, p.matrices, colors)
}
