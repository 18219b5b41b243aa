package renderer

import (
	"github.com/Faultbox/breakout3d/internal/engine/model"
	"github.com/Faultbox/breakout3d/internal/engine/shader"
	"github.com/Faultbox/breakout3d/pkg/math"
)

type queued struct {
	model  model.Drawable
	matrix math.Mat4
}

// Queue holds individually placed models submitted for the current frame.
// The same queue is drawn once per pass and cleared after the lit pass.
type Queue struct {
	items []queued
}

// Submit adds a model with its world matrix.
func (q *Queue) Submit(m model.Drawable, matrix math.Mat4) {
	q.items = append(q.items, queued{model: m, matrix: matrix})
}

// Draw draws every submitted model through p in submission order.
func (q *Queue) Draw(p shader.Program) {
	for _, it := range q.items {
		it.model.Draw(p, it.matrix)
	}
}

// Len returns the number of submitted models.
func (q *Queue) Len() int {
	return len(q.items)
}

// Clear empties the queue, keeping its storage.
func (q *Queue) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}
