// Package shadertest provides a shader.Program that records uniform writes.
package shadertest

import (
	"fmt"

	"github.com/Faultbox/breakout3d/pkg/math"
)

// Recorder records every call made on it. It satisfies shader.Program.
type Recorder struct {
	Name     string
	Bound    bool
	Ints     map[string]int32
	Floats   map[string]float32
	Vec3s    map[string]math.Vec3
	Vec4s    map[string]math.Vec4
	Mat4s    map[string]math.Mat4
	Textures map[string]uint32
	// Log receives one line per call when non-nil, so several recorders can
	// share a single ordered trace.
	Log *[]string
}

// New returns an empty recorder writing its trace to log, which may be nil.
func New(name string, log *[]string) *Recorder {
	return &Recorder{
		Name:     name,
		Ints:     make(map[string]int32),
		Floats:   make(map[string]float32),
		Vec3s:    make(map[string]math.Vec3),
		Vec4s:    make(map[string]math.Vec4),
		Mat4s:    make(map[string]math.Mat4),
		Textures: make(map[string]uint32),
		Log:      log,
	}
}

func (r *Recorder) logf(format string, args ...any) {
	if r.Log != nil {
		*r.Log = append(*r.Log, r.Name+"."+fmt.Sprintf(format, args...))
	}
}

func (r *Recorder) Bind() {
	r.Bound = true
	r.logf("bind")
}

func (r *Recorder) Unbind() {
	r.Bound = false
	r.logf("unbind")
}

func (r *Recorder) SetInt(name string, v int32) {
	r.Ints[name] = v
}

func (r *Recorder) SetFloat(name string, v float32) {
	r.Floats[name] = v
}

func (r *Recorder) SetVec3(name string, v math.Vec3) {
	r.Vec3s[name] = v
}

func (r *Recorder) SetVec4(name string, v math.Vec4) {
	r.Vec4s[name] = v
}

func (r *Recorder) SetMat4(name string, m math.Mat4) {
	r.Mat4s[name] = m
}

func (r *Recorder) SetTexture(target uint32, name string, tex uint32) {
	r.Textures[name] = tex
	r.logf("texture %s", name)
}
