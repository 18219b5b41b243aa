// Package shader provides OpenGL shader compilation and uniform binding.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/logger"
	"github.com/Faultbox/breakout3d/pkg/math"
)

// Source holds the stages of one program. Geometry is optional.
type Source struct {
	Name     string
	Vertex   string
	Geometry string
	Fragment string
}

// GLProgram is a Program backed by an OpenGL program object.
type GLProgram struct {
	name      string
	id        uint32
	locations map[string]int32
	units     map[string]uint32
}

// New compiles and links src.
func New(src Source) (*GLProgram, error) {
	id, err := CompileProgram(src.Vertex, src.Geometry, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", src.Name, err)
	}
	logger.Debug("shader program linked", zap.String("name", src.Name), zap.Uint32("program", id))
	return &GLProgram{
		name:      src.Name,
		id:        id,
		locations: make(map[string]int32),
		units:     make(map[string]uint32),
	}, nil
}

// Bind makes the program current.
func (p *GLProgram) Bind() {
	gl.UseProgram(p.id)
}

// Unbind clears the current program.
func (p *GLProgram) Unbind() {
	gl.UseProgram(0)
}

func (p *GLProgram) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	if loc < 0 {
		logger.Debug("inactive uniform", zap.String("program", p.name), zap.String("uniform", name))
	}
	p.locations[name] = loc
	return loc
}

// SetInt sets an int or sampler uniform.
func (p *GLProgram) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetFloat sets a float uniform.
func (p *GLProgram) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetVec3 sets a vec3 uniform.
func (p *GLProgram) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

// SetVec4 sets a vec4 uniform.
func (p *GLProgram) SetVec4(name string, v math.Vec4) {
	gl.Uniform4f(p.location(name), v[0], v[1], v[2], v[3])
}

// SetMat4 sets a mat4 uniform.
func (p *GLProgram) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, m.Ptr())
}

// SetTexture binds tex to the texture unit reserved for the sampler name.
// Units are assigned in order of first use.
func (p *GLProgram) SetTexture(target uint32, name string, tex uint32) {
	unit, ok := p.units[name]
	if !ok {
		unit = uint32(len(p.units))
		p.units[name] = unit
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(target, tex)
	gl.Uniform1i(p.location(name), int32(unit))
}

// Destroy deletes the program.
func (p *GLProgram) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// CompileProgram compiles the given stages and links them into a program.
// geometrySrc may be empty.
func CompileProgram(vertexSrc, geometrySrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	var geomShader uint32
	if geometrySrc != "" {
		geomShader, err = compileShader(geometrySrc, gl.GEOMETRY_SHADER, "geometry")
		if err != nil {
			return 0, err
		}
		defer gl.DeleteShader(geomShader)
	}

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	if geomShader != 0 {
		gl.AttachShader(program, geomShader)
	}
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", stage, string(log))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, or -1.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
