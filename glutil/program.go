package glutil

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gltut"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	ID   uint32
	Name string

	uniforms map[string]int32
}

// LoadProgram compiles the vertex and fragment shaders at the given paths
// in fsys and links them. Errors are *gltut.LoadError of kind "shader".
func LoadProgram(fsys fs.FS, vertPath, fragPath string) (*Program, error) {
	vert, err := fs.ReadFile(fsys, vertPath)
	if err != nil {
		return nil, &gltut.LoadError{Kind: "shader", Path: vertPath, Err: err}
	}
	frag, err := fs.ReadFile(fsys, fragPath)
	if err != nil {
		return nil, &gltut.LoadError{Kind: "shader", Path: fragPath, Err: err}
	}
	name := vertPath + "+" + fragPath
	p, err := NewProgram(name, string(vert), string(frag))
	if err != nil {
		return nil, &gltut.LoadError{Kind: "shader", Path: name, Err: err}
	}
	return p, nil
}

// NewProgram compiles and links a program from source.
func NewProgram(name, vertexSource, fragmentSource string) (*Program, error) {
	// Compile vertex shader
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	// Compile fragment shader
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("shader program linking failed: %s", trimLog(log))
	}

	// Detach shaders; the deferred deletes free them once unattached
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	gltut.Logger.Debug("program linked", "name", name, "id", program)
	return &Program{ID: program, Name: name, uniforms: make(map[string]int32)}, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)

	// GL reads the source as a C string
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	// Check compile status and return the info log on failure
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", trimLog(log))
	}
	return shader, nil
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the location of a uniform. A missing uniform is logged
// once and yields -1, which GL ignores on upload.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	// Cache misses too, so a missing uniform is looked up and logged once
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		gltut.Logger.Debug("uniform not found", "program", p.Name, "uniform", name)
	}
	p.uniforms[name] = loc
	return loc
}

// BindBlock attaches the named uniform block to a binding point. It
// reports false when the program has no such block.
func (p *Program) BindBlock(block string, binding uint32) bool {
	idx := gl.GetUniformBlockIndex(p.ID, gl.Str(block+"\x00"))
	if idx == gl.INVALID_INDEX {
		gltut.Logger.Debug("uniform block not found", "program", p.Name, "block", block)
		return false
	}
	gl.UniformBlockBinding(p.ID, idx, binding)
	return true
}

// SetSampler points a sampler uniform at a texture unit.
func (p *Program) SetSampler(name string, unit int32) {
	p.Use()
	gl.Uniform1i(p.Uniform(name), unit)
	gl.UseProgram(0)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
