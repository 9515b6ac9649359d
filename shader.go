// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"errors"
	"fmt"
	"strings"

	graphics "github.com/tbogdala/hellogl/graphicsprovider"
)

const (
	passthroughVertShader = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
   gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

	constantColorFragShader = `#version 330 core
out vec4 FragColor;
void main()
{
   FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`
)

// ShaderError is returned when a shader stage fails to compile.
type ShaderError struct {
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s", strings.ToUpper(e.Stage), e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("ERROR::SHADER::PROGRAM::LINKING_FAILED\n%s", e.Log)
}

// ShaderProgram is a linked (or failed) program object.
type ShaderProgram struct {
	Handle uint32
	Linked bool
}

// Valid reports whether the program can be used in a draw call.
func (p *ShaderProgram) Valid() bool {
	return p != nil && p.Handle != 0 && p.Linked
}

// Destroy deletes the program object. It is safe to call more than once.
func (p *ShaderProgram) Destroy(gfx graphics.GraphicsProvider) {
	if p == nil || p.Handle == 0 {
		return
	}
	gfx.DeleteProgram(p.Handle)
	p.Handle = 0
	p.Linked = false
}

func stageName(stage uint32) string {
	switch stage {
	case graphics.VERTEX_SHADER:
		return "vertex"
	case graphics.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", stage)
	}
}

// CompileShader creates and compiles a shader of the given stage. The
// handle is returned even if compilation fails, in which case the error is
// a *ShaderError carrying the info log.
func CompileShader(gfx graphics.GraphicsProvider, stage uint32, source string) (uint32, error) {
	shader := gfx.CreateShader(stage)
	gfx.ShaderSource(shader, source)
	gfx.CompileShader(shader)

	var status int32
	gfx.GetShaderiv(shader, graphics.COMPILE_STATUS, &status)
	if status == graphics.FALSE {
		return shader, &ShaderError{Stage: stageName(stage), Log: gfx.GetShaderInfoLog(shader)}
	}
	return shader, nil
}

// NewShaderProgram compiles both stages, links them into a program and
// deletes the shader objects. Every stage is attempted even when an earlier
// one fails; all failures are joined in the returned error. The program is
// always returned and reports whether it linked.
func NewShaderProgram(gfx graphics.GraphicsProvider, vertSource, fragSource string) (*ShaderProgram, error) {
	var errs []error

	vs, err := CompileShader(gfx, graphics.VERTEX_SHADER, vertSource)
	if err != nil {
		errs = append(errs, err)
	}
	fs, err := CompileShader(gfx, graphics.FRAGMENT_SHADER, fragSource)
	if err != nil {
		errs = append(errs, err)
	}

	prog := &ShaderProgram{Handle: gfx.CreateProgram()}
	gfx.AttachShader(prog.Handle, vs)
	gfx.AttachShader(prog.Handle, fs)
	gfx.LinkProgram(prog.Handle)

	var status int32
	gfx.GetProgramiv(prog.Handle, graphics.LINK_STATUS, &status)
	if status == graphics.FALSE {
		errs = append(errs, &LinkError{Log: gfx.GetProgramInfoLog(prog.Handle)})
	} else {
		prog.Linked = true
	}

	// the shader objects are not needed once linked into the program
	gfx.DeleteShader(vs)
	gfx.DeleteShader(fs)

	return prog, errors.Join(errs...)
}
