// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package opengl implements graphicsprovider.GraphicsProvider on top of the
// go-gl OpenGL 3.3 core bindings.
package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	graphics "github.com/tbogdala/hellogl/graphicsprovider"
)

const floatSize = 4

// GraphicsImpl is the OpenGL implementation of GraphicsProvider.
type GraphicsImpl struct{}

// InitOpenGL resolves the OpenGL function pointers through getProcAddr and
// returns a provider for the current context. A context must be current on
// the calling thread.
func InitOpenGL(getProcAddr func(name string) unsafe.Pointer) (graphics.GraphicsProvider, error) {
	if getProcAddr == nil {
		return nil, fmt.Errorf("no proc address function supplied")
	}
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, err
	}

	slog.Debug("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	return new(GraphicsImpl), nil
}

// Viewport sets the viewport rectangle.
func (impl *GraphicsImpl) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// ClearColor sets the color used by Clear.
func (impl *GraphicsImpl) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the buffers selected by mask.
func (impl *GraphicsImpl) Clear(mask uint32) {
	gl.Clear(mask)
}

// CreateShader creates a shader object of the given stage.
func (impl *GraphicsImpl) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

// ShaderSource replaces the source of the shader object.
func (impl *GraphicsImpl) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (impl *GraphicsImpl) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (impl *GraphicsImpl) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

// GetShaderInfoLog returns the shader info log, truncated to the size of
// graphics.InfoLogSize.
func (impl *GraphicsImpl) GetShaderInfoLog(shader uint32) string {
	var length int32
	buf := make([]uint8, graphics.InfoLogSize)
	gl.GetShaderInfoLog(shader, graphics.InfoLogSize, &length, &buf[0])
	return string(buf[:length])
}

func (impl *GraphicsImpl) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (impl *GraphicsImpl) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (impl *GraphicsImpl) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (impl *GraphicsImpl) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (impl *GraphicsImpl) GetProgramiv(program uint32, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

// GetProgramInfoLog returns the program info log, truncated to the size of
// graphics.InfoLogSize.
func (impl *GraphicsImpl) GetProgramInfoLog(program uint32) string {
	var length int32
	buf := make([]uint8, graphics.InfoLogSize)
	gl.GetProgramInfoLog(program, graphics.InfoLogSize, &length, &buf[0])
	return string(buf[:length])
}

func (impl *GraphicsImpl) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (impl *GraphicsImpl) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (impl *GraphicsImpl) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (impl *GraphicsImpl) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (impl *GraphicsImpl) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (impl *GraphicsImpl) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (impl *GraphicsImpl) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

// BufferData copies data into the buffer bound to target.
func (impl *GraphicsImpl) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*floatSize, gl.Ptr(data), usage)
}

// GetBufferSubData fills data from the buffer bound to target, starting at
// the byte offset.
func (impl *GraphicsImpl) GetBufferSubData(target uint32, offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.GetBufferSubData(target, offset, len(data)*floatSize, gl.Ptr(data))
}

func (impl *GraphicsImpl) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// VertexAttribPointer describes a vertex attribute within the bound array
// buffer; offset is in bytes.
func (impl *GraphicsImpl) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (impl *GraphicsImpl) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (impl *GraphicsImpl) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (impl *GraphicsImpl) GetError() uint32 {
	return gl.GetError()
}
