// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"fmt"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	graphics "github.com/tbogdala/hellogl/graphicsprovider"
)

// fakeGraphics records the calls made against it and keeps just enough
// state to answer status and buffer queries.
type fakeGraphics struct {
	calls []string

	failStage   map[uint32]string // stage -> info log
	failLink    string
	linkFailure bool

	nextHandle   uint32
	shaderStages map[uint32]uint32
	buffers      map[uint32][]float32
	boundBuffer  uint32

	deletedShaders  []uint32
	deletedPrograms []uint32
	deletedVAOs     []uint32
	deletedBuffers  []uint32

	viewports [][4]int32
}

func newFakeGraphics() *fakeGraphics {
	return &fakeGraphics{
		failStage:    make(map[uint32]string),
		shaderStages: make(map[uint32]uint32),
		buffers:      make(map[uint32][]float32),
	}
}

var _ graphics.GraphicsProvider = (*fakeGraphics)(nil)

func (f *fakeGraphics) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGraphics) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeGraphics) Viewport(x, y, width, height int32) {
	f.viewports = append(f.viewports, [4]int32{x, y, width, height})
	f.record("Viewport(%d,%d,%d,%d)", x, y, width, height)
}

func (f *fakeGraphics) ClearColor(r, g, b, a float32) {
	f.record("ClearColor(%g,%g,%g,%g)", r, g, b, a)
}

func (f *fakeGraphics) Clear(mask uint32) { f.record("Clear(0x%x)", mask) }

func (f *fakeGraphics) CreateShader(stage uint32) uint32 {
	h := f.handle()
	f.shaderStages[h] = stage
	f.record("CreateShader(0x%x)", stage)
	return h
}

func (f *fakeGraphics) ShaderSource(shader uint32, source string) { f.record("ShaderSource(%d)", shader) }

func (f *fakeGraphics) CompileShader(shader uint32) { f.record("CompileShader(%d)", shader) }

func (f *fakeGraphics) GetShaderiv(shader uint32, pname uint32, params *int32) {
	*params = graphics.TRUE
	if _, fail := f.failStage[f.shaderStages[shader]]; fail && pname == graphics.COMPILE_STATUS {
		*params = graphics.FALSE
	}
}

func (f *fakeGraphics) GetShaderInfoLog(shader uint32) string {
	return f.failStage[f.shaderStages[shader]]
}

func (f *fakeGraphics) DeleteShader(shader uint32) {
	f.deletedShaders = append(f.deletedShaders, shader)
	f.record("DeleteShader(%d)", shader)
}

func (f *fakeGraphics) CreateProgram() uint32 {
	f.record("CreateProgram")
	return f.handle()
}

func (f *fakeGraphics) AttachShader(program uint32, shader uint32) {
	f.record("AttachShader(%d,%d)", program, shader)
}

func (f *fakeGraphics) LinkProgram(program uint32) { f.record("LinkProgram(%d)", program) }

func (f *fakeGraphics) GetProgramiv(program uint32, pname uint32, params *int32) {
	*params = graphics.TRUE
	if f.linkFailure && pname == graphics.LINK_STATUS {
		*params = graphics.FALSE
	}
}

func (f *fakeGraphics) GetProgramInfoLog(program uint32) string { return f.failLink }

func (f *fakeGraphics) UseProgram(program uint32) { f.record("UseProgram(%d)", program) }

func (f *fakeGraphics) DeleteProgram(program uint32) {
	f.deletedPrograms = append(f.deletedPrograms, program)
	f.record("DeleteProgram(%d)", program)
}

func (f *fakeGraphics) GenVertexArray() uint32 {
	f.record("GenVertexArray")
	return f.handle()
}

func (f *fakeGraphics) BindVertexArray(vao uint32) { f.record("BindVertexArray(%d)", vao) }

func (f *fakeGraphics) DeleteVertexArray(vao uint32) {
	f.deletedVAOs = append(f.deletedVAOs, vao)
	f.record("DeleteVertexArray(%d)", vao)
}

func (f *fakeGraphics) GenBuffer() uint32 {
	f.record("GenBuffer")
	return f.handle()
}

func (f *fakeGraphics) BindBuffer(target uint32, buffer uint32) {
	f.boundBuffer = buffer
	f.record("BindBuffer(0x%x,%d)", target, buffer)
}

func (f *fakeGraphics) BufferData(target uint32, data []float32, usage uint32) {
	f.buffers[f.boundBuffer] = append([]float32(nil), data...)
	f.record("BufferData(0x%x,%d,0x%x)", target, len(data), usage)
}

func (f *fakeGraphics) GetBufferSubData(target uint32, offset int, data []float32) {
	copy(data, f.buffers[f.boundBuffer][offset/floatSize:])
}

func (f *fakeGraphics) DeleteBuffer(buffer uint32) {
	f.deletedBuffers = append(f.deletedBuffers, buffer)
	f.record("DeleteBuffer(%d)", buffer)
}

func (f *fakeGraphics) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer(%d,%d,0x%x,%t,%d,%d)", index, size, xtype, normalized, stride, offset)
}

func (f *fakeGraphics) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray(%d)", index)
}

func (f *fakeGraphics) DrawArrays(mode uint32, first int32, count int32) {
	f.record("DrawArrays(0x%x,%d,%d)", mode, first, count)
}

func (f *fakeGraphics) GetError() uint32 { return graphics.NO_ERROR }

// fakeWindow is a window whose keyboard is driven by the test. The keys in
// pressedOn are held down during the given frame (1-based, counted by
// SwapBuffers) and released otherwise.
type fakeWindow struct {
	shouldClose bool
	swaps       int
	pressedOn   map[int][]glfw.Key
	log         *[]string
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{pressedOn: make(map[int][]glfw.Key)}
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(value bool) {
	w.shouldClose = value
	if w.log != nil {
		*w.log = append(*w.log, "SetShouldClose")
	}
}

func (w *fakeWindow) GetKey(key glfw.Key) glfw.Action {
	for _, k := range w.pressedOn[w.swaps+1] {
		if k == key {
			return glfw.Press
		}
	}
	return glfw.Release
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	if w.log != nil {
		*w.log = append(*w.log, "SwapBuffers")
	}
}

// fakeSession is a Session around a fakeWindow that counts Close calls.
type fakeSession struct {
	window  *fakeWindow
	resizer Resizable
	closes  int
}

func (s *fakeSession) GetMainWindow() Window        { return s.window }
func (s *fakeSession) FramebufferSize() (int, int)  { return 800, 600 }
func (s *fakeSession) SetResizeHandler(r Resizable) { s.resizer = r }
func (s *fakeSession) Close()                       { s.closes++ }
