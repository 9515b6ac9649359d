// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package graphicsprovider describes the subset of the OpenGL API that the
// program draws with, so that the renderer can run against either a real
// context or a recording fake.
package graphicsprovider

// GL enum values used by the program. They match the values in the
// OpenGL 3.3 core headers.
const (
	NO_ERROR = 0

	COLOR_BUFFER_BIT = 0x00004000

	TRIANGLES = 0x0004

	FLOAT = 0x1406

	ARRAY_BUFFER = 0x8892
	STATIC_DRAW  = 0x88E4

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82

	FALSE = 0
	TRUE  = 1
)

// InfoLogSize is the size of the buffer used to fetch shader and program
// info logs; at most InfoLogSize-1 characters are returned.
const InfoLogSize = 512

// GraphicsProvider is the set of graphics calls needed to build the
// pipeline, upload geometry and draw a frame.
type GraphicsProvider interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	GetBufferSubData(target uint32, offset int, data []float32)
	DeleteBuffer(buffer uint32)

	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	DrawArrays(mode uint32, first int32, count int32)
	GetError() uint32
}
