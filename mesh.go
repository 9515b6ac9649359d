// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	mgl "github.com/go-gl/mathgl/mgl32"

	graphics "github.com/tbogdala/hellogl/graphicsprovider"
)

const (
	floatSize        = 4
	positionAttrib   = 0
	positionElements = 3
)

// TriangleVertices are the three corners of the triangle in normalized
// device coordinates.
var TriangleVertices = []mgl.Vec3{
	{-0.5, -0.5, 0.0}, // left
	{0.5, -0.5, 0.0},  // right
	{0.0, 0.5, 0.0},   // top
}

// Mesh is a vertex array object together with the buffer that feeds it.
type Mesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

func flattenVec3(vertices []mgl.Vec3) []float32 {
	flat := make([]float32, 0, len(vertices)*positionElements)
	for _, v := range vertices {
		flat = append(flat, v[0], v[1], v[2])
	}
	return flat
}

// NewMesh uploads the vertex positions into a static buffer and describes
// them as a tightly packed vec3 at attribute 0.
func NewMesh(gfx graphics.GraphicsProvider, vertices []mgl.Vec3) *Mesh {
	m := &Mesh{VertexCount: int32(len(vertices))}
	m.VAO = gfx.GenVertexArray()
	m.VBO = gfx.GenBuffer()

	gfx.BindVertexArray(m.VAO)
	gfx.BindBuffer(graphics.ARRAY_BUFFER, m.VBO)
	gfx.BufferData(graphics.ARRAY_BUFFER, flattenVec3(vertices), graphics.STATIC_DRAW)

	gfx.VertexAttribPointer(positionAttrib, positionElements, graphics.FLOAT, false, positionElements*floatSize, 0)
	gfx.EnableVertexAttribArray(positionAttrib)

	gfx.BindBuffer(graphics.ARRAY_BUFFER, 0)
	gfx.BindVertexArray(0)
	return m
}

// ReadVertices reads the vertex buffer back from the GPU.
func (m *Mesh) ReadVertices(gfx graphics.GraphicsProvider) []float32 {
	data := make([]float32, m.VertexCount*positionElements)
	gfx.BindBuffer(graphics.ARRAY_BUFFER, m.VBO)
	gfx.GetBufferSubData(graphics.ARRAY_BUFFER, 0, data)
	gfx.BindBuffer(graphics.ARRAY_BUFFER, 0)
	return data
}

// Destroy deletes the vertex array and buffer. It is safe to call more than once.
func (m *Mesh) Destroy(gfx graphics.GraphicsProvider) {
	if m.VAO != 0 {
		gfx.DeleteVertexArray(m.VAO)
		m.VAO = 0
	}
	if m.VBO != 0 {
		gfx.DeleteBuffer(m.VBO)
		m.VBO = 0
	}
}
