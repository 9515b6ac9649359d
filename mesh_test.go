// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var triangleFloats = []float32{
	-0.5, -0.5, 0,
	0.5, -0.5, 0,
	0, 0.5, 0,
}

func TestNewMeshUploadsAndDescribesPositions(t *testing.T) {
	gfx := newFakeGraphics()
	m := NewMesh(gfx, TriangleVertices)

	assert.EqualValues(t, 3, m.VertexCount)
	assert.Equal(t, []string{
		"GenVertexArray",
		"GenBuffer",
		"BindVertexArray(" + itoa(m.VAO) + ")",
		"BindBuffer(0x8892," + itoa(m.VBO) + ")",
		"BufferData(0x8892,9,0x88e4)",
		"VertexAttribPointer(0,3,0x1406,false,12,0)",
		"EnableVertexAttribArray(0)",
		"BindBuffer(0x8892,0)",
		"BindVertexArray(0)",
	}, gfx.calls)
}

func TestMeshReadVerticesRoundTrips(t *testing.T) {
	gfx := newFakeGraphics()
	m := NewMesh(gfx, TriangleVertices)
	assert.Equal(t, triangleFloats, m.ReadVertices(gfx))
}

func TestMeshDestroyIsIdempotent(t *testing.T) {
	gfx := newFakeGraphics()
	m := NewMesh(gfx, TriangleVertices)

	m.Destroy(gfx)
	m.Destroy(gfx)

	assert.Len(t, gfx.deletedVAOs, 1)
	assert.Len(t, gfx.deletedBuffers, 1)
	assert.Zero(t, m.VAO)
	assert.Zero(t, m.VBO)
}

func TestTriangleVerticesInNDC(t *testing.T) {
	for _, v := range flattenVec3(TriangleVertices) {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.LessOrEqual(t, v, float32(1))
	}
}
