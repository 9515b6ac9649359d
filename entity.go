// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	graphics "github.com/tbogdala/hellogl/graphicsprovider"
)

const triangleEntityName = "Triangle"

// Entity is anything that can be added to a Scene.
type Entity interface {
	GetID() uint64
	GetName() string
}

// RenderableEntity is an entity that the render system can draw.
type RenderableEntity interface {
	Entity
	GetRenderable() *Renderable
}

// Renderable pairs a shader program with the mesh it draws.
type Renderable struct {
	Program *ShaderProgram
	Mesh    *Mesh
}

// Destroy releases the GPU objects of the renderable. It is safe to call
// more than once.
func (r *Renderable) Destroy(gfx graphics.GraphicsProvider) {
	if r.Mesh != nil {
		r.Mesh.Destroy(gfx)
	}
	r.Program.Destroy(gfx)
}

// VisibleEntity is the basic drawable entity in the scene.
type VisibleEntity struct {
	ID         uint64
	Name       string
	Renderable *Renderable
}

// NewVisibleEntity returns a new visible entity object.
func NewVisibleEntity() *VisibleEntity {
	return new(VisibleEntity)
}

// GetID returns the unique identifier for the entity.
func (e *VisibleEntity) GetID() uint64 {
	return e.ID
}

// GetName returns the name of the entity.
func (e *VisibleEntity) GetName() string {
	return e.Name
}

// GetRenderable returns what should be drawn for the entity; may be nil.
func (e *VisibleEntity) GetRenderable() *Renderable {
	return e.Renderable
}

// TriangleEntity is the single static triangle.
type TriangleEntity struct {
	*VisibleEntity
}

// NewTriangleEntity builds the triangle's program and mesh. The entity is
// returned even when the program fails; err then describes the failure.
func NewTriangleEntity(gfx graphics.GraphicsProvider) (*TriangleEntity, error) {
	prog, err := NewShaderProgram(gfx, passthroughVertShader, constantColorFragShader)

	t := &TriangleEntity{VisibleEntity: NewVisibleEntity()}
	t.Name = triangleEntityName
	t.Renderable = &Renderable{
		Program: prog,
		Mesh:    NewMesh(gfx, TriangleVertices),
	}
	return t, err
}
