// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"fmt"
	"log/slog"

	mgl "github.com/go-gl/mathgl/mgl32"

	graphics "github.com/tbogdala/hellogl/graphicsprovider"
)

const (
	forwardRenderSystemPriority = 100.0
	forwardRenderSystemName     = "RenderSystem"
)

// RenderSystem is the interface the scene uses to reach the renderer.
type RenderSystem interface {
	System
	Resizable
	GetGraphics() graphics.GraphicsProvider
	GetMainWindow() Window
}

// ForwardRenderSystem implements the System interface and draws the
// renderable entities of the scene straight to the window.
type ForwardRenderSystem struct {
	MainWindow Window
	ClearColor mgl.Vec4

	gfx      graphics.GraphicsProvider
	reporter *Reporter

	width  int32
	height int32

	visibleEntities []RenderableEntity

	// skipped records entities whose invalid program has been reported.
	skipped map[uint64]bool
}

// NewForwardRenderSystem allocates a new ForwardRenderSystem object.
func NewForwardRenderSystem(gfx graphics.GraphicsProvider, window Window, reporter *Reporter) *ForwardRenderSystem {
	rs := new(ForwardRenderSystem)
	rs.gfx = gfx
	rs.MainWindow = window
	rs.reporter = reporter
	rs.skipped = make(map[uint64]bool)
	return rs
}

// Initialize sets the clear color and the initial viewport.
func (rs *ForwardRenderSystem) Initialize(cfg *Config, fbWidth, fbHeight int) {
	rs.ClearColor = cfg.ClearColor
	rs.OnResize(fbWidth, fbHeight)
}

// OnResize makes the viewport cover the whole framebuffer.
func (rs *ForwardRenderSystem) OnResize(width int, height int) {
	rs.width, rs.height = int32(width), int32(height)
	rs.gfx.Viewport(0, 0, rs.width, rs.height)
	slog.Debug("viewport resized", "width", width, "height", height)
}

// GetResolution returns the current viewport size.
func (rs *ForwardRenderSystem) GetResolution() (int32, int32) {
	return rs.width, rs.height
}

// GetGraphics returns the graphics provider used for drawing.
func (rs *ForwardRenderSystem) GetGraphics() graphics.GraphicsProvider {
	return rs.gfx
}

// GetMainWindow returns the window being drawn to.
func (rs *ForwardRenderSystem) GetMainWindow() Window {
	return rs.MainWindow
}

// GetRequestedPriority returns the requested priority level for the System
// which may be of significance to a Manager if they want to order Update() calls.
func (rs *ForwardRenderSystem) GetRequestedPriority() float32 {
	return forwardRenderSystemPriority
}

// GetName returns the name of the system that can be used to identify
// the System within Manager.
func (rs *ForwardRenderSystem) GetName() string {
	return forwardRenderSystemName
}

// OnAddEntity tracks entities that can be drawn.
func (rs *ForwardRenderSystem) OnAddEntity(newEntity Entity) {
	if re, okay := newEntity.(RenderableEntity); okay {
		rs.visibleEntities = append(rs.visibleEntities, re)
	}
}

// OnRemoveEntity stops drawing the entity. Its GPU objects are left to the
// caller.
func (rs *ForwardRenderSystem) OnRemoveEntity(oldEntity Entity) {
	surviving := rs.visibleEntities[:0]
	for _, e := range rs.visibleEntities {
		if e.GetID() != oldEntity.GetID() {
			surviving = append(surviving, e)
		}
	}
	rs.visibleEntities = surviving
	delete(rs.skipped, oldEntity.GetID())
}

// Update clears the screen, draws the visible entities and presents the frame.
func (rs *ForwardRenderSystem) Update(frameDelta float32) {
	c := rs.ClearColor
	rs.gfx.ClearColor(c[0], c[1], c[2], c[3])
	rs.gfx.Clear(graphics.COLOR_BUFFER_BIT)

	for _, e := range rs.visibleEntities {
		if r := e.GetRenderable(); r != nil {
			rs.drawRenderable(e, r)
		}
	}

	rs.MainWindow.SwapBuffers()
}

func (rs *ForwardRenderSystem) drawRenderable(e RenderableEntity, r *Renderable) {
	if !r.Program.Valid() || r.Mesh == nil {
		if !rs.skipped[e.GetID()] {
			rs.skipped[e.GetID()] = true
			rs.reporter.Println(fmt.Sprintf("Skipping %s: shader program is not linked", e.GetName()))
		}
		return
	}

	rs.gfx.UseProgram(r.Program.Handle)
	rs.gfx.BindVertexArray(r.Mesh.VAO)
	rs.gfx.DrawArrays(graphics.TRIANGLES, 0, r.Mesh.VertexCount)
}

// Shutdown deletes the GPU objects of every tracked entity. It is safe to
// call more than once.
func (rs *ForwardRenderSystem) Shutdown() {
	for _, e := range rs.visibleEntities {
		if r := e.GetRenderable(); r != nil {
			r.Destroy(rs.gfx)
		}
	}
}
