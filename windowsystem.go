// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

var (
	// ErrGLFWInit is returned when the windowing library fails to start.
	ErrGLFWInit = errors.New("failed to initialize GLFW")

	// ErrWindowCreate is returned when the window or its context could not be created.
	ErrWindowCreate = errors.New("failed to create GLFW window")
)

// Window is the part of a window the systems interact with each frame.
// *glfw.Window satisfies it.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	GetKey(key glfw.Key) glfw.Action
	SwapBuffers()
}

// Resizable receives the new framebuffer size whenever it changes.
type Resizable interface {
	OnResize(width int, height int)
}

// WindowSession owns the GLFW library and the main window from creation
// until Close.
type WindowSession struct {
	MainWindow *glfw.Window

	closeOnce sync.Once
}

// OpenWindow initializes GLFW, creates the main window with the context
// requested in cfg and makes that context current on the calling thread.
// The returned session must be closed even when err is non-nil.
func OpenWindow(cfg *Config) (*WindowSession, error) {
	s := new(WindowSession)

	// GLFW must be initialized before it's called
	if err := glfw.Init(); err != nil {
		// nothing was acquired, so Close has nothing to release
		s.closeOnce.Do(func() {})
		return s, fmt.Errorf("%w: %v", ErrGLFWInit, err)
	}

	applyContextHints(cfg)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	s.MainWindow = window
	s.MainWindow.MakeContextCurrent()

	slog.Debug("window created", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return s, nil
}

func applyContextHints(cfg *Config) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if cfg.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
}

// SetResizeHandler forwards framebuffer size changes to r. GLFW calls it
// from within glfw.PollEvents on the main thread.
func (s *WindowSession) SetResizeHandler(r Resizable) {
	s.MainWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width int, height int) {
		r.OnResize(width, height)
	})
}

// GetMainWindow returns the main window.
func (s *WindowSession) GetMainWindow() Window {
	return s.MainWindow
}

// FramebufferSize returns the current framebuffer size in pixels.
func (s *WindowSession) FramebufferSize() (int, int) {
	return s.MainWindow.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW. Only the first call has
// any effect.
func (s *WindowSession) Close() {
	s.closeOnce.Do(func() {
		if s.MainWindow != nil {
			s.MainWindow.Destroy()
			s.MainWindow = nil
		}
		glfw.Terminate()
	})
}
