// Copyright 2016, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

const (
	keyboardInputSystemPriority = -100.0
	keyboardInputSystemName     = "KeyboardInputSystem"
)

// KeyStater reports the current state of a key.
type KeyStater interface {
	GetKey(key glfw.Key) glfw.Action
}

type keyBinding struct {
	handler   func()
	trigger   bool
	wasPushed bool
}

// KeyboardModel polls the keyboard each frame and runs bound handlers.
type KeyboardModel struct {
	window   KeyStater
	bindings map[glfw.Key]*keyBinding
	order    []glfw.Key
}

// NewKeyboardModel creates a keyboard model that polls the keys of window.
func NewKeyboardModel(window KeyStater) *KeyboardModel {
	kb := new(KeyboardModel)
	kb.window = window
	kb.bindings = make(map[glfw.Key]*keyBinding)
	return kb
}

// Bind runs handler on every check while the key is held down.
func (kb *KeyboardModel) Bind(key glfw.Key, handler func()) {
	kb.bind(key, &keyBinding{handler: handler})
}

// BindTrigger runs handler once each time the key goes down.
func (kb *KeyboardModel) BindTrigger(key glfw.Key, handler func()) {
	kb.bind(key, &keyBinding{handler: handler, trigger: true})
}

func (kb *KeyboardModel) bind(key glfw.Key, b *keyBinding) {
	if _, exists := kb.bindings[key]; !exists {
		kb.order = append(kb.order, key)
	}
	kb.bindings[key] = b
}

// CheckKeyPresses polls every bound key and runs the handlers that apply.
func (kb *KeyboardModel) CheckKeyPresses() {
	for _, key := range kb.order {
		b := kb.bindings[key]
		pushed := kb.window.GetKey(key) == glfw.Press
		if pushed && (!b.trigger || !b.wasPushed) {
			b.handler()
		}
		b.wasPushed = pushed
	}
}

// KeyboardInputSystem implements the System interface and handles the
// keyboard input.
type KeyboardInputSystem struct {
	kbModel    *KeyboardModel
	mainWindow Window
}

// NewKeyboardInputSystem creates a new KeyboardInputSystem object
func NewKeyboardInputSystem() *KeyboardInputSystem {
	system := new(KeyboardInputSystem)
	return system
}

// Initialize sets up the key bindings for the window.
func (s *KeyboardInputSystem) Initialize(w Window) {
	s.mainWindow = w

	s.kbModel = NewKeyboardModel(s.mainWindow)
	s.kbModel.Bind(glfw.KeyEscape, s.handleClose)
}

// Update polls the keyboard once per frame.
func (s *KeyboardInputSystem) Update(frameDelta float32) {
	s.kbModel.CheckKeyPresses()
}

// OnAddEntity does nothing; the keyboard does not act on entities.
func (s *KeyboardInputSystem) OnAddEntity(newEntity Entity) {}

// OnRemoveEntity does nothing; the keyboard does not act on entities.
func (s *KeyboardInputSystem) OnRemoveEntity(oldEntity Entity) {}

// GetRequestedPriority returns the requested priority level for the System
// which may be of significance to a Manager if they want to order Update() calls.
func (s *KeyboardInputSystem) GetRequestedPriority() float32 {
	return keyboardInputSystemPriority
}

// GetName returns the name of the system that can be used to identify
// the System within Manager.
func (s *KeyboardInputSystem) GetName() string {
	return keyboardInputSystemName
}

// handleClose asks the window to close; the main loop exits on its next check.
func (s *KeyboardInputSystem) handleClose() {
	s.mainWindow.SetShouldClose(true)
}
