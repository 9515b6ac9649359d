// Copyright 2016, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestEscapeRequestsClose(t *testing.T) {
	w := newFakeWindow()
	w.pressedOn[1] = []glfw.Key{glfw.KeyEscape}

	s := NewKeyboardInputSystem()
	s.Initialize(w)

	s.Update(0)
	assert.True(t, w.ShouldClose())
}

func TestOtherKeysDoNotClose(t *testing.T) {
	w := newFakeWindow()
	w.pressedOn[1] = []glfw.Key{glfw.KeyA, glfw.KeyQ, glfw.KeySpace, glfw.KeyEnter}

	s := NewKeyboardInputSystem()
	s.Initialize(w)

	s.Update(0)
	assert.False(t, w.ShouldClose())
}

func TestKeyboardModelBind(t *testing.T) {
	w := newFakeWindow()
	w.pressedOn[1] = []glfw.Key{glfw.KeyW}
	w.pressedOn[2] = []glfw.Key{glfw.KeyW}

	held, triggered := 0, 0
	kb := NewKeyboardModel(w)
	kb.Bind(glfw.KeyW, func() { held++ })
	kb.BindTrigger(glfw.KeyS, func() { triggered++ })

	for frame := 0; frame < 3; frame++ {
		kb.CheckKeyPresses()
		w.SwapBuffers()
	}
	assert.Equal(t, 2, held)
	assert.Equal(t, 0, triggered)
}

func TestKeyboardModelBindTriggerFiresOnPressEdge(t *testing.T) {
	w := newFakeWindow()
	w.pressedOn[1] = []glfw.Key{glfw.KeyS}
	w.pressedOn[2] = []glfw.Key{glfw.KeyS}
	w.pressedOn[4] = []glfw.Key{glfw.KeyS}

	triggered := 0
	kb := NewKeyboardModel(w)
	kb.BindTrigger(glfw.KeyS, func() { triggered++ })

	for frame := 0; frame < 4; frame++ {
		kb.CheckKeyPresses()
		w.SwapBuffers()
	}
	assert.Equal(t, 2, triggered)
}
