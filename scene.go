// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"fmt"
	"sort"
)

// System is a part of the scene that gets updated every frame.
type System interface {
	// Update runs the system for one frame.
	Update(frameDelta float32)

	// OnAddEntity gets called each time a new entity is added to the scene.
	OnAddEntity(newEntity Entity)

	// OnRemoveEntity gets called each time an entity is removed from the scene.
	OnRemoveEntity(oldEntity Entity)

	// GetRequestedPriority returns the priority used to order Update calls;
	// lower values run first.
	GetRequestedPriority() float32

	// GetName returns the name that identifies the system in the scene.
	GetName() string
}

// Scene manages the systems and entities of the running program.
type Scene struct {
	systems  []System
	entities map[uint64]Entity
	lastID   uint64
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	s := new(Scene)
	s.entities = make(map[uint64]Entity)
	return s
}

// GetNextID returns a new entity ID unique within the scene.
func (s *Scene) GetNextID() uint64 {
	s.lastID++
	return s.lastID
}

// AddSystem adds the system and keeps systems sorted by priority.
func (s *Scene) AddSystem(newSystem System) {
	s.systems = append(s.systems, newSystem)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].GetRequestedPriority() < s.systems[j].GetRequestedPriority()
	})
}

// GetSystemByName returns the system with the given name or nil.
func (s *Scene) GetSystemByName(name string) System {
	for _, system := range s.systems {
		if system.GetName() == name {
			return system
		}
	}
	return nil
}

// AddEntity adds the entity and notifies every system.
func (s *Scene) AddEntity(e Entity) {
	s.entities[e.GetID()] = e
	for _, system := range s.systems {
		system.OnAddEntity(e)
	}
}

// RemoveEntity removes the entity and notifies every system.
func (s *Scene) RemoveEntity(e Entity) {
	if _, okay := s.entities[e.GetID()]; !okay {
		return
	}
	delete(s.entities, e.GetID())
	for _, system := range s.systems {
		system.OnRemoveEntity(e)
	}
}

// GetEntityCount returns the number of entities in the scene.
func (s *Scene) GetEntityCount() int {
	return len(s.entities)
}

// Update runs every system once, in priority order.
func (s *Scene) Update(frameDelta float32) {
	for _, system := range s.systems {
		system.Update(frameDelta)
	}
}

// SetupScene creates the entities for the configured variant.
// NOTE: the render system needs to be added before this method is called.
func (s *Scene) SetupScene(cfg *Config) error {
	system := s.GetSystemByName(forwardRenderSystemName)
	if system == nil {
		return fmt.Errorf("need to add a render system first")
	}
	renderSystem, okay := system.(RenderSystem)
	if !okay {
		return fmt.Errorf("system %q is not a render system", forwardRenderSystemName)
	}

	if !cfg.DrawTriangle {
		return nil
	}

	triangle, err := NewTriangleEntity(renderSystem.GetGraphics())
	triangle.ID = s.GetNextID()

	// add the triangle even if its program failed, so that shutdown
	// releases its objects
	s.AddEntity(triangle)
	return err
}
