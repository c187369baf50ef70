// Package scene is the entity store shared by view modules during a run.
//
// Modules run in registry order, so a module may read entities that an
// earlier module placed in the same cycle.
package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/duelview/internal/palette"
)

// ErrNoEntity is returned when no entity is bound to the requested slot.
var ErrNoEntity = errors.New("no entity for slot")

// Entity is a drawable element of the piste.
type Entity struct {
	ID      int
	Slot    int
	X       int
	Y       int
	Glyph   rune
	Color   palette.Color
	Tooltip string
}

// Scene holds the entities of one run, keyed by ID.
type Scene struct {
	mu       sync.RWMutex
	entities map[int]*Entity
	slots    map[int]int
	nextID   int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		entities: make(map[int]*Entity),
		slots:    make(map[int]int),
	}
}

// Put stores a copy of e. A zero ID allocates a new one. The stored ID is
// returned.
func (s *Scene) Put(e Entity) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		s.nextID++
		e.ID = s.nextID
	} else if e.ID > s.nextID {
		s.nextID = e.ID
	}
	s.entities[e.ID] = &e
	s.slots[e.Slot] = e.ID
	return e.ID
}

// BySlot returns a copy of the entity bound to slot.
func (s *Scene) BySlot(slot int) (Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.slots[slot]
	if !ok {
		return Entity{}, fmt.Errorf("slot %d: %w", slot, ErrNoEntity)
	}
	return *s.entities[id], nil
}

// Move sets the position of the entity bound to slot.
func (s *Scene) Move(slot, x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.slots[slot]
	if !ok {
		return fmt.Errorf("slot %d: %w", slot, ErrNoEntity)
	}
	s.entities[id].X = x
	s.entities[id].Y = y
	return nil
}

// SetTooltip attaches text to the entity bound to slot. Multiple tooltips in
// one cycle are joined.
func (s *Scene) SetTooltip(slot int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.slots[slot]
	if !ok {
		return fmt.Errorf("slot %d: %w", slot, ErrNoEntity)
	}
	e := s.entities[id]
	if e.Tooltip == "" {
		e.Tooltip = text
	} else {
		e.Tooltip += " " + text
	}
	return nil
}

// ClearTooltips removes every tooltip.
func (s *Scene) ClearTooltips() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entities {
		e.Tooltip = ""
	}
}

// Entities returns copies of all entities ordered by ID.
func (s *Scene) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}
