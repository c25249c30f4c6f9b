// Package build defines the in-memory representation of a shared build
package build

import (
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
)

// State is a complete loadout: title, description and one item plus enchant
// level per slot. Slots and Enchants always hold an entry for every slot;
// an empty string means nothing is selected.
type State struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Slots       map[equipment.Slot]string `json:"slots"`
	Enchants    map[equipment.Slot]string `json:"enchants"`
}

// New returns an empty state with every slot present
func New() State {
	s := State{
		Slots:    make(map[equipment.Slot]string, len(equipment.AllSlots())),
		Enchants: make(map[equipment.Slot]string, len(equipment.AllSlots())),
	}
	for _, slot := range equipment.AllSlots() {
		s.Slots[slot] = ""
		s.Enchants[slot] = ""
	}
	return s
}

// Clone returns a deep copy so transitions never share maps with their input.
// Missing slots are filled in with empty values.
func (s State) Clone() State {
	out := New()
	out.Title = s.Title
	out.Description = s.Description
	for _, slot := range equipment.AllSlots() {
		out.Slots[slot] = s.Slots[slot]
		out.Enchants[slot] = s.Enchants[slot]
	}
	return out
}

// Item returns the item identifier selected for slot
func (s State) Item(slot equipment.Slot) string {
	return s.Slots[slot]
}

// Enchant returns the enchant level selected for slot
func (s State) Enchant(slot equipment.Slot) string {
	return s.Enchants[slot]
}

// Equal reports whether both states hold the same fields
func (s State) Equal(other State) bool {
	if s.Title != other.Title || s.Description != other.Description {
		return false
	}
	for _, slot := range equipment.AllSlots() {
		if s.Slots[slot] != other.Slots[slot] || s.Enchants[slot] != other.Enchants[slot] {
			return false
		}
	}
	return true
}
