package catalog

import (
	"sync"
	"time"

	"github.com/muutmoku/ao-build-share/internal/engine/enchant"
	entities "github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
)

// cell is the loaded catalog of one slot
type cell struct {
	records    []entities.Record
	byName     map[string]int
	index      enchant.Index
	generation uint64
	loadedAt   time.Time
}

// Snapshot holds the most recently loaded catalog of every slot.
// Each slot is an independent cell; a load result is only stored when no
// later-issued load of the same slot has already been stored.
type Snapshot struct {
	mu     sync.RWMutex
	issued map[equipment.Slot]uint64
	cells  map[equipment.Slot]*cell
}

// NewSnapshot returns an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		issued: make(map[equipment.Slot]uint64),
		cells:  make(map[equipment.Slot]*cell),
	}
}

// begin issues the generation number of a new load of slot
func (s *Snapshot) begin(slot equipment.Slot) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[slot]++
	return s.issued[slot]
}

// store installs records for slot unless a newer generation is already stored.
// Returns false when the result was discarded as stale.
func (s *Snapshot) store(slot equipment.Slot, generation uint64, records []entities.Record, index enchant.Index, at time.Time) bool {
	byName := make(map[string]int, len(records))
	for i, rec := range records {
		if _, dup := byName[rec.UniqueName]; !dup {
			byName[rec.UniqueName] = i
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.cells[slot]; ok && current.generation > generation {
		return false
	}
	s.cells[slot] = &cell{
		records:    records,
		byName:     byName,
		index:      index,
		generation: generation,
		loadedAt:   at,
	}
	return true
}

// Index returns the enchant index of slot, false when the slot is not loaded
func (s *Snapshot) Index(slot equipment.Slot) (enchant.Index, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cells[slot]
	if !ok {
		return enchant.Index{}, false
	}
	return c.index, true
}

// Records returns the loaded records of slot. The slice must not be modified.
func (s *Snapshot) Records(slot equipment.Slot) ([]entities.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cells[slot]
	if !ok {
		return nil, false
	}
	return c.records, true
}

// Record looks up a record of slot by its exact unique name
func (s *Snapshot) Record(slot equipment.Slot, uniqueName string) (entities.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cells[slot]
	if !ok {
		return entities.Record{}, false
	}
	i, ok := c.byName[uniqueName]
	if !ok {
		return entities.Record{}, false
	}
	return c.records[i], true
}

// LoadedAt reports when slot was last stored
func (s *Snapshot) LoadedAt(slot equipment.Slot) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cells[slot]
	if !ok {
		return time.Time{}, false
	}
	return c.loadedAt, true
}

// Loaded lists the loaded slots in display order
func (s *Snapshot) Loaded() []equipment.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []equipment.Slot
	for _, slot := range equipment.AllSlots() {
		if _, ok := s.cells[slot]; ok {
			out = append(out, slot)
		}
	}
	return out
}
