package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/pkg/clock"
)

type memoryEntry struct {
	doc       Document
	expiresAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	ttl   time.Duration
	store map[equipment.Slot]memoryEntry
}

// NewInMemory creates a new in-memory repository. A nil clock uses the system clock.
func NewInMemory(c clock.Clock, ttl time.Duration) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryRepository{
		clock: c,
		ttl:   ttl,
		store: make(map[equipment.Slot]memoryEntry),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a cached document
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgument(errInvalidSlot)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.store[input.Slot]
	if !exists || !r.clock.Now().Before(entry.expiresAt) {
		return nil, errors.NotFoundf("catalog document for slot %s not found", input.Slot)
	}

	// Return a copy to prevent external modification
	body := make([]byte, len(entry.doc.Body))
	copy(body, entry.doc.Body)

	return &GetOutput{
		Document: &Document{
			Slot:      entry.doc.Slot,
			Body:      body,
			FetchedAt: entry.doc.FetchedAt,
		},
	}, nil
}

// Put stores a document
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Document == nil {
		return nil, errors.InvalidArgument(errDocumentNil)
	}
	if !input.Document.Slot.IsValid() {
		return nil, errors.InvalidArgument(errInvalidSlot)
	}
	if len(input.Document.Body) == 0 {
		return nil, errors.InvalidArgument(errEmptyBody)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	doc := Document{
		Slot:      input.Document.Slot,
		Body:      make([]byte, len(input.Document.Body)),
		FetchedAt: input.Document.FetchedAt,
	}
	copy(doc.Body, input.Document.Body)
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = now
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt := now.Add(ttl)
	r.store[doc.Slot] = memoryEntry{doc: doc, expiresAt: expiresAt}

	return &PutOutput{ExpiresAt: expiresAt}, nil
}

// Delete removes a cached document
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgument(errInvalidSlot)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Slot]; !exists {
		return nil, errors.NotFoundf("catalog document for slot %s not found", input.Slot)
	}

	delete(r.store, input.Slot)

	return &DeleteOutput{}, nil
}
