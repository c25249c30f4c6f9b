// Package catalog provides the interface for caching raw catalog documents
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogrepomock github.com/muutmoku/ao-build-share/internal/repositories/catalog Repository

import (
	"context"
	"time"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
)

// Repository defines the interface for catalog document caching
type Repository interface {
	// Get retrieves the cached document of a slot
	// Returns errors.InvalidArgument for unknown slots
	// Returns errors.CodeNotFound if nothing is cached or the entry expired
	// Returns errors.CodeInternal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores the document of a slot, replacing any previous entry
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.CodeInternal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes the cached document of a slot
	// Returns errors.InvalidArgument for unknown slots
	// Returns errors.CodeNotFound if nothing is cached
	// Returns errors.CodeInternal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// Document is a cached catalog document
type Document struct {
	Slot      equipment.Slot
	Body      []byte
	FetchedAt time.Time
}

// GetInput defines the input for getting a document
type GetInput struct {
	Slot equipment.Slot
}

// GetOutput defines the output for getting a document
type GetOutput struct {
	Document *Document
}

// PutInput defines the input for storing a document
type PutInput struct {
	Document *Document
	// TTL of the entry, zero uses the repository default
	TTL time.Duration
}

// PutOutput defines the output for storing a document
type PutOutput struct {
	ExpiresAt time.Time
}

// DeleteInput defines the input for deleting a document
type DeleteInput struct {
	Slot equipment.Slot
}

// DeleteOutput defines the output for deleting a document
type DeleteOutput struct{}
