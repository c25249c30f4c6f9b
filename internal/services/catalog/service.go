// Package catalog defines the interface for loading and querying slot catalogs
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogsvcmock github.com/muutmoku/ao-build-share/internal/services/catalog Service

import (
	"context"
	"time"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
)

// DefaultSearchLimit caps search results when the caller does not
const DefaultSearchLimit = 50

// Service defines the interface for catalog operations
type Service interface {
	// LoadSlot fetches, decodes and indexes one slot's catalog
	// Returns errors.InvalidArgument for unknown slots
	// Returns errors.CodeUnavailable / errors.CodeNotFound when the document cannot be fetched
	LoadSlot(ctx context.Context, input *LoadSlotInput) (*LoadSlotOutput, error)

	// LoadAll loads every slot concurrently. A failing slot never blocks the others.
	LoadAll(ctx context.Context, input *LoadAllInput) (*LoadAllOutput, error)

	// SearchItems lists the items of a loaded slot that have a name in the requested language
	// Returns errors.CodeFailedPrecondition when the slot is not loaded
	SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error)
}

// LoadSlotInput defines the request for loading a slot
type LoadSlotInput struct {
	Slot equipment.Slot
	// Refresh skips the cache and always downloads the document
	Refresh bool
}

// LoadSlotOutput defines the response for loading a slot
type LoadSlotOutput struct {
	Slot      equipment.Slot
	Records   int
	Bases     int
	FromCache bool
	LoadedAt  time.Time
}

// LoadAllInput defines the request for loading every slot
type LoadAllInput struct {
	Refresh bool
}

// LoadAllOutput defines the response for loading every slot
type LoadAllOutput struct {
	Loaded []*LoadSlotOutput
	// Failed holds the error of each slot that could not be loaded
	Failed map[equipment.Slot]error
}

// SearchItemsInput defines the request for searching a slot's items
type SearchItemsInput struct {
	Slot  equipment.Slot
	Lang  string
	Query string
	// Limit of results, zero uses DefaultSearchLimit
	Limit int
}

// SearchItemsOutput defines the response for searching a slot's items
type SearchItemsOutput struct {
	Items []*ItemSummary
}

// ItemSummary is one search result
type ItemSummary struct {
	UniqueName string
	Name       string
	Tier       int
	Base       string
	Enchants   []string
}
