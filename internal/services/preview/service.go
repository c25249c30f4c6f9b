// Package preview defines the interface for rendering build previews
package preview

//go:generate mockgen -destination=mock/mock_service.go -package=previewmock github.com/muutmoku/ao-build-share/internal/services/preview Service

import (
	"context"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
)

// Service defines the interface for preview operations
type Service interface {
	// PreviewBuild resolves the display descriptor of every filled slot.
	// Slots whose item cannot be found are omitted, never reported as errors.
	PreviewBuild(ctx context.Context, input *PreviewBuildInput) (*PreviewBuildOutput, error)
}

// PreviewBuildInput defines the request for previewing a build
type PreviewBuildInput struct {
	Query string
	// Lang of the labels, empty or unsupported falls back to the default language
	Lang string
}

// PreviewBuildOutput defines the response for previewing a build
type PreviewBuildOutput struct {
	Preview *Preview
}

// Preview is the rendered form of a build
type Preview struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Lang        string        `json:"lang"`
	Slots       []*Descriptor `json:"slots"`
}

// Descriptor is the display data of one filled slot
type Descriptor struct {
	Slot         equipment.Slot `json:"slot"`
	SlotLabel    string         `json:"slotLabel"`
	Label        string         `json:"label"`
	RenderID     string         `json:"renderId"`
	EnchantLevel string         `json:"enchantLevel"`
	ImageURL     string         `json:"imageUrl"`
}
