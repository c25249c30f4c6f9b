// Package build defines the interface for editing shared builds
package build

//go:generate mockgen -destination=mock/mock_service.go -package=buildmock github.com/muutmoku/ao-build-share/internal/services/build Service

import (
	"context"

	"github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
)

// Service defines the interface for build operations.
// Every edit takes the current share query and returns the complete new
// state together with its canonical query.
type Service interface {
	// GetBuild decodes a share query and reconciles it against the loaded catalogs
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)

	// SelectItem sets a slot's item and derives its enchant in the same step
	// Returns errors.InvalidArgument for unknown slots or malformed identifiers
	SelectItem(ctx context.Context, input *SelectItemInput) (*SelectItemOutput, error)

	// SelectEnchant changes a slot's enchant level without touching the item
	// Returns errors.InvalidArgument when the level is not one of the current options
	// Returns errors.CodeFailedPrecondition when the slot's catalog is not loaded
	SelectEnchant(ctx context.Context, input *SelectEnchantInput) (*SelectEnchantOutput, error)

	// UpdateDetails changes the title and/or description
	UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*UpdateDetailsOutput, error)

	// ListEnchants returns the enchant options of a base item
	// Returns errors.CodeFailedPrecondition when the slot's catalog is not loaded
	ListEnchants(ctx context.Context, input *ListEnchantsInput) (*ListEnchantsOutput, error)
}

// GetBuildInput defines the request for reading a build
type GetBuildInput struct {
	Query string
}

// GetBuildOutput defines the response for reading a build
type GetBuildOutput struct {
	State build.State
	Query string
}

// SelectItemInput defines the request for selecting a slot's item
type SelectItemInput struct {
	Query string
	Slot  equipment.Slot
	// Item is the new identifier, empty clears the slot
	Item string
}

// SelectItemOutput defines the response for selecting a slot's item
type SelectItemOutput struct {
	State build.State
	Query string
}

// SelectEnchantInput defines the request for selecting a slot's enchant
type SelectEnchantInput struct {
	Query   string
	Slot    equipment.Slot
	Enchant string
}

// SelectEnchantOutput defines the response for selecting a slot's enchant
type SelectEnchantOutput struct {
	State build.State
	Query string
}

// UpdateDetailsInput defines the request for editing title and description.
// Nil fields are left unchanged.
type UpdateDetailsInput struct {
	Query       string
	Title       *string
	Description *string
}

// UpdateDetailsOutput defines the response for editing title and description
type UpdateDetailsOutput struct {
	State build.State
	Query string
}

// ListEnchantsInput defines the request for listing enchant options
type ListEnchantsInput struct {
	Slot equipment.Slot
	// Base identifier, or a full item identifier
	Base string
}

// ListEnchantsOutput defines the response for listing enchant options
type ListEnchantsOutput struct {
	Options []string
	// Default is the level pre-selected when the item is picked
	Default string
	// Locked is set when there is exactly one option and it cannot be changed
	Locked bool
}
