// Package build implements the build orchestrator: pure selection rules
// applied against the live catalog snapshot.
package build

import (
	"context"
	"log/slog"

	"github.com/muutmoku/ao-build-share/internal/engine/enchant"
	entities "github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/item"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/services/build"
	"github.com/muutmoku/ao-build-share/internal/services/codec"
)

// Config holds the dependencies for the build orchestrator
type Config struct {
	Indexes IndexSource
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Indexes == nil {
		vb.RequiredField("Indexes")
	}
	return vb.Build()
}

// Orchestrator implements the build.Service interface
type Orchestrator struct {
	indexes IndexSource
}

// New creates a new build orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{indexes: cfg.Indexes}, nil
}

// Ensure Orchestrator implements the Service interface
var _ build.Service = (*Orchestrator)(nil)

func (o *Orchestrator) current(query string) entities.State {
	return Normalize(codec.DecodeQuery(query), o.indexes)
}

// GetBuild decodes and normalizes a share query
func (o *Orchestrator) GetBuild(_ context.Context, input *build.GetBuildInput) (*build.GetBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state := o.current(input.Query)
	return &build.GetBuildOutput{
		State: state,
		Query: codec.EncodeQuery(state),
	}, nil
}

// SelectItem sets a slot's item. A slot whose catalog is not loaded yet gets no enchant.
func (o *Orchestrator) SelectItem(ctx context.Context, input *build.SelectItemInput) (*build.SelectItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	index, loaded := o.indexes.Index(input.Slot)
	if !loaded {
		slog.DebugContext(ctx, "Selecting item before catalog is loaded", "slot", input.Slot)
	}

	state, err := SelectItem(o.current(input.Query), input.Slot, input.Item, index)
	if err != nil {
		return nil, err
	}

	return &build.SelectItemOutput{
		State: state,
		Query: codec.EncodeQuery(state),
	}, nil
}

// SelectEnchant sets a slot's enchant level
func (o *Orchestrator) SelectEnchant(ctx context.Context, input *build.SelectEnchantInput) (*build.SelectEnchantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	index, loaded := o.indexes.Index(input.Slot)
	if !loaded {
		return nil, errors.FailedPreconditionf("catalog for slot %s is not loaded", input.Slot)
	}

	state, err := SelectEnchant(o.current(input.Query), input.Slot, input.Enchant, index)
	if err != nil {
		slog.InfoContext(ctx, "Rejected enchant selection", "slot", input.Slot, "enchant", input.Enchant, "error", err)
		return nil, err
	}

	return &build.SelectEnchantOutput{
		State: state,
		Query: codec.EncodeQuery(state),
	}, nil
}

// UpdateDetails sets the title and/or description
func (o *Orchestrator) UpdateDetails(_ context.Context, input *build.UpdateDetailsInput) (*build.UpdateDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state := o.current(input.Query)
	if input.Title != nil {
		state = SetTitle(state, *input.Title)
	}
	if input.Description != nil {
		state = SetDescription(state, *input.Description)
	}

	return &build.UpdateDetailsOutput{
		State: state,
		Query: codec.EncodeQuery(state),
	}, nil
}

// ListEnchants returns the enchant options of a base item
func (o *Orchestrator) ListEnchants(_ context.Context, input *build.ListEnchantsInput) (*build.ListEnchantsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}
	if input.Base == "" {
		return nil, errors.InvalidArgument("base is required")
	}

	index, loaded := o.indexes.Index(input.Slot)
	if !loaded {
		return nil, errors.FailedPreconditionf("catalog for slot %s is not loaded", input.Slot)
	}

	options := lookupOptions(index, input.Base)
	return &build.ListEnchantsOutput{
		Options: options,
		Default: DefaultEnchant(options),
		Locked:  len(options) == 1,
	}, nil
}

// lookupOptions accepts either a base identifier or a full item identifier
func lookupOptions(index enchant.Index, base string) []string {
	if options := index.Options(base); options != nil {
		return options
	}
	if id, ok := item.Parse(base); ok {
		return index.Options(id.Base)
	}
	return nil
}
