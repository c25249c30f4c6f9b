// Package preview implements the preview orchestrator
package preview

import (
	"context"
	"log/slog"
	"strings"

	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/orchestrators/build"
	"github.com/muutmoku/ao-build-share/internal/services/codec"
	"github.com/muutmoku/ao-build-share/internal/services/preview"
)

// Config holds the dependencies for the preview orchestrator
type Config struct {
	Records RecordSource
	// Indexes clamps decoded enchants before resolving
	Indexes build.IndexSource
	// RenderBaseURL of the image renderer (optional, defaults to DefaultRenderBaseURL)
	RenderBaseURL string
	// DefaultLang used when a request carries none (optional, defaults to EN-US)
	DefaultLang string
}

// Validate ensures all required dependencies are provided and sets defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Records == nil {
		vb.RequiredField("Records")
	}
	if c.Indexes == nil {
		vb.RequiredField("Indexes")
	}
	if c.RenderBaseURL == "" {
		c.RenderBaseURL = DefaultRenderBaseURL
	} else if !strings.HasPrefix(c.RenderBaseURL, "http://") && !strings.HasPrefix(c.RenderBaseURL, "https://") {
		vb.InvalidField("RenderBaseURL", "must be an http(s) URL")
	}
	if c.DefaultLang == "" {
		c.DefaultLang = catalog.DefaultLanguage
	} else if !catalog.IsSupportedLanguage(c.DefaultLang) {
		vb.InvalidField("DefaultLang", "unsupported language")
	}
	return vb.Build()
}

// Orchestrator implements the preview.Service interface
type Orchestrator struct {
	records       RecordSource
	indexes       build.IndexSource
	renderBaseURL string
	defaultLang   string
}

// New creates a new preview orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		records:       cfg.Records,
		indexes:       cfg.Indexes,
		renderBaseURL: cfg.RenderBaseURL,
		defaultLang:   cfg.DefaultLang,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ preview.Service = (*Orchestrator)(nil)

// PreviewBuild decodes the share query, normalizes it against the loaded
// catalogs and resolves its preview
func (o *Orchestrator) PreviewBuild(ctx context.Context, input *preview.PreviewBuildInput) (*preview.PreviewBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	lang := input.Lang
	if lang == "" {
		lang = o.defaultLang
	}

	state := build.Normalize(codec.DecodeQuery(input.Query), o.indexes)
	result := Resolve(state, lang, o.records, o.renderBaseURL)

	slog.DebugContext(ctx, "Resolved preview", "lang", result.Lang, "slots", len(result.Slots))

	return &preview.PreviewBuildOutput{Preview: result}, nil
}
