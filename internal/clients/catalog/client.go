// Package catalog is the client for the remote per-slot item snapshot
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/muutmoku/ao-build-share/internal/clients/catalog Client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
)

const (
	// DefaultBaseURL serves the latest snapshot, one <slot>.json document per slot
	DefaultBaseURL = "https://muutmoku.github.io/ao-item-snapshot/data/latest/"

	// DefaultHTTPTimeout bounds a single document download
	DefaultHTTPTimeout = 30 * time.Second

	// maxDocumentSize caps how much of a response body is read
	maxDocumentSize = 64 << 20
)

// Client defines the interface for fetching catalog documents
type Client interface {
	// FetchSlot downloads the raw catalog document of a slot
	// Returns errors.InvalidArgument for unknown slots
	// Returns errors.CodeNotFound when the snapshot has no document for the slot
	// Returns errors.CodeUnavailable for transport failures and unexpected statuses
	FetchSlot(ctx context.Context, slot equipment.Slot) ([]byte, error)
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL of the snapshot (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for document requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return errors.InvalidArgumentf("base URL must be http(s): %s", cfg.BaseURL)
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new catalog client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

// DocumentURL returns where the document of slot is published under baseURL
func DocumentURL(baseURL string, slot equipment.Slot) string {
	return fmt.Sprintf("%s%s.json", baseURL, slot)
}

func (c *client) FetchSlot(ctx context.Context, slot equipment.Slot) ([]byte, error) {
	if !slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot: %q", slot)
	}

	url := DocumentURL(c.baseURL, slot)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", url)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch catalog for slot %s", slot)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body fully read or abandoned
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("catalog for slot %s not found", slot).
			WithMeta("url", url)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Unavailablef("catalog for slot %s returned status %d", slot, resp.StatusCode).
			WithMeta("url", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read catalog for slot %s", slot)
	}

	slog.DebugContext(ctx, "fetched catalog document",
		"slot", slot,
		"bytes", len(body),
		"duration", time.Since(start))

	return body, nil
}
