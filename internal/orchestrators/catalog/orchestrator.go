// Package catalog implements the catalog orchestrator: it keeps one snapshot
// of every slot's catalog loaded, backed by the document cache.
package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	catalogclient "github.com/muutmoku/ao-build-share/internal/clients/catalog"
	"github.com/muutmoku/ao-build-share/internal/engine/enchant"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/pkg/clock"
	catalogrepo "github.com/muutmoku/ao-build-share/internal/repositories/catalog"
	"github.com/muutmoku/ao-build-share/internal/services/catalog"
)

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client     catalogclient.Client
	Repository catalogrepo.Repository
	Clock      clock.Clock
	// CacheTTL of stored documents, zero uses the repository default
	CacheTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.CacheTTL < 0 {
		vb.Field("CacheTTL", "cannot be negative")
	}

	return vb.Build()
}

// Orchestrator implements the catalog.Service interface
type Orchestrator struct {
	client   catalogclient.Client
	repo     catalogrepo.Repository
	clock    clock.Clock
	cacheTTL time.Duration
	snapshot *Snapshot
}

// New creates a new catalog orchestrator with an empty snapshot
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		client:   cfg.Client,
		repo:     cfg.Repository,
		clock:    cfg.Clock,
		cacheTTL: cfg.CacheTTL,
		snapshot: NewSnapshot(),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ catalog.Service = (*Orchestrator)(nil)

// Snapshot returns the live snapshot the orchestrator loads into
func (o *Orchestrator) Snapshot() *Snapshot {
	return o.snapshot
}

// LoadSlot loads one slot into the snapshot
func (o *Orchestrator) LoadSlot(ctx context.Context, input *catalog.LoadSlotInput) (*catalog.LoadSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	generation := o.snapshot.begin(input.Slot)

	body, fromCache, err := o.document(ctx, input.Slot, input.Refresh)
	if err != nil {
		return nil, err
	}

	records, err := catalogclient.DecodeRecords(body)
	if err != nil && fromCache {
		slog.WarnContext(ctx, "Discarding unreadable cached catalog document", "slot", input.Slot, "error", err)
		o.evict(ctx, input.Slot)
		body, fromCache, err = o.document(ctx, input.Slot, true)
		if err != nil {
			return nil, err
		}
		records, err = catalogclient.DecodeRecords(body)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode catalog for slot %s", input.Slot)
	}
	if !fromCache {
		o.cache(ctx, input.Slot, body)
	}

	index := enchant.BuildIndex(records)
	loadedAt := o.clock.Now()
	if !o.snapshot.store(input.Slot, generation, records, index, loadedAt) {
		slog.DebugContext(ctx, "Discarded stale catalog load", "slot", input.Slot, "generation", generation)
	}

	slog.InfoContext(ctx, "Loaded catalog",
		"slot", input.Slot,
		"records", len(records),
		"bases", index.Len(),
		"from_cache", fromCache)

	return &catalog.LoadSlotOutput{
		Slot:      input.Slot,
		Records:   len(records),
		Bases:     index.Len(),
		FromCache: fromCache,
		LoadedAt:  loadedAt,
	}, nil
}

// LoadAll loads every slot concurrently
func (o *Orchestrator) LoadAll(ctx context.Context, input *catalog.LoadAllInput) (*catalog.LoadAllOutput, error) {
	if input == nil {
		input = &catalog.LoadAllInput{}
	}

	slots := equipment.AllSlots()
	results := make([]*catalog.LoadSlotOutput, len(slots))
	failures := make([]error, len(slots))
	var wg sync.WaitGroup

	for i, slot := range slots {
		wg.Add(1)
		go func(idx int, slot equipment.Slot) {
			defer wg.Done()

			out, err := o.LoadSlot(ctx, &catalog.LoadSlotInput{Slot: slot, Refresh: input.Refresh})
			if err != nil {
				slog.ErrorContext(ctx, "Failed to load catalog", "slot", slot, "error", err)
				failures[idx] = err
				return
			}
			results[idx] = out
		}(i, slot)
	}

	wg.Wait()

	output := &catalog.LoadAllOutput{}
	for i, slot := range slots {
		if failures[i] != nil {
			if output.Failed == nil {
				output.Failed = make(map[equipment.Slot]error)
			}
			output.Failed[slot] = failures[i]
			continue
		}
		output.Loaded = append(output.Loaded, results[i])
	}

	return output, nil
}

// document returns the raw document of slot, from the cache unless refresh is set.
// Fetched documents are not cached here; LoadSlot caches them once they decode.
func (o *Orchestrator) document(ctx context.Context, slot equipment.Slot, refresh bool) ([]byte, bool, error) {
	if !refresh {
		cached, err := o.repo.Get(ctx, catalogrepo.GetInput{Slot: slot})
		switch {
		case err == nil:
			return cached.Document.Body, true, nil
		case errors.IsNotFound(err):
			slog.DebugContext(ctx, "Catalog cache miss", "slot", slot)
		default:
			slog.WarnContext(ctx, "Catalog cache read failed", "slot", slot, "error", err)
		}
	}

	body, err := o.client.FetchSlot(ctx, slot)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to fetch catalog for slot %s", slot)
	}

	return body, false, nil
}

// cache stores a fetched document that has already decoded
func (o *Orchestrator) cache(ctx context.Context, slot equipment.Slot, body []byte) {
	_, err := o.repo.Put(ctx, catalogrepo.PutInput{
		Document: &catalogrepo.Document{
			Slot:      slot,
			Body:      body,
			FetchedAt: o.clock.Now(),
		},
		TTL: o.cacheTTL,
	})
	if err != nil {
		slog.WarnContext(ctx, "Catalog cache write failed", "slot", slot, "error", err)
	}
}

func (o *Orchestrator) evict(ctx context.Context, slot equipment.Slot) {
	_, err := o.repo.Delete(ctx, catalogrepo.DeleteInput{Slot: slot})
	if err != nil && !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "Catalog cache evict failed", "slot", slot, "error", err)
	}
}
