package catalog

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	entities "github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/entities/item"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/services/catalog"
)

// SearchItems lists the named items of a loaded slot in catalog display order.
// A query first matches as a case-insensitive substring of the localized name
// or unique name; when nothing matches, names within a small edit distance
// of the query are returned closest first.
func (o *Orchestrator) SearchItems(_ context.Context, input *catalog.SearchItemsInput) (*catalog.SearchItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	records, ok := o.snapshot.Records(input.Slot)
	if !ok {
		return nil, errors.FailedPreconditionf("catalog for slot %s is not loaded", input.Slot)
	}
	index, _ := o.snapshot.Index(input.Slot)

	lang := entities.LanguageOrDefault(input.Lang)
	limit := input.Limit
	if limit == 0 {
		limit = catalog.DefaultSearchLimit
	}

	named := displayOrder(records, lang)
	matches := filterItems(named, lang, strings.ToLower(strings.TrimSpace(input.Query)))
	if len(matches) > limit {
		matches = matches[:limit]
	}

	items := make([]*catalog.ItemSummary, 0, len(matches))
	for _, rec := range matches {
		summary := &catalog.ItemSummary{
			UniqueName: rec.UniqueName,
			Name:       rec.Name(lang),
		}
		if id, ok := item.Parse(rec.UniqueName); ok {
			summary.Tier = id.Tier
			summary.Base = id.Base
			summary.Enchants = index.Options(id.Base)
		}
		items = append(items, summary)
	}

	return &catalog.SearchItemsOutput{Items: items}, nil
}

var tierPrefix = regexp.MustCompile(`^T\d+$`)

// sortKey splits a unique name into its name without the tier prefix and the tier
func sortKey(uniqueName string) (string, int) {
	prefix, rest, found := strings.Cut(uniqueName, "_")
	if !found || !tierPrefix.MatchString(prefix) {
		return uniqueName, 0
	}
	tier, _ := strconv.Atoi(prefix[1:]) // nolint:errcheck // digits only
	return rest, tier
}

// displayOrder keeps the records named in lang, grouped by item and ascending tier
func displayOrder(records []entities.Record, lang string) []entities.Record {
	out := make([]entities.Record, 0, len(records))
	for _, rec := range records {
		if rec.HasName(lang) {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ki, ti := sortKey(out[i].UniqueName)
		kj, tj := sortKey(out[j].UniqueName)
		if ki != kj {
			return ki < kj
		}
		return ti < tj
	})

	return out
}

type fuzzyMatch struct {
	rec  entities.Record
	dist int
}

func filterItems(records []entities.Record, lang, query string) []entities.Record {
	if query == "" {
		return records
	}

	var exact []entities.Record
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name(lang)), query) ||
			strings.Contains(strings.ToLower(rec.UniqueName), query) {
			exact = append(exact, rec)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	limit := distanceLimit(utf8.RuneCountInString(query))
	var fuzzy []fuzzyMatch
	for _, rec := range records {
		best := -1
		for _, word := range strings.Fields(strings.ToLower(rec.Name(lang))) {
			dist := levenshtein.ComputeDistance(query, word)
			if dist > limit {
				continue
			}
			if best < 0 || dist < best {
				best = dist
			}
		}
		if best >= 0 {
			fuzzy = append(fuzzy, fuzzyMatch{rec: rec, dist: best})
		}
	}

	sort.SliceStable(fuzzy, func(i, j int) bool {
		return fuzzy[i].dist < fuzzy[j].dist
	})

	out := make([]entities.Record, len(fuzzy))
	for i, m := range fuzzy {
		out[i] = m.rec
	}
	return out
}

// distanceLimit is the edit budget for a query of length runes
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
