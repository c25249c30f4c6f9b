package enchant

import (
	"sort"
	"strconv"

	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/entities/item"
)

// Index maps a base identifier to its ascending, de-duplicated enchant levels.
// An Index is never modified after BuildIndex returns it.
type Index struct {
	levels map[string][]string
}

// BuildIndex aggregates every parseable record of one slot.
// Malformed records are skipped. The result does not depend on record order.
func BuildIndex(records []catalog.Record) Index {
	seen := make(map[string]map[int]struct{})
	for _, rec := range records {
		facts, ok := ParseRecord(rec)
		if !ok {
			continue
		}
		set, exists := seen[facts.Base]
		if !exists {
			set = make(map[int]struct{}, len(facts.Levels))
			seen[facts.Base] = set
		}
		for _, l := range facts.Levels {
			set[l] = struct{}{}
		}
	}

	idx := Index{levels: make(map[string][]string, len(seen))}
	for base, set := range seen {
		nums := make([]int, 0, len(set))
		for l := range set {
			nums = append(nums, l)
		}
		sort.Ints(nums)

		out := make([]string, len(nums))
		for i, n := range nums {
			out[i] = strconv.Itoa(n)
		}
		idx.levels[base] = out
	}

	return idx
}

// Options returns the enchant levels known for base, or nil when unknown.
// The returned slice is a copy.
func (idx Index) Options(base string) []string {
	if base == "" {
		return nil
	}
	levels, ok := idx.levels[base]
	if !ok {
		return nil
	}
	out := make([]string, len(levels))
	copy(out, levels)
	return out
}

// OptionsFor returns the enchant levels for a raw item identifier
func (idx Index) OptionsFor(raw string) []string {
	return idx.Options(item.BaseOf(raw))
}

// Len returns the number of base identifiers in the index
func (idx Index) Len() int {
	return len(idx.levels)
}

// Bases returns every indexed base identifier in lexical order
func (idx Index) Bases() []string {
	out := make([]string, 0, len(idx.levels))
	for base := range idx.levels {
		out = append(out, base)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether level is one of the options of base
func (idx Index) Contains(base, level string) bool {
	for _, l := range idx.levels[base] {
		if l == level {
			return true
		}
	}
	return false
}
