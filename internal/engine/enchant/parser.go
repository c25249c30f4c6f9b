// Package enchant derives the valid enchant levels of every base item from a slot's catalog
package enchant

import (
	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/entities/item"
)

// Facts are the enchant levels one record contributes to its base identifier
type Facts struct {
	Base   string
	Levels []int
}

// ParseRecord extracts the base identifier and enchant levels of a record.
// Returns false when the unique name is not a valid item reference.
//
// The record's own level wins over the @<level> suffix of its unique name;
// when neither is present the level is 0. Nested variant levels are added on top.
func ParseRecord(rec catalog.Record) (Facts, bool) {
	id, ok := item.Parse(rec.UniqueName)
	if !ok {
		return Facts{}, false
	}

	levels := make([]int, 0, 1+len(rec.Variants))
	switch {
	case rec.EnchantmentLevel != nil && *rec.EnchantmentLevel >= 0:
		levels = append(levels, *rec.EnchantmentLevel)
	default:
		levels = append(levels, id.Level)
	}

	for _, v := range rec.Variants {
		if v.EnchantmentLevel != nil && *v.EnchantmentLevel >= 0 {
			levels = append(levels, *v.EnchantmentLevel)
		}
	}

	return Facts{Base: id.Base, Levels: levels}, true
}
