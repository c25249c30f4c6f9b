package catalog

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	entities "github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/errors"
)

// DecodeRecords converts a catalog document into records.
//
// The snapshot is hand maintained and not every entry has the same shape, so
// decoding is lenient: entries that are not objects or have no string
// uniqueName are dropped, levels may be numbers or numeric strings, and
// non-string localized names are ignored. Only a document that is not a JSON
// array fails.
func DecodeRecords(doc []byte) ([]entities.Record, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.InvalidArgument("catalog document is not valid JSON")
	}

	root := gjson.ParseBytes(doc)
	if !root.IsArray() {
		return nil, errors.InvalidArgument("catalog document must be a JSON array")
	}

	entries := root.Array()
	records := make([]entities.Record, 0, len(entries))
	for _, entry := range entries {
		rec, ok := decodeRecord(entry)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func decodeRecord(entry gjson.Result) (entities.Record, bool) {
	if !entry.IsObject() {
		return entities.Record{}, false
	}

	name := entry.Get("uniqueName")
	if name.Type != gjson.String || name.Str == "" {
		return entities.Record{}, false
	}

	rec := entities.Record{UniqueName: name.Str}

	if lvl, ok := decodeLevel(entry.Get("enchantmentLevel")); ok {
		rec.EnchantmentLevel = &lvl
	}

	if nested := entry.Get("enchantments.enchantments"); nested.IsArray() {
		variants := nested.Array()
		rec.Variants = make([]entities.Variant, 0, len(variants))
		for _, v := range variants {
			var variant entities.Variant
			if lvl, ok := decodeLevel(v.Get("enchantmentLevel")); ok {
				variant.EnchantmentLevel = &lvl
			}
			rec.Variants = append(rec.Variants, variant)
		}
	}

	if names := entry.Get("localizedNames"); names.IsObject() {
		rec.LocalizedNames = make(map[string]string)
		names.ForEach(func(lang, value gjson.Result) bool {
			if value.Type == gjson.String {
				rec.LocalizedNames[lang.String()] = value.Str
			}
			return true
		})
	}

	return rec, true
}

func decodeLevel(r gjson.Result) (int, bool) {
	switch r.Type {
	case gjson.Number:
		return int(r.Int()), true
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(r.Str))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
