// Package codec maps build states to and from the flat key/value pairs of a share URL
package codec

import (
	"net/url"
	"strings"

	"github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
)

// Query keys that are not derived from slot names
const (
	KeyTitle       = "title"
	KeyDescription = "desc"
)

// Keys returns every build key in encoding order: title, desc, then each
// slot followed by its enchant key.
func Keys() []string {
	slots := equipment.AllSlots()
	keys := make([]string, 0, 2+2*len(slots))
	keys = append(keys, KeyTitle, KeyDescription)
	for _, slot := range slots {
		keys = append(keys, slot.String(), slot.EnchantKey())
	}
	return keys
}

// Encode flattens a state into key/value pairs. Every key is present even
// when its value is empty.
func Encode(s build.State) url.Values {
	v := make(url.Values, 2+2*len(equipment.AllSlots()))
	v.Set(KeyTitle, s.Title)
	v.Set(KeyDescription, s.Description)
	for _, slot := range equipment.AllSlots() {
		v.Set(slot.String(), s.Slots[slot])
		v.Set(slot.EnchantKey(), s.Enchants[slot])
	}
	return v
}

// Decode rebuilds a state from key/value pairs. Unknown keys are ignored and
// missing keys decode to empty strings, so the result always has every slot.
func Decode(v url.Values) build.State {
	s := build.New()
	s.Title = v.Get(KeyTitle)
	s.Description = v.Get(KeyDescription)
	for _, slot := range equipment.AllSlots() {
		s.Slots[slot] = v.Get(slot.String())
		s.Enchants[slot] = v.Get(slot.EnchantKey())
	}
	return s
}

// EncodeQuery renders a state as a query string in Keys order
func EncodeQuery(s build.State) string {
	v := Encode(s)
	var sb strings.Builder
	for i, key := range Keys() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v.Get(key)))
	}
	return sb.String()
}

// DecodeQuery parses a raw query string, with or without a leading '?'.
// Malformed pairs are dropped the same way url.ParseQuery drops them.
func DecodeQuery(query string) build.State {
	v, _ := url.ParseQuery(strings.TrimPrefix(query, "?")) //nolint:errcheck // partial results are still usable
	return Decode(v)
}
