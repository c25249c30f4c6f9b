// Package catalog holds the item records published per slot by the remote item snapshot
package catalog

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is reported by records through the core.Entity contract
const EntityType = "catalog_item"

// DefaultLanguage is used whenever a requested language has no localized name
const DefaultLanguage = "EN-US"

// Record is one entry of a slot's catalog document
type Record struct {
	UniqueName string `json:"uniqueName"`
	// EnchantmentLevel is nil when the record does not declare one
	EnchantmentLevel *int `json:"enchantmentLevel,omitempty"`
	// Variants lists the nested enchantment variants, nil when the record has none
	Variants       []Variant         `json:"variants,omitempty"`
	LocalizedNames map[string]string `json:"localizedNames,omitempty"`
}

// Variant is a nested enchantment variant of a record
type Variant struct {
	EnchantmentLevel *int `json:"enchantmentLevel,omitempty"`
}

// GetID returns the record's unique name
func (r *Record) GetID() string {
	return r.UniqueName
}

// GetType returns the entity type of catalog records
func (r *Record) GetType() string {
	return EntityType
}

// Name resolves the display name for lang, falling back to DefaultLanguage
// and finally to the unique name itself.
func (r *Record) Name(lang string) string {
	if name := r.LocalizedNames[lang]; name != "" {
		return name
	}
	if name := r.LocalizedNames[DefaultLanguage]; name != "" {
		return name
	}
	return r.UniqueName
}

// HasName reports whether the record carries a localized name for lang
func (r *Record) HasName(lang string) bool {
	return r.LocalizedNames[lang] != ""
}

// Compile-time check that records satisfy the toolkit entity contract
var _ core.Entity = (*Record)(nil)

// IntPtr is a helper for building records with an explicit level
func IntPtr(v int) *int {
	return &v
}
