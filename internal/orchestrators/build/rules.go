package build

import (
	"github.com/muutmoku/ao-build-share/internal/engine/enchant"
	"github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/entities/item"
	"github.com/muutmoku/ao-build-share/internal/errors"
)

// IndexSource provides the enchant index of each loaded slot
type IndexSource interface {
	Index(slot equipment.Slot) (enchant.Index, bool)
}

// DefaultEnchant is the level pre-selected for a set of options:
// the first (or only) option, empty when there are none.
func DefaultEnchant(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

func contains(options []string, level string) bool {
	for _, o := range options {
		if o == level {
			return true
		}
	}
	return false
}

// SelectItem returns a copy of state with slot set to itemID and its enchant
// re-derived from index. An empty itemID clears the slot.
func SelectItem(state build.State, slot equipment.Slot, itemID string, index enchant.Index) (build.State, error) {
	if !slot.IsValid() {
		return state, errors.InvalidArgumentf("unknown slot %q", slot)
	}

	var options []string
	if itemID != "" {
		id, ok := item.Parse(itemID)
		if !ok {
			return state, errors.InvalidArgumentf("malformed item identifier %q", itemID).
				WithMeta("slot", slot.String())
		}
		options = index.Options(id.Base)
	}

	next := state.Clone()
	next.Slots[slot] = itemID
	next.Enchants[slot] = DefaultEnchant(options)
	return next, nil
}

// SelectEnchant returns a copy of state with slot's enchant set to level.
// The level must be one of the current item's options; with no options only
// the empty level is accepted. Rejected edits return state unchanged.
func SelectEnchant(state build.State, slot equipment.Slot, level string, index enchant.Index) (build.State, error) {
	if !slot.IsValid() {
		return state, errors.InvalidArgumentf("unknown slot %q", slot)
	}

	options := index.OptionsFor(state.Item(slot))
	switch {
	case len(options) == 0 && level != "":
		return state, errors.InvalidArgumentf("slot %s has no enchant options", slot).
			WithMeta("enchant", level)
	case len(options) > 0 && !contains(options, level):
		return state, errors.InvalidArgumentf("enchant %q is not available for %s", level, state.Item(slot)).
			WithMeta("slot", slot.String()).
			WithMeta("options", options)
	}

	next := state.Clone()
	next.Enchants[slot] = level
	return next, nil
}

// Normalize reconciles a decoded state with the loaded catalogs.
// Malformed item identifiers are cleared and empty items carry no enchant.
// Slots whose catalog is not loaded keep their enchant as is; otherwise an
// enchant outside the item's options is replaced by the default option.
func Normalize(state build.State, indexes IndexSource) build.State {
	next := state.Clone()

	for _, slot := range equipment.AllSlots() {
		itemID := next.Slots[slot]
		if itemID != "" {
			if _, ok := item.Parse(itemID); !ok {
				itemID = ""
				next.Slots[slot] = ""
			}
		}
		if itemID == "" {
			next.Enchants[slot] = ""
			continue
		}

		index, loaded := indexes.Index(slot)
		if !loaded {
			continue
		}

		options := index.OptionsFor(itemID)
		if len(options) == 0 {
			next.Enchants[slot] = ""
			continue
		}
		if !contains(options, next.Enchants[slot]) {
			next.Enchants[slot] = DefaultEnchant(options)
		}
	}

	return next
}

// SetTitle returns a copy of state with a new title
func SetTitle(state build.State, title string) build.State {
	next := state.Clone()
	next.Title = title
	return next
}

// SetDescription returns a copy of state with a new description
func SetDescription(state build.State, description string) build.State {
	next := state.Clone()
	next.Description = description
	return next
}
