// Package equipment defines the fixed equipment slots of a build
package equipment

import "strings"

// Slot represents one of the fixed equipment positions of a build
type Slot string

// Define all available equipment slots
const (
	SlotHead     Slot = "head"
	SlotArmor    Slot = "armor"
	SlotShoes    Slot = "shoes"
	SlotMainHand Slot = "mainhand"
	SlotOffHand  Slot = "offhand"
	SlotCape     Slot = "cape"
	SlotPotion   Slot = "potion"
	SlotFood     Slot = "food"
	SlotMount    Slot = "mount"
	SlotBag      Slot = "bag"
)

// enchantSuffix is appended to a slot name to form its enchant query key
const enchantSuffix = "Enchant"

// String returns the string representation of the equipment slot
func (s Slot) String() string {
	return string(s)
}

// EnchantKey returns the query key holding this slot's enchant level, e.g. "headEnchant"
func (s Slot) EnchantKey() string {
	return string(s) + enchantSuffix
}

// Label returns the human readable name used by the preview
func (s Slot) Label() string {
	switch s {
	case SlotMainHand:
		return "Main Hand"
	case SlotOffHand:
		return "Off Hand"
	case "":
		return ""
	default:
		return strings.ToUpper(string(s[:1])) + string(s[1:])
	}
}

// IsValid checks if the equipment slot is valid
func (s Slot) IsValid() bool {
	switch s {
	case SlotHead, SlotArmor, SlotShoes, SlotMainHand, SlotOffHand,
		SlotCape, SlotPotion, SlotFood, SlotMount, SlotBag:
		return true
	default:
		return false
	}
}

// AllSlots returns every slot in display order
func AllSlots() []Slot {
	return []Slot{
		SlotHead,
		SlotArmor,
		SlotShoes,
		SlotMainHand,
		SlotOffHand,
		SlotCape,
		SlotPotion,
		SlotFood,
		SlotMount,
		SlotBag,
	}
}

// SlotFromString converts a string to a Slot
// Returns the slot and true if valid, empty slot and false if invalid
func SlotFromString(s string) (Slot, bool) {
	slot := Slot(s)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}
