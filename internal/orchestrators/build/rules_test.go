package build_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/muutmoku/ao-build-share/internal/engine/enchant"
	entities "github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/orchestrators/build"
)

// indexes is a fixed IndexSource
type indexes map[equipment.Slot]enchant.Index

func (i indexes) Index(slot equipment.Slot) (enchant.Index, bool) {
	idx, ok := i[slot]
	return idx, ok
}

func indexOf(names ...string) enchant.Index {
	records := make([]catalog.Record, len(names))
	for i, n := range names {
		records[i] = catalog.Record{UniqueName: n}
	}
	return enchant.BuildIndex(records)
}

type RulesTestSuite struct {
	suite.Suite
	mainhand enchant.Index
	head     enchant.Index
	loaded   indexes
}

func (s *RulesTestSuite) SetupTest() {
	s.mainhand = indexOf("T4_MAIN_SWORD", "T4_MAIN_SWORD@1", "T5_MAIN_SWORD@2")
	s.head = indexOf("T6_HEAD_UNIQUE")
	s.loaded = indexes{
		equipment.SlotMainHand: s.mainhand,
		equipment.SlotHead:     s.head,
	}
}

func (s *RulesTestSuite) TestDefaultEnchant() {
	s.Equal("", build.DefaultEnchant(nil))
	s.Equal("0", build.DefaultEnchant([]string{"0"}))
	s.Equal("1", build.DefaultEnchant([]string{"1", "2"}))
}

func (s *RulesTestSuite) TestSelectItemPicksFirstOption() {
	state, err := build.SelectItem(entities.New(), equipment.SlotMainHand, "T4_MAIN_SWORD@1", s.mainhand)
	s.Require().NoError(err)
	s.Equal("T4_MAIN_SWORD@1", state.Item(equipment.SlotMainHand))
	s.Equal("0", state.Enchant(equipment.SlotMainHand))
}

func (s *RulesTestSuite) TestSelectItemForcesSingleOption() {
	state, err := build.SelectItem(entities.New(), equipment.SlotHead, "T6_HEAD_UNIQUE", s.head)
	s.Require().NoError(err)
	s.Equal("0", state.Enchant(equipment.SlotHead))

	_, err = build.SelectEnchant(state, equipment.SlotHead, "1", s.head)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RulesTestSuite) TestSelectItemUnknownBase() {
	state, err := build.SelectItem(entities.New(), equipment.SlotMainHand, "T4_MAIN_AXE", s.mainhand)
	s.Require().NoError(err)
	s.Equal("T4_MAIN_AXE", state.Item(equipment.SlotMainHand))
	s.Equal("", state.Enchant(equipment.SlotMainHand))
}

func (s *RulesTestSuite) TestSelectItemClears() {
	state, err := build.SelectItem(entities.New(), equipment.SlotMainHand, "T4_MAIN_SWORD", s.mainhand)
	s.Require().NoError(err)
	state, err = build.SelectEnchant(state, equipment.SlotMainHand, "2", s.mainhand)
	s.Require().NoError(err)

	cleared, err := build.SelectItem(state, equipment.SlotMainHand, "", s.mainhand)
	s.Require().NoError(err)
	s.Equal("", cleared.Item(equipment.SlotMainHand))
	s.Equal("", cleared.Enchant(equipment.SlotMainHand))
}

func (s *RulesTestSuite) TestSelectItemNeverMutatesInput() {
	before := entities.New()
	_, err := build.SelectItem(before, equipment.SlotMainHand, "T4_MAIN_SWORD", s.mainhand)
	s.Require().NoError(err)
	s.True(before.Equal(entities.New()))
}

func (s *RulesTestSuite) TestSelectItemRejects() {
	_, err := build.SelectItem(entities.New(), equipment.SlotMainHand, "GARBAGE", s.mainhand)
	s.True(errors.IsInvalidArgument(err))

	_, err = build.SelectItem(entities.New(), equipment.Slot("ring"), "T4_RING", s.mainhand)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RulesTestSuite) TestSelectEnchantKeepsItem() {
	state, err := build.SelectItem(entities.New(), equipment.SlotMainHand, "T4_MAIN_SWORD", s.mainhand)
	s.Require().NoError(err)

	next, err := build.SelectEnchant(state, equipment.SlotMainHand, "2", s.mainhand)
	s.Require().NoError(err)
	s.Equal("T4_MAIN_SWORD", next.Item(equipment.SlotMainHand))
	s.Equal("2", next.Enchant(equipment.SlotMainHand))
	s.Equal("0", state.Enchant(equipment.SlotMainHand))
}

func (s *RulesTestSuite) TestSelectEnchantRejectsAndKeepsPrior() {
	state, err := build.SelectItem(entities.New(), equipment.SlotMainHand, "T4_MAIN_SWORD", s.mainhand)
	s.Require().NoError(err)

	testCases := []struct {
		name  string
		slot  equipment.Slot
		level string
	}{
		{name: "not an option", slot: equipment.SlotMainHand, level: "4"},
		{name: "empty with options", slot: equipment.SlotMainHand, level: ""},
		{name: "no options", slot: equipment.SlotCape, level: "1"},
		{name: "unknown slot", slot: equipment.Slot("ring"), level: "1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := build.SelectEnchant(state, tc.slot, tc.level, s.mainhand)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.True(got.Equal(state))
		})
	}

	got, err := build.SelectEnchant(state, equipment.SlotCape, "", s.mainhand)
	s.Require().NoError(err)
	s.Equal("", got.Enchant(equipment.SlotCape))
}

func (s *RulesTestSuite) TestNormalize() {
	state := entities.New()
	state.Slots[equipment.SlotMainHand] = "T4_MAIN_SWORD"
	state.Enchants[equipment.SlotMainHand] = "7"
	state.Slots[equipment.SlotHead] = "T6_HEAD_UNIQUE"
	state.Enchants[equipment.SlotHead] = ""
	state.Slots[equipment.SlotCape] = "T4_CAPE"
	state.Enchants[equipment.SlotCape] = "3"
	state.Slots[equipment.SlotShoes] = "GARBAGE"
	state.Enchants[equipment.SlotShoes] = "1"
	state.Enchants[equipment.SlotBag] = "2"

	got := build.Normalize(state, s.loaded)

	s.Equal("0", got.Enchant(equipment.SlotMainHand), "clamped to default")
	s.Equal("0", got.Enchant(equipment.SlotHead), "single option forced")
	s.Equal("3", got.Enchant(equipment.SlotCape), "unloaded slot untouched")
	s.Equal("", got.Item(equipment.SlotShoes), "malformed item cleared")
	s.Equal("", got.Enchant(equipment.SlotShoes))
	s.Equal("", got.Enchant(equipment.SlotBag), "empty item carries no enchant")

	// valid choice kept
	state.Enchants[equipment.SlotMainHand] = "2"
	s.Equal("2", build.Normalize(state, s.loaded).Enchant(equipment.SlotMainHand))

	// known slot, unknown base
	state.Slots[equipment.SlotMainHand] = "T4_MAIN_AXE"
	s.Equal("", build.Normalize(state, s.loaded).Enchant(equipment.SlotMainHand))
}

func (s *RulesTestSuite) TestNormalizeIsIdempotent() {
	state := entities.New()
	state.Slots[equipment.SlotMainHand] = "T5_MAIN_SWORD@2"
	state.Enchants[equipment.SlotMainHand] = "9"

	once := build.Normalize(state, s.loaded)
	twice := build.Normalize(once, s.loaded)
	s.True(once.Equal(twice))
}

func (s *RulesTestSuite) TestDetails() {
	state := build.SetDescription(build.SetTitle(entities.New(), "ZvZ healer"), "Hallowfall & robe")
	s.Equal("ZvZ healer", state.Title)
	s.Equal("Hallowfall & robe", state.Description)
}

func TestRulesTestSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}
