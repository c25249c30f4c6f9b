package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muutmoku/ao-build-share/internal/entities/item"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		wantOK    bool
		wantTier  int
		wantBase  string
		wantLevel int
		wantHas   bool
	}{
		{
			name:     "plain identifier",
			raw:      "T4_MAIN_SWORD",
			wantOK:   true,
			wantTier: 4,
			wantBase: "MAIN_SWORD",
		},
		{
			name:      "identifier with level",
			raw:       "T8_2H_CURSEDSTAFF@3",
			wantOK:    true,
			wantTier:  8,
			wantBase:  "2H_CURSEDSTAFF",
			wantLevel: 3,
			wantHas:   true,
		},
		{
			name:      "multi digit level",
			raw:       "T5_BAG@12",
			wantOK:    true,
			wantTier:  5,
			wantBase:  "BAG",
			wantLevel: 12,
			wantHas:   true,
		},
		{
			name:     "only one tier prefix is stripped",
			raw:      "T4_T5_ODD",
			wantOK:   true,
			wantTier: 4,
			wantBase: "T5_ODD",
		},
		{
			name:   "garbage",
			raw:    "GARBAGE",
			wantOK: false,
		},
		{
			name:   "empty",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "zero tier",
			raw:    "T0_HEAD",
			wantOK: false,
		},
		{
			name:   "missing base",
			raw:    "T4_",
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := item.Parse(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}
			assert.Equal(t, tc.wantTier, id.Tier)
			assert.Equal(t, tc.wantBase, id.Base)
			assert.Equal(t, tc.wantLevel, id.Level)
			assert.Equal(t, tc.wantHas, id.HasLevel)
		})
	}
}

func TestBaseOf(t *testing.T) {
	assert.Equal(t, "MAIN_SWORD", item.BaseOf("T6_MAIN_SWORD@1"))
	assert.Equal(t, "", item.BaseOf("not-an-item"))
}

func TestRenderID(t *testing.T) {
	id, ok := item.Parse("T4_MAIN_SWORD@2")
	assert.True(t, ok)

	assert.Equal(t, "T4_MAIN_SWORD", id.RenderID(""))
	assert.Equal(t, "T4_MAIN_SWORD", id.RenderID("0"))
	assert.Equal(t, "T4_MAIN_SWORD@3", id.RenderID("3"))
}

func TestUnenchantedKeepsRawSpelling(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{raw: "T04_MAIN_SWORD@1", want: "T04_MAIN_SWORD"},
		{raw: "T04_MAIN_SWORD", want: "T04_MAIN_SWORD"},
		{raw: "T6_HEAD_PLATE_SET1@2", want: "T6_HEAD_PLATE_SET1"},
		{raw: "T5_A@B@3", want: "T5_A@B"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			id, ok := item.Parse(tc.raw)
			require.True(t, ok)
			assert.Equal(t, tc.want, id.Unenchanted())
		})
	}

	id, ok := item.Parse("T04_MAIN_SWORD@1")
	require.True(t, ok)
	assert.Equal(t, "T04_MAIN_SWORD@2", id.RenderID("2"))
}
