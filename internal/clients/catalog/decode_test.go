package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muutmoku/ao-build-share/internal/clients/catalog"
	"github.com/muutmoku/ao-build-share/internal/errors"
)

func TestDecodeRecords(t *testing.T) {
	doc := []byte(`[
	  {
	    "uniqueName": "T5_MAIN_SWORD",
	    "enchantments": {"enchantments": [{"enchantmentLevel": 1}, {"enchantmentLevel": "2"}, {}]},
	    "localizedNames": {"EN-US": "Expert's Broadsword", "JA-JP": "エキスパートのブロードソード", "XX": 5}
	  },
	  {"uniqueName": "T5_MAIN_SWORD@3", "enchantmentLevel": 3},
	  {"uniqueName": 42},
	  "loose string",
	  {"localizedNames": {"EN-US": "nameless"}}
	]`)

	records, err := catalog.DecodeRecords(doc)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "T5_MAIN_SWORD", first.UniqueName)
	assert.Nil(t, first.EnchantmentLevel)
	require.Len(t, first.Variants, 3)
	require.NotNil(t, first.Variants[0].EnchantmentLevel)
	assert.Equal(t, 1, *first.Variants[0].EnchantmentLevel)
	require.NotNil(t, first.Variants[1].EnchantmentLevel)
	assert.Equal(t, 2, *first.Variants[1].EnchantmentLevel)
	assert.Nil(t, first.Variants[2].EnchantmentLevel)
	assert.Equal(t, map[string]string{
		"EN-US": "Expert's Broadsword",
		"JA-JP": "エキスパートのブロードソード",
	}, first.LocalizedNames)

	second := records[1]
	require.NotNil(t, second.EnchantmentLevel)
	assert.Equal(t, 3, *second.EnchantmentLevel)
	assert.Nil(t, second.Variants)
}

func TestDecodeRecordsRejectsNonArrays(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "object", doc: `{"uniqueName": "T4_BAG"}`},
		{name: "invalid json", doc: `[{"uniqueName": `},
		{name: "empty", doc: ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.DecodeRecords([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestDecodeRecordsEmptyArray(t *testing.T) {
	records, err := catalog.DecodeRecords([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}
