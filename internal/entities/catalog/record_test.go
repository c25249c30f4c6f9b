package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
)

func TestRecordName(t *testing.T) {
	rec := &catalog.Record{
		UniqueName: "T4_MAIN_SWORD",
		LocalizedNames: map[string]string{
			"EN-US": "Adept's Broadsword",
			"DE-DE": "Breitschwert des Adepten",
		},
	}

	assert.Equal(t, "Breitschwert des Adepten", rec.Name("DE-DE"))
	assert.Equal(t, "Adept's Broadsword", rec.Name("KO-KR"), "falls back to EN-US")

	bare := &catalog.Record{UniqueName: "T4_MAIN_SWORD"}
	assert.Equal(t, "T4_MAIN_SWORD", bare.Name("KO-KR"), "falls back to the unique name")
}

func TestRecordEntity(t *testing.T) {
	rec := &catalog.Record{UniqueName: "T5_BAG"}
	assert.Equal(t, "T5_BAG", rec.GetID())
	assert.Equal(t, catalog.EntityType, rec.GetType())
}

func TestLanguageOrDefault(t *testing.T) {
	assert.Equal(t, "JA-JP", catalog.LanguageOrDefault("JA-JP"))
	assert.Equal(t, "EN-US", catalog.LanguageOrDefault("xx-XX"))
	assert.Equal(t, "EN-US", catalog.LanguageOrDefault(""))
}
