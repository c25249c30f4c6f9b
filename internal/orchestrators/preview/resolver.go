package preview

import (
	"strings"

	"github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/entities/item"
	"github.com/muutmoku/ao-build-share/internal/services/preview"
)

// DefaultRenderBaseURL is the item image renderer
const DefaultRenderBaseURL = "https://render.albiononline.com/v1/item"

// RecordSource looks up loaded catalog records by exact unique name
type RecordSource interface {
	Record(slot equipment.Slot, uniqueName string) (catalog.Record, bool)
}

// Resolve builds the preview of state in lang. A slot is omitted when it is
// empty, its identifier is malformed, or no record matches it. The record is
// matched by exact unique name first, then by the unenchanted identifier.
func Resolve(state build.State, lang string, records RecordSource, renderBaseURL string) *preview.Preview {
	lang = catalog.LanguageOrDefault(lang)
	renderBaseURL = strings.TrimSuffix(renderBaseURL, "/")
	if renderBaseURL == "" {
		renderBaseURL = DefaultRenderBaseURL
	}

	out := &preview.Preview{
		Title:       state.Title,
		Description: state.Description,
		Lang:        lang,
		Slots:       []*preview.Descriptor{},
	}

	for _, slot := range equipment.AllSlots() {
		raw := state.Item(slot)
		if raw == "" {
			continue
		}
		id, ok := item.Parse(raw)
		if !ok {
			continue
		}

		rec, found := records.Record(slot, raw)
		if !found {
			rec, found = records.Record(slot, id.Unenchanted())
		}
		if !found {
			continue
		}

		level := state.Enchant(slot)
		renderID := id.RenderID(level)
		out.Slots = append(out.Slots, &preview.Descriptor{
			Slot:         slot,
			SlotLabel:    slot.Label(),
			Label:        rec.Name(lang),
			RenderID:     renderID,
			EnchantLevel: level,
			ImageURL:     renderBaseURL + "/" + renderID + ".png",
		})
	}

	return out
}
