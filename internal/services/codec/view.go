package codec

import (
	"net/url"

	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
)

// View keys carry presentation settings next to the build keys
const (
	KeyLang   = "lang"
	KeyEditor = "editor"
)

// View holds the presentation settings of a share URL
type View struct {
	Lang   string
	Editor bool
}

// DecodeView reads the view settings. An unsupported language falls back to
// the catalog default; the editor is shown unless explicitly "false".
func DecodeView(v url.Values) View {
	return View{
		Lang:   catalog.LanguageOrDefault(v.Get(KeyLang)),
		Editor: v.Get(KeyEditor) != "false",
	}
}

// EncodeView writes the view settings into v
func EncodeView(v url.Values, view View) {
	v.Set(KeyLang, catalog.LanguageOrDefault(view.Lang))
	if view.Editor {
		v.Set(KeyEditor, "true")
	} else {
		v.Set(KeyEditor, "false")
	}
}
