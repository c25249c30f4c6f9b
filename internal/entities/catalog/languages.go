package catalog

// Languages lists the display languages the catalog publishes names for
var Languages = []string{
	"EN-US",
	"JA-JP",
	"DE-DE",
	"FR-FR",
	"IT-IT",
	"RU-RU",
	"PL-PL",
	"TR-TR",
	"ID-ID",
	"AR-SA",
	"KO-KR",
	"PT-BR",
	"ZH-TW",
	"ZH-CN",
	"ES-ES",
}

// IsSupportedLanguage reports whether lang is one of Languages
func IsSupportedLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// LanguageOrDefault returns lang when supported, DefaultLanguage otherwise
func LanguageOrDefault(lang string) string {
	if IsSupportedLanguage(lang) {
		return lang
	}
	return DefaultLanguage
}
