package language

import (
	"golang.org/x/text/language"
)

// DefaultTarget is used when a locale has no DeepL equivalent.
const DefaultTarget = "EN-US"

// Discord locale -> DeepL target code.
var localeTargets = map[string]string{
	"en-US":  "EN-US",
	"en-GB":  "EN-GB",
	"es-ES":  "ES",
	"es-419": "ES",
	"fr":     "FR",
	"de":     "DE",
	"it":     "IT",
	"ja":     "JA",
	"ko":     "KO",
	"pt-BR":  "PT-BR",
	"ru":     "RU",
	"zh-CN":  "ZH",
	"zh-TW":  "ZH-HANT",
	"bg":     "BG",
	"cs":     "CS",
	"da":     "DA",
	"el":     "EL",
	"fi":     "FI",
	"hu":     "HU",
	"id":     "ID",
	"lt":     "LT",
	"nl":     "NL",
	"no":     "NB",
	"pl":     "PL",
	"ro":     "RO",
	"sv-SE":  "SV",
	"tr":     "TR",
	"uk":     "UK",

	// base languages, reached through the x/text fallback
	"en": "EN-US",
	"es": "ES",
	"pt": "PT-BR",
	"sv": "SV",
	"zh": "ZH",
}

// TargetForLocale maps a Discord locale to a DeepL target code. On a miss the
// canonical tag and then its base language are tried ("fr-CA" -> "fr").
// Unmapped locales fall back to DefaultTarget.
func TargetForLocale(locale string) string {
	if target, ok := localeTargets[locale]; ok {
		return target
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultTarget
	}
	if target, ok := localeTargets[tag.String()]; ok {
		return target
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return DefaultTarget
	}
	if target, ok := localeTargets[base.String()]; ok {
		return target
	}
	return DefaultTarget
}
