// Package language holds the static language tables: DeepL target codes, their English
// display names, and the Discord locale to target mapping.
package language

import "strings"

var displayNames = map[string]string{
	"BG":      "Bulgarian",
	"CS":      "Czech",
	"DA":      "Danish",
	"DE":      "German",
	"EL":      "Greek",
	"EN":      "English",
	"EN-GB":   "British English",
	"EN-US":   "American English",
	"ES":      "Spanish",
	"ET":      "Estonian",
	"FI":      "Finnish",
	"FR":      "French",
	"HU":      "Hungarian",
	"ID":      "Indonesian",
	"IT":      "Italian",
	"JA":      "Japanese",
	"KO":      "Korean",
	"LT":      "Lithuanian",
	"LV":      "Latvian",
	"NB":      "Norwegian",
	"NL":      "Dutch",
	"PL":      "Polish",
	"PT":      "Portuguese",
	"PT-BR":   "Brazilian Portuguese",
	"PT-PT":   "Portuguese",
	"RO":      "Romanian",
	"RU":      "Russian",
	"SK":      "Slovak",
	"SL":      "Slovenian",
	"SV":      "Swedish",
	"TR":      "Turkish",
	"UK":      "Ukrainian",
	"ZH":      "Chinese",
	"ZH-HANS": "Simplified Chinese",
	"ZH-HANT": "Traditional Chinese",
	"IN":      "Indonesian",
	"HI":      "Hindi",
}

// targets lists the codes accepted as translation targets, in display order.
var targets = []string{
	"EN-US", "EN-GB", "BG", "CS", "DA", "DE", "EL", "ES", "ET", "FI", "FR", "HU",
	"ID", "IT", "JA", "KO", "LT", "LV", "NB", "NL", "PL", "PT-BR", "PT-PT", "RO",
	"RU", "SK", "SL", "SV", "TR", "UK", "ZH", "ZH-HANS", "ZH-HANT",
}

// Normalize upper-cases a language code and turns underscores into dashes.
func Normalize(code string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

// DisplayName returns the English name of a language code.
// Unknown two-letter codes are rendered as "Xx"; anything else is returned as is.
func DisplayName(code string) string {
	normalized := Normalize(code)
	if name, ok := displayNames[normalized]; ok {
		return name
	}
	if len(normalized) == 2 {
		return normalized[:1] + strings.ToLower(normalized[1:])
	}
	return code
}

// Targets returns the supported target codes. The slice is a copy.
func Targets() []string {
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}

// IsTarget reports whether code (any case) is a supported target.
func IsTarget(code string) bool {
	normalized := Normalize(code)
	for _, t := range targets {
		if t == normalized {
			return true
		}
	}
	return false
}
