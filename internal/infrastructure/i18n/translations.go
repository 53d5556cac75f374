package i18n

import (
	"embed"
	"log"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"deeplbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.fr.toml", "active.de.toml", "active.es.toml"}

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator renders bot replies with go-i18n. Discord locales ("en-US", "es-419",
// "zh-TW") are matched against the bundled languages, and one localizer is kept
// per matched language.
type Translator struct {
	bundle          *i18n.Bundle
	matcher         language.Matcher
	supported       []language.Tag
	defaultLanguage language.Tag
	localizers      sync.Map // language tag string -> *i18n.Localizer
}

// NewTranslator builds a Translator using the given default locale (e.g. "en").
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	supported := bundle.LanguageTags()
	return &Translator{
		bundle:          bundle,
		matcher:         language.NewMatcher(supported),
		supported:       supported,
		defaultLanguage: tag,
	}
}

// Match returns the bundled language closest to a Discord locale, or the
// default language when nothing is close enough.
func (t *Translator) Match(locale string) language.Tag {
	if locale == "" {
		return t.defaultLanguage
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return t.defaultLanguage
	}
	_, index, confidence := t.matcher.Match(requested)
	if confidence == language.No {
		return t.defaultLanguage
	}
	return t.supported[index]
}

func (t *Translator) localizer(tag language.Tag) *i18n.Localizer {
	key := tag.String()
	if l, ok := t.localizers.Load(key); ok {
		return l.(*i18n.Localizer)
	}
	l, _ := t.localizers.LoadOrStore(key, i18n.NewLocalizer(t.bundle, key, t.defaultLanguage.String()))
	return l.(*i18n.Localizer)
}

// T renders the message identified by key for the given locale.
// A message missing in the matched language comes from the default language,
// and a key missing everywhere is returned as is.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	tag := t.Match(locale)
	msg, err := t.localizer(tag).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locale=%s, matched=%s): %v", key, locale, tag, err)
		return key
	}
	return msg
}
