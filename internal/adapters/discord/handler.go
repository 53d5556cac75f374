package discord

import (
	"deeplbot/internal/ports/input"
	"deeplbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	translationUseCase input.TranslationUseCase
	preferenceUseCase  input.PreferenceUseCase
	translator         output.T
	defaultLocale      string
}

// NewHandler creates a Handler.
func NewHandler(
	translationUseCase input.TranslationUseCase,
	preferenceUseCase input.PreferenceUseCase,
	translator output.T,
	defaultLocale string,
) *Handler {
	return &Handler{
		translationUseCase: translationUseCase,
		preferenceUseCase:  preferenceUseCase,
		translator:         translator,
		defaultLocale:      defaultLocale,
	}
}

// t renders a user-facing message, falling back to the key without a translator.
func (h *Handler) t(locale, key string, data map[string]any) string {
	if h.translator == nil {
		return key
	}
	return h.translator.T(locale, key, data)
}
