package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/entities"
	"deeplbot/internal/domain/language"
	"deeplbot/internal/ports/input"
	"deeplbot/internal/ports/output"
	pkgdiscord "deeplbot/pkg/discord"
)

var _ input.TranslationUseCase = (*TranslationService)(nil)

// TranslationService runs one invocation: extract, one provider call, reassemble.
// It keeps no state between invocations.
type TranslationService struct {
	provider    output.TranslationProvider
	preferences output.PreferenceRepository
	translator  output.T
	now         func() time.Time
}

// NewTranslationService wires the use case. preferences may be nil, in which case the
// target language always comes from the user's locale.
func NewTranslationService(
	provider output.TranslationProvider,
	preferences output.PreferenceRepository,
	translator output.T,
) *TranslationService {
	return &TranslationService{
		provider:    provider,
		preferences: preferences,
		translator:  translator,
		now:         time.Now,
	}
}

func (s *TranslationService) TranslateMessage(ctx context.Context, req input.TranslateRequest) (*input.TranslateReply, error) {
	units := pkgdiscord.Extract(req.Message)
	if len(units) == 0 {
		return nil, domain.ErrNoTranslatableContent
	}

	target := s.resolveTarget(ctx, req.UserID, req.Locale)
	results, err := s.translateAll(ctx, units, target)
	if err != nil {
		return nil, err
	}

	assembler := pkgdiscord.Assembler{
		Provenance: func(sourceLang, targetLang string) string {
			return s.provenance(req.Locale, sourceLang, targetLang)
		},
		Now: s.now,
	}
	body, embeds, err := assembler.Reassemble(req.Message, units, results, target)
	if err != nil {
		return nil, err
	}

	reply := &input.TranslateReply{TargetLang: target}
	if body != nil {
		reply.Embeds = append(reply.Embeds, body)
	}
	reply.Embeds = append(reply.Embeds, embeds...)
	return reply, nil
}

// translateAll sends every unit in a single provider call and returns exactly one
// result per unit, in unit order.
func (s *TranslationService) translateAll(ctx context.Context, units []entities.Unit, targetLang string) ([]entities.Result, error) {
	resp, err := s.provider.Translate(ctx, pkgdiscord.Texts(units), targetLang)
	if err != nil {
		if errors.Is(err, domain.ErrProviderFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderFailure, err)
	}
	results := resp.Normalize()
	if len(results) != len(units) {
		return nil, domain.CountMismatch(len(units), len(results))
	}
	return results, nil
}

// resolveTarget prefers the user's stored language and falls back to the locale mapping.
func (s *TranslationService) resolveTarget(ctx context.Context, userID, locale string) string {
	if s.preferences != nil && userID != "" {
		pref, err := s.preferences.Find(ctx, userID)
		switch {
		case err == nil && language.IsTarget(pref.TargetLang):
			return language.Normalize(pref.TargetLang)
		case err != nil && !errors.Is(err, domain.ErrPreferenceNotFound):
			log.Printf("⚠️ Préférence de langue indisponible (user=%s): %v", userID, err)
		}
	}
	return language.TargetForLocale(locale)
}

func (s *TranslationService) provenance(locale, sourceLang, targetLang string) string {
	if s.translator == nil {
		return pkgdiscord.ProvenanceText(sourceLang, targetLang)
	}
	return s.translator.T(locale, "translate.footer", map[string]any{
		"Source": language.DisplayName(sourceLang),
		"Target": language.DisplayName(targetLang),
	})
}
