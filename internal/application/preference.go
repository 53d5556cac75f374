package application

import (
	"context"
	"fmt"
	"time"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/entities"
	"deeplbot/internal/domain/language"
	"deeplbot/internal/ports/input"
	"deeplbot/internal/ports/output"
)

var _ input.PreferenceUseCase = (*PreferenceService)(nil)

type PreferenceService struct {
	repo output.PreferenceRepository
	now  func() time.Time
}

// NewPreferenceService creates a PreferenceService. A nil repo disables preferences.
func NewPreferenceService(repo output.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo, now: time.Now}
}

func (s *PreferenceService) Enabled() bool {
	return s.repo != nil
}

func (s *PreferenceService) Get(ctx context.Context, userID string) (string, error) {
	if !s.Enabled() {
		return "", domain.ErrPreferencesDisabled
	}
	pref, err := s.repo.Find(ctx, userID)
	if err != nil {
		return "", err
	}
	return pref.TargetLang, nil
}

// Set stores targetLang for the user and returns the normalized code.
func (s *PreferenceService) Set(ctx context.Context, userID, targetLang string) (string, error) {
	if !s.Enabled() {
		return "", domain.ErrPreferencesDisabled
	}
	code := language.Normalize(targetLang)
	if !language.IsTarget(code) {
		return "", domain.ErrUnsupportedLanguage
	}
	pref := &entities.Preference{
		UserID:     userID,
		TargetLang: code,
		UpdatedAt:  s.now(),
	}
	if err := s.repo.Upsert(ctx, pref); err != nil {
		return "", fmt.Errorf("save preference: %w", err)
	}
	return code, nil
}

func (s *PreferenceService) Clear(ctx context.Context, userID string) error {
	if !s.Enabled() {
		return domain.ErrPreferencesDisabled
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete preference: %w", err)
	}
	return nil
}
