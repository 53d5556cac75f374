package input

import "context"

type PreferenceUseCase interface {
	// Enabled reports whether preferences can be stored at all.
	Enabled() bool
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID, targetLang string) (string, error)
	Clear(ctx context.Context, userID string) error
}
