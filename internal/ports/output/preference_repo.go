package output

import (
	"context"

	"deeplbot/internal/domain/entities"
)

// PreferenceRepository stores per-user target languages.
// Find returns domain.ErrPreferenceNotFound when the user has none.
type PreferenceRepository interface {
	Find(ctx context.Context, userID string) (*entities.Preference, error)
	Upsert(ctx context.Context, pref *entities.Preference) error
	Delete(ctx context.Context, userID string) error
}
