package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/entities"
	"deeplbot/internal/infrastructure/database/sqlc_generated"
	"deeplbot/internal/ports/output"
)

var _ output.PreferenceRepository = (*PreferenceRepository)(nil)

// PreferenceRepository implements output.PreferenceRepository using sqlc + pgx.
type PreferenceRepository struct {
	q *sqlc_generated.Queries
}

// NewPreferenceRepository creates a PreferenceRepository.
func NewPreferenceRepository(q *sqlc_generated.Queries) *PreferenceRepository {
	return &PreferenceRepository{q: q}
}

func (r *PreferenceRepository) Find(ctx context.Context, userID string) (*entities.Preference, error) {
	row, err := r.q.GetUserLanguagePreference(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get language preference: %w", err)
	}
	p := preferenceToDomain(row)
	return &p, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, pref *entities.Preference) error {
	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	row, err := r.q.UpsertUserLanguagePreference(ctx, sqlc_generated.UpsertUserLanguagePreferenceParams{
		UserID:     pref.UserID,
		TargetLang: pref.TargetLang,
		UpdatedAt:  timeToPgtypeTimestamptz(updatedAt),
	})
	if err != nil {
		return fmt.Errorf("upsert language preference: %w", err)
	}
	pref.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

// Delete is idempotent: removing a missing preference is not an error.
func (r *PreferenceRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.q.DeleteUserLanguagePreference(ctx, userID); err != nil {
		return fmt.Errorf("delete language preference: %w", err)
	}
	return nil
}
