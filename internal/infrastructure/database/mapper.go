package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"deeplbot/internal/domain/entities"
	"deeplbot/internal/infrastructure/database/sqlc_generated"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func preferenceToDomain(p sqlc_generated.UserLanguagePreference) entities.Preference {
	return entities.Preference{
		UserID:     p.UserID,
		TargetLang: p.TargetLang,
		UpdatedAt:  pgtypeTimestamptzToTime(p.UpdatedAt),
	}
}
