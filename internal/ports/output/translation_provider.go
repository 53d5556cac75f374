package output

import (
	"context"

	"deeplbot/internal/domain/entities"
)

// TranslationProvider is the external translation service.
// Given N texts it answers N results in the same order; for a single text it may
// answer a bare result instead of a one-element batch.
type TranslationProvider interface {
	Translate(ctx context.Context, texts []string, targetLang string) (entities.Response, error)
}
