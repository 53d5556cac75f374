package application

import (
	"context"
	"fmt"
	"strings"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/entities"
)

// fakeProvider records calls and answers from a dictionary; unknown texts come back bracketed.
type fakeProvider struct {
	translations map[string]string
	detected     string
	single       bool // answer one-text batches with a bare result
	drop         int  // results to drop from the answer
	err          error

	calls      int
	lastTexts  []string
	lastTarget string
}

func (p *fakeProvider) Translate(ctx context.Context, texts []string, targetLang string) (entities.Response, error) {
	p.calls++
	p.lastTexts = append([]string(nil), texts...)
	p.lastTarget = targetLang
	if p.err != nil {
		return entities.Response{}, p.err
	}

	results := make([]entities.Result, 0, len(texts))
	for _, text := range texts {
		translated, ok := p.translations[text]
		if !ok {
			translated = "[" + text + "]"
		}
		results = append(results, entities.Result{Text: translated, DetectedSourceLang: p.detected})
	}
	results = results[:len(results)-min(p.drop, len(results))]
	if p.single && len(results) == 1 {
		return entities.SingleResponse(results[0]), nil
	}
	return entities.BatchResponse(results), nil
}

type fakePreferenceRepo struct {
	prefs   map[string]*entities.Preference
	findErr error
	saveErr error
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: make(map[string]*entities.Preference)}
}

func (r *fakePreferenceRepo) Find(ctx context.Context, userID string) (*entities.Preference, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	pref, ok := r.prefs[userID]
	if !ok {
		return nil, domain.ErrPreferenceNotFound
	}
	return pref, nil
}

func (r *fakePreferenceRepo) Upsert(ctx context.Context, pref *entities.Preference) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.prefs[pref.UserID] = pref
	return nil
}

func (r *fakePreferenceRepo) Delete(ctx context.Context, userID string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	delete(r.prefs, userID)
	return nil
}

// fakeT renders the English footer and echoes other keys.
type fakeT struct{}

func (fakeT) T(locale, key string, data map[string]any) string {
	if key == "translate.footer" {
		footer := fmt.Sprintf("Translated from %s to %s", data["Source"], data["Target"])
		if strings.HasPrefix(locale, "fr") {
			footer = fmt.Sprintf("Traduit du %s vers %s", data["Source"], data["Target"])
		}
		return footer
	}
	return key
}
