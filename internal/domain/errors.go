package domain

import (
	"errors"
	"fmt"
)

// Error is a domain error carrying a stable code used to pick the user-facing message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Domain errors.
var (
	ErrNoTranslatableContent = newError("no_translatable_content", "no text found to translate")
	ErrProviderFailure       = newError("provider_failure", "translation provider failed")
	ErrResultCountMismatch   = newError("result_count_mismatch", "translation result count does not match input")
	ErrUnsupportedLanguage   = newError("unsupported_language", "unsupported target language")
	ErrPreferencesDisabled   = newError("preferences_disabled", "language preferences are not enabled")
	ErrPreferenceNotFound    = newError("preference_not_found", "no language preference stored")
)

// Code returns the code of the first domain error found in err's chain, or "".
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return ErrProviderFailure.Code
	}
	return ""
}

// ProviderError is returned by translation provider adapters.
// It matches ErrProviderFailure with errors.Is.
type ProviderError struct {
	Provider string
	Status   int // HTTP status when the provider answered, 0 otherwise
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Message)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return e.Cause }

func (e *ProviderError) Is(target error) bool { return target == ErrProviderFailure }

// CountMismatch builds an error wrapping ErrResultCountMismatch.
func CountMismatch(expected, got int) error {
	return fmt.Errorf("%w: expected %d, got %d", ErrResultCountMismatch, expected, got)
}
