package discord

import "deeplbot/internal/domain"

// FailedMessageKey is the i18n key shown for any failure without a dedicated message.
const FailedMessageKey = "translate.failed"

// ErrorMessageKey maps a domain error code to the i18n key of its user-facing message.
func ErrorMessageKey(code string) string {
	switch code {
	case "no_translatable_content":
		return "translate.no_text"
	case "unsupported_language":
		return "preference.invalid"
	case "preferences_disabled":
		return "preference.unavailable"
	case "preference_not_found":
		return "preference.none"
	default:
		// provider_failure and result_count_mismatch share the generic notice.
		return FailedMessageKey
	}
}

// DomainErrorMessageKey extracts the domain error code and resolves it to an i18n key.
func DomainErrorMessageKey(err error) string {
	if err == nil {
		return ""
	}
	return ErrorMessageKey(domain.Code(err))
}
