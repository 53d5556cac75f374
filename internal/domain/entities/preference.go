package entities

import "time"

// Preference is a user's preferred target language, overriding the Discord locale.
type Preference struct {
	UserID     string
	TargetLang string
	UpdatedAt  time.Time
}
