package output

// T renders user-facing bot replies in the invoking user's Discord locale.
type T interface {
	// T renders key for locale ("fr", "en-US", "es-419"). data fills template
	// placeholders such as {{.Language}} and may be nil. Unknown keys come back unchanged.
	T(locale, key string, data map[string]any) string
}
