package domain

// Locale selects the interpretation prompt language and the localized
// fallback/sentinel strings. It is a user preference, not part of a record.
type Locale string

const (
	LocaleTR Locale = "tr" // primary
	LocaleEN Locale = "en" // secondary
)

// ParseLocale maps a raw tag to a supported locale, defaulting to LocaleTR.
func ParseLocale(s string) Locale {
	if Locale(s) == LocaleEN {
		return LocaleEN
	}
	return LocaleTR
}
