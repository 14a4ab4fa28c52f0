package domain

// Supported interface languages. Unknown codes fall back to English
// everywhere a language is looked up.
const (
	LangUzbek   = "uz"
	LangRussian = "ru"
	LangEnglish = "en"
)

// DefaultLanguage is used for users who never picked a language.
const DefaultLanguage = LangEnglish

// DefaultTimezone is the neutral zone assigned on first contact. A user whose
// timezone still equals this value is treated as "timezone not set" by the
// onboarding and reminder flows.
const DefaultTimezone = "UTC"

// DefaultCurrency is the currency assigned on first contact and used as the
// extraction default when the text mentions none.
const DefaultCurrency = "USD"

// User is one chat user and their preferences. The ChatID is the stable,
// externally assigned identity of the messaging platform.
type User struct {
	ID       int64
	ChatID   int64
	Name     string
	Language string
	Timezone string
	Currency string
	Created  Instant
}

// Lang returns the user's language, falling back to the default when unset.
func (u *User) Lang() string {
	switch u.Language {
	case LangUzbek, LangRussian, LangEnglish:
		return u.Language
	default:
		return DefaultLanguage
	}
}

// TimezoneSet reports whether the user has a real timezone (anything other
// than the neutral default counts).
func (u *User) TimezoneSet() bool {
	return u.Timezone != "" && u.Timezone != DefaultTimezone
}

// CurrencySet reports whether the user ever picked a default currency.
// New accounts carry an empty value until the first income flow asks.
func (u *User) CurrencySet() bool {
	return u.Currency != ""
}

// Cur returns the user's default currency, falling back when never chosen.
func (u *User) Cur() string {
	if u.Currency == "" {
		return DefaultCurrency
	}
	return u.Currency
}
