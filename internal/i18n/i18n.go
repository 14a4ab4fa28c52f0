// Package i18n holds the interface copy for the three supported languages.
// Unknown language codes silently fall back to English.
package i18n

import (
	"strings"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// Languages lists every supported language code.
var Languages = []string{domain.LangUzbek, domain.LangRussian, domain.LangEnglish}

// T returns the translation of key for lang. Unknown languages fall back to
// English; unknown keys echo the key itself so a missing entry is visible but
// never fatal.
func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[domain.LangEnglish]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Tf is T with {name} placeholder substitution. Arguments are name/value
// pairs; a trailing unpaired argument is ignored.
func Tf(lang, key string, args ...string) string {
	s := T(lang, key)
	if len(args) < 2 {
		return s
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Matches reports whether text equals the translation of key in any supported
// language. Menu and back buttons are matched this way so a stale keyboard
// from a previous language still works after a language switch.
func Matches(text, key string) bool {
	for _, lang := range Languages {
		if translations[lang][key] == text {
			return true
		}
	}
	return false
}

// LanguageName returns the self-name of a language code.
func LanguageName(code string) string {
	switch code {
	case domain.LangUzbek:
		return "O'zbek tili"
	case domain.LangRussian:
		return "Русский"
	default:
		return "English"
	}
}

// DefaultTimezone returns the language-keyed default zone used when neither a
// stored timezone nor a location is available.
func DefaultTimezone(lang string) string {
	switch lang {
	case domain.LangUzbek:
		return "Asia/Tashkent"
	case domain.LangRussian:
		return "Europe/Moscow"
	default:
		return "UTC"
	}
}
