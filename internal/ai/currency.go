package ai

import (
	"strings"
	"unicode/utf8"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// currencyAliases maps the spellings and symbols users (and models) actually
// produce to ISO 4217 codes. Keys are uppercase.
var currencyAliases = map[string]string{
	"YUAN":    "CNY",
	"RMB":     "CNY",
	"CN¥":     "CNY",
	"¥":       "CNY",
	"DOLLAR":  "USD",
	"DOLLARS": "USD",
	"$":       "USD",
	"US$":     "USD",
	"EURO":    "EUR",
	"EUROS":   "EUR",
	"€":       "EUR",
	"RUBLE":   "RUB",
	"RUBLES":  "RUB",
	"RUBL":    "RUB",
	"₽":       "RUB",
	"SOM":     "UZS",
	"SO'M":    "UZS",
	"UZS":     "UZS",
}

// NormalizeCurrency maps a raw currency token to an ISO code. Already-ISO
// input passes through unchanged, so the function is idempotent. Unmapped
// short tokens are assumed to be codes the table does not know; anything
// longer or empty falls back to the default.
func NormalizeCurrency(raw, defaultCurrency string) string {
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrency
	}
	token := strings.ToUpper(strings.TrimSpace(raw))
	if token == "" {
		return defaultCurrency
	}
	if code, ok := currencyAliases[token]; ok {
		return code
	}
	if utf8.RuneCountInString(token) <= 5 {
		return token
	}
	return defaultCurrency
}
