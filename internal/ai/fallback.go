package ai

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
)

// Local heuristics used when the model is unreachable or its response is
// unusable. They are deliberately crude: the point is that a user message
// still produces a confirmable draft rather than an error.

var amountPattern = regexp.MustCompile(`\d+\.?\d*`)

// fallbackAmount returns the first number in the text, or 0.
func fallbackAmount(text string) float64 {
	match := amountPattern.FindString(text)
	if match == "" {
		return 0
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return f
}

// categoryKeywords is searched in order; the first category with a keyword
// hit wins, so food outranks transport and so on.
var categoryKeywords = []struct {
	category domain.Category
	words    []string
}{
	{domain.CategoryFood, []string{"food", "eat", "lunch", "dinner", "breakfast", "coffee", "restaurant", "cafe", "ovqat", "tushlik", "kofe", "еда", "обед", "ужин", "кофе", "ресторан"}},
	{domain.CategoryTransport, []string{"taxi", "bus", "metro", "transport", "fuel", "petrol", "benzin", "avtobus", "такси", "автобус", "метро", "бензин"}},
	{domain.CategoryEntertainment, []string{"movie", "cinema", "game", "concert", "kino", "o'yin", "кино", "игра", "концерт"}},
	{domain.CategoryEducation, []string{"book", "course", "school", "university", "kitob", "kurs", "maktab", "книга", "курс", "школа", "университет"}},
	{domain.CategoryHealth, []string{"doctor", "medicine", "pharmacy", "hospital", "shifokor", "dori", "врач", "лекарство", "аптека", "больница"}},
	{domain.CategoryElectronics, []string{"phone", "laptop", "computer", "telefon", "kompyuter", "телефон", "ноутбук", "компьютер"}},
}

func fallbackCategory(text string) domain.Category {
	lower := strings.ToLower(text)
	for _, group := range categoryKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.category
			}
		}
	}
	return domain.CategoryOther
}

// currencyHints is ordered so multi-character tokens are checked before the
// bare symbols they contain.
var currencyHints = []struct {
	token string
	code  string
}{
	{"us$", "USD"},
	{"$", "USD"},
	{"dollar", "USD"},
	{"€", "EUR"},
	{"euro", "EUR"},
	{"₽", "RUB"},
	{"ruble", "RUB"},
	{"rubl", "RUB"},
	{"рубл", "RUB"},
	{"¥", "CNY"},
	{"yuan", "CNY"},
	{"so'm", "UZS"},
	{"som", "UZS"},
	{"uzs", "UZS"},
	{"сум", "UZS"},
}

func fallbackCurrency(text, defaultCurrency string) string {
	lower := strings.ToLower(text)
	for _, hint := range currencyHints {
		if strings.Contains(lower, hint.token) {
			return hint.code
		}
	}
	if defaultCurrency == "" {
		return domain.DefaultCurrency
	}
	return defaultCurrency
}

var dailyKeywords = []string{"daily", "every day", "per day", "kunlik", "har kuni", "ежедневно", "каждый день", "в день"}

func fallbackRecurrence(text string) string {
	lower := strings.ToLower(text)
	for _, word := range dailyKeywords {
		if strings.Contains(lower, word) {
			return domain.IncomeDaily
		}
	}
	return domain.IncomeMonthly
}

func fallbackExpense(text string, lang string, defaultCurrency string) domain.ExpenseItem {
	return domain.ExpenseItem{
		Amount:      fallbackAmount(text),
		Currency:    fallbackCurrency(text, defaultCurrency),
		Category:    fallbackCategory(text),
		Description: strings.TrimSpace(text),
		Advice:      i18n.T(lang, "fallback_advice"),
	}
}

func fallbackIncome(text string, defaultCurrency string) domain.IncomeItem {
	return domain.IncomeItem{
		Amount:      fallbackAmount(text),
		Currency:    fallbackCurrency(text, defaultCurrency),
		Description: strings.TrimSpace(text),
		Recurrence:  fallbackRecurrence(text),
	}
}
