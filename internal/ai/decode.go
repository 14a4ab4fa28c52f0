package ai

import (
	"strconv"
	"strings"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// cleanModelJSON strips the markdown fences and surrounding prose that
// models sometimes wrap around the JSON payload despite instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// If there is still prose around the payload, keep only the outermost
	// JSON value. Arrays take priority so a bracketed object list survives.
	for _, pair := range [][2]string{{"[", "]"}, {"{", "}"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start != -1 && end > start {
			return strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

// numberField coerces a decoded JSON field to float64. Models occasionally
// quote numbers or emit formatted strings like "1,500".
func numberField(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func stringField(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func decodeExpenseItem(obj map[string]any, defaultCurrency string) domain.ExpenseItem {
	return domain.ExpenseItem{
		Amount:      numberField(obj["amount"]),
		Currency:    NormalizeCurrency(stringField(obj["currency"]), defaultCurrency),
		Category:    domain.NormalizeCategory(stringField(obj["category"])),
		Description: stringField(obj["description"]),
		Advice:      stringField(obj["advice"]),
	}
}

func decodeIncomeItem(obj map[string]any, defaultCurrency string) domain.IncomeItem {
	rec := strings.ToLower(stringField(obj["recurrence"]))
	if rec != domain.IncomeDaily {
		rec = domain.IncomeMonthly
	}
	return domain.IncomeItem{
		Amount:      numberField(obj["amount"]),
		Currency:    NormalizeCurrency(stringField(obj["currency"]), defaultCurrency),
		Description: stringField(obj["description"]),
		Recurrence:  rec,
	}
}
