package ai

import (
	"context"
	"encoding/json"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// ExtractIncome classifies a message as income. Like expense extraction it
// never fails; a bad remote call produces the local-heuristic draft.
func (g *Gateway) ExtractIncome(ctx context.Context, text, lang, defaultCurrency string) domain.IncomeItem {
	raw, err := g.generate(ctx, g.timeout, incomeSystem, incomePrompt(lang, text, defaultCurrency))
	if err != nil {
		g.log.Warn().Err(err).Msg("income extraction failed, using fallback")
		return fallbackIncome(text, defaultCurrency)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &obj); err != nil {
		g.log.Warn().Err(err).Str("raw", raw).Msg("income response is not JSON, using fallback")
		return fallbackIncome(text, defaultCurrency)
	}

	item := decodeIncomeItem(obj, defaultCurrency)
	if item.Description == "" {
		item.Description = text
	}
	return item
}
