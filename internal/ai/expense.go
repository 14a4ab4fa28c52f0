package ai

import (
	"context"
	"encoding/json"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// ExtractExpense classifies a message as a single expense. It never fails:
// a transport error or unparseable response degrades to the local heuristic.
func (g *Gateway) ExtractExpense(ctx context.Context, text, lang, defaultCurrency string) domain.ExpenseItem {
	raw, err := g.generate(ctx, g.timeout, expenseSystem, expensePrompt(lang, text))
	if err != nil {
		g.log.Warn().Err(err).Msg("expense extraction failed, using fallback")
		return fallbackExpense(text, lang, defaultCurrency)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &obj); err != nil {
		g.log.Warn().Err(err).Str("raw", raw).Msg("expense response is not JSON, using fallback")
		return fallbackExpense(text, lang, defaultCurrency)
	}

	item := decodeExpenseItem(obj, defaultCurrency)
	if item.Description == "" {
		item.Description = text
	}
	return item
}

// ExtractExpenses classifies a message that may contain several expenses.
// A lone JSON object is treated as a one-element list. When the response is
// not JSON at all the single-item extractor takes over, and its result is
// kept only if it carries a positive amount. Items without a positive amount
// are dropped, so an unusable response yields an empty list rather than
// zero-amount noise.
func (g *Gateway) ExtractExpenses(ctx context.Context, text, lang, defaultCurrency string) []domain.ExpenseItem {
	raw, err := g.generate(ctx, g.timeout, expensesMultiSystem, expensesMultiPrompt(lang, text, defaultCurrency))
	if err != nil {
		g.log.Warn().Err(err).Msg("multi expense extraction failed, using fallback")
		return wrapPositive(fallbackExpense(text, lang, defaultCurrency))
	}

	var parsed any
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &parsed); err != nil {
		g.log.Warn().Err(err).Str("raw", raw).Msg("multi expense response is not JSON, retrying single")
		return wrapPositive(g.ExtractExpense(ctx, text, lang, defaultCurrency))
	}

	var objs []any
	switch v := parsed.(type) {
	case []any:
		objs = v
	case map[string]any:
		objs = []any{v}
	default:
		return nil
	}

	items := make([]domain.ExpenseItem, 0, len(objs))
	for _, o := range objs {
		obj, ok := o.(map[string]any)
		if !ok {
			continue
		}
		item := decodeExpenseItem(obj, defaultCurrency)
		if item.Amount <= 0 {
			continue
		}
		if item.Description == "" {
			item.Description = text
		}
		items = append(items, item)
	}
	return items
}

func wrapPositive(item domain.ExpenseItem) []domain.ExpenseItem {
	if item.Amount <= 0 {
		return nil
	}
	return []domain.ExpenseItem{item}
}
