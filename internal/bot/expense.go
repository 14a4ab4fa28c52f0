package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
)

// handleExpenseText extracts one or more expenses from text and stages them
// for confirmation. Nothing is persisted until the user says yes.
func (b *Bot) handleExpenseText(ctx context.Context, user *domain.User, text string) {
	lang := user.Lang()

	items := b.ai.ExtractExpenses(ctx, text, lang, user.Cur())
	if len(items) == 0 {
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}

	b.ledger.StageExpenses(user.ID, items)
	b.reply(user.ChatID, expenseSummary(lang, items), confirmKeyboard(lang))
}

// expenseSummary renders the staged items for the confirmation prompt. One
// item gets the sentence template; several get a list and a save-all ask.
func expenseSummary(lang string, items []domain.ExpenseItem) string {
	if len(items) == 1 {
		item := items[0]
		text := i18n.Tf(lang, "expense_confirm",
			"amount", formatAmount(item.Amount),
			"currency", item.Currency,
			"description", item.Description,
			"category", string(item.Category))
		if item.Advice != "" {
			text += "\n\n💡 " + item.Advice
		}
		return text
	}

	var sb strings.Builder
	sb.WriteString(i18n.Tf(lang, "multiple_expenses_found", "count", fmt.Sprintf("%d", len(items))))
	sb.WriteString("\n\n")
	for _, item := range items {
		fmt.Fprintf(&sb, "• %s: %s %s (%s)\n",
			item.Description, formatAmount(item.Amount), item.Currency, item.Category)
		if item.Advice != "" {
			fmt.Fprintf(&sb, "  💡 %s\n", item.Advice)
		}
	}
	sb.WriteString("\n")
	sb.WriteString(i18n.T(lang, "save_all"))
	return sb.String()
}

// formatAmount renders a monetary amount without trailing decimal noise.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
