package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
)

// handleReportPeriod answers the today/week/month buttons with a category
// breakdown. The custom button asks for a free-form question instead.
func (b *Bot) handleReportPeriod(ctx context.Context, user *domain.User, period string) {
	lang := user.Lang()

	var since domain.Instant
	now := domain.NowInstant()
	switch period {
	case "today":
		since = now.Add(-24 * time.Hour)
	case "week":
		since = now.Add(-7 * 24 * time.Hour)
	case "month":
		since = now.Add(-30 * 24 * time.Hour)
	case "custom":
		b.reply(user.ChatID, i18n.T(lang, "report_custom_soon"), backKeyboard(lang))
		return
	default:
		b.log.Debug().Str("period", period).Msg("unknown report period")
		return
	}

	expenses, err := b.store.GetExpenses(ctx, user.ID, since, 0)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", user.ID).Msg("load expenses for report")
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}
	if len(expenses) == 0 {
		b.reply(user.ChatID, i18n.T(lang, "report_empty"), mainMenuKeyboard(lang))
		return
	}

	b.reply(user.ChatID, reportText(lang, user.Cur(), expenses), mainMenuKeyboard(lang))
}

// handleReportQuestion answers a free-form question with the model, feeding
// it a digest of the user's recent records.
func (b *Bot) handleReportQuestion(ctx context.Context, user *domain.User, text string) {
	lang := user.Lang()

	digest, err := b.buildDigest(ctx, user)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", user.ID).Msg("build report digest")
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}
	if digest == "" {
		b.reply(user.ChatID, i18n.T(lang, "report_empty"), mainMenuKeyboard(lang))
		return
	}

	b.reply(user.ChatID, i18n.T(lang, "processing"), nil)

	answer, err := b.ai.AnswerReport(ctx, text, lang, digest)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", user.ID).Msg("answer report question")
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}
	b.reply(user.ChatID, answer, mainMenuKeyboard(lang))
}

// reportText renders the per-category totals and the grand total.
func reportText(lang, currency string, expenses []domain.Expense) string {
	perCategory := make(map[domain.Category]float64)
	var total float64
	for _, e := range expenses {
		perCategory[e.Category] += e.Amount
		total += e.Amount
	}

	var sb strings.Builder
	for _, c := range domain.Categories {
		if sum, ok := perCategory[c]; ok {
			fmt.Fprintf(&sb, "%s: %s %s\n", c, formatAmount(sum), currency)
		}
	}
	sb.WriteString("\n")
	sb.WriteString(i18n.Tf(lang, "report_total",
		"amount", formatAmount(total),
		"currency", currency,
		"count", fmt.Sprintf("%d", len(expenses))))
	return sb.String()
}

// buildDigest renders the last month of records as plain lines for the
// model. Empty string means the user has no data yet.
func (b *Bot) buildDigest(ctx context.Context, user *domain.User) (string, error) {
	since := domain.NowInstant().Add(-30 * 24 * time.Hour)
	expenses, err := b.store.GetExpenses(ctx, user.ID, since, 200)
	if err != nil {
		return "", err
	}
	incomes, err := b.store.GetIncomes(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if len(expenses) == 0 && len(incomes) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("Expenses:\n")
	for _, e := range expenses {
		fmt.Fprintf(&sb, "%s | %s | %s %s | %s\n",
			e.Created.Time().Format("2006-01-02"), e.Category, formatAmount(e.Amount), user.Cur(), e.Description)
	}
	sb.WriteString("Incomes:\n")
	for _, in := range incomes {
		fmt.Fprintf(&sb, "%s | %s %s | %s | %s\n",
			in.Created.Time().Format("2006-01-02"), formatAmount(in.Amount), in.Currency, in.Recurrence, in.Description)
	}
	return sb.String(), nil
}
