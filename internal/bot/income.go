package bot

import (
	"context"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/session"
)

// enterIncomeMode switches to income input. The first visit asks for the
// user's default currency before anything can be recorded.
func (b *Bot) enterIncomeMode(user *domain.User) {
	lang := user.Lang()
	b.modes.Set(user.ID, session.ModeIncome)

	if !user.CurrencySet() {
		b.reply(user.ChatID, i18n.T(lang, "select_currency"), currencyKeyboard())
		return
	}
	b.reply(user.ChatID, i18n.T(lang, "income_prompt"), backKeyboard(lang))
}

func (b *Bot) handleCurrencyChoice(ctx context.Context, user *domain.User, code string) {
	lang := user.Lang()

	valid := false
	for _, c := range currencyChoices {
		if c == code {
			valid = true
			break
		}
	}
	if !valid {
		b.log.Warn().Str("code", code).Msg("unknown currency choice")
		return
	}

	if err := b.store.UpdateUserCurrency(ctx, user.ID, code); err != nil {
		b.log.Error().Err(err).Int64("user_id", user.ID).Msg("update currency")
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}
	user.Currency = code

	b.reply(user.ChatID, i18n.Tf(lang, "currency_set", "currency", code), nil)

	if b.modes.Get(user.ID) == session.ModeIncome {
		b.reply(user.ChatID, i18n.T(lang, "income_prompt"), backKeyboard(lang))
	}
}

// handleIncomeText extracts an income draft and stages it for confirmation.
func (b *Bot) handleIncomeText(ctx context.Context, user *domain.User, text string) {
	lang := user.Lang()

	item := b.ai.ExtractIncome(ctx, text, lang, user.Cur())
	if item.Amount <= 0 {
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}

	b.ledger.StageIncome(user.ID, item)
	b.reply(user.ChatID, incomeSummary(lang, item), confirmKeyboard(lang))
}

func incomeSummary(lang string, item domain.IncomeItem) string {
	return i18n.Tf(lang, "income_confirm",
		"amount", formatAmount(item.Amount),
		"currency", item.Currency,
		"income_type", i18n.T(lang, "income_type_"+item.Recurrence),
		"description", item.Description)
}
