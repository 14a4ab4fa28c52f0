package bot

import (
	"context"
	"fmt"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/session"
)

// confirmPending persists the staged entry. Items are written one by one so
// a storage failure on item N still keeps the first N-1; the saved count in
// the reply reflects what actually landed.
func (b *Bot) confirmPending(ctx context.Context, user *domain.User) {
	lang := user.Lang()

	pending, ok := b.ledger.Take(user.ID)
	if !ok {
		b.reply(user.ChatID, i18n.T(lang, "main_menu"), mainMenuKeyboard(lang))
		return
	}

	switch pending.Kind {
	case session.PendingExpenses:
		saved := 0
		for _, item := range pending.Items {
			e := domain.Expense{
				UserID:      user.ID,
				Amount:      item.Amount,
				Category:    item.Category,
				Description: item.Description,
			}
			if err := b.store.AddExpense(ctx, &e); err != nil {
				b.log.Error().Err(err).Int64("user_id", user.ID).Msg("save expense")
				continue
			}
			saved++
		}
		if saved == 0 {
			b.reply(user.ChatID, i18n.T(lang, "error"), mainMenuKeyboard(lang))
		} else if saved == 1 {
			b.reply(user.ChatID, i18n.T(lang, "expense_confirmed"), mainMenuKeyboard(lang))
		} else {
			b.reply(user.ChatID, i18n.Tf(lang, "expenses_saved", "count", fmt.Sprintf("%d", saved)), mainMenuKeyboard(lang))
		}

	case session.PendingIncome:
		in := domain.Income{
			UserID:      user.ID,
			Amount:      pending.Income.Amount,
			Currency:    pending.Income.Currency,
			Description: pending.Income.Description,
			Recurrence:  pending.Income.Recurrence,
		}
		if err := b.store.AddIncome(ctx, &in); err != nil {
			b.log.Error().Err(err).Int64("user_id", user.ID).Msg("save income")
			b.reply(user.ChatID, i18n.T(lang, "error"), mainMenuKeyboard(lang))
			return
		}
		b.reply(user.ChatID, i18n.T(lang, "income_confirmed"), mainMenuKeyboard(lang))
	}

	b.modes.Clear(user.ID)
}

// rejectPending discards the staged entry and re-presents the prompt the
// entry came from. The mode is left alone so the user can rephrase right
// away, including the implicit expense path outside any mode.
func (b *Bot) rejectPending(user *domain.User) {
	lang := user.Lang()
	pending, ok := b.ledger.Take(user.ID)
	if !ok {
		b.reply(user.ChatID, i18n.T(lang, "main_menu"), mainMenuKeyboard(lang))
		return
	}

	b.reply(user.ChatID, i18n.T(lang, "cancelled"), nil)

	switch pending.Kind {
	case session.PendingIncome:
		b.reply(user.ChatID, i18n.T(lang, "income_prompt"), backKeyboard(lang))
	case session.PendingExpenses:
		b.reply(user.ChatID, i18n.T(lang, "expense_prompt"), backKeyboard(lang))
	}
}

// repromptPending re-shows the confirmation question for the staged entry.
// Everything except yes or no lands here while something is pending.
func (b *Bot) repromptPending(user *domain.User) {
	lang := user.Lang()
	pending, ok := b.ledger.Get(user.ID)
	if !ok {
		return
	}

	switch pending.Kind {
	case session.PendingExpenses:
		b.reply(user.ChatID, expenseSummary(lang, pending.Items), confirmKeyboard(lang))
	case session.PendingIncome:
		b.reply(user.ChatID, incomeSummary(lang, *pending.Income), confirmKeyboard(lang))
	}
}
