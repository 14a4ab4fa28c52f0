package bot

import (
	"context"
	"strings"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/session"
)

// HandleMessage routes one incoming message. Precedence, in order: /start,
// shared location, voice, then the text router.
func (b *Bot) HandleMessage(ctx context.Context, in Incoming) {
	user, created, err := b.store.GetOrCreateUser(ctx, in.UserID, in.ChatID, in.Name)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", in.UserID).Msg("load user")
		b.reply(in.ChatID, i18n.T(domain.DefaultLanguage, "error"), nil)
		return
	}

	if created || strings.TrimSpace(in.Text) == "/start" {
		b.startOnboarding(user)
		return
	}

	if in.Location != nil {
		b.handleLocation(ctx, user, *in.Location)
		return
	}

	if in.Voice != "" {
		b.handleVoice(ctx, user, in.Voice)
		return
	}

	b.routeText(ctx, user, strings.TrimSpace(in.Text))
}

// routeText is the mode router. A pending confirmation always wins: while an
// entry is staged the only meaningful inputs are yes and no, and everything
// else re-asks. Menu labels are matched across every language so a stale
// keyboard from before a language switch still works.
func (b *Bot) routeText(ctx context.Context, user *domain.User, text string) {
	lang := user.Lang()

	if b.ledger.Has(user.ID) {
		switch {
		case i18n.Matches(text, "yes"):
			b.confirmPending(ctx, user)
		case i18n.Matches(text, "no"):
			b.rejectPending(user)
		default:
			b.repromptPending(user)
		}
		return
	}

	switch {
	case i18n.Matches(text, "expenses"):
		b.modes.Set(user.ID, session.ModeExpense)
		b.reply(user.ChatID, i18n.T(lang, "expense_prompt"), backKeyboard(lang))
		return
	case i18n.Matches(text, "income"):
		b.enterIncomeMode(user)
		return
	case i18n.Matches(text, "reminders"):
		b.modes.Set(user.ID, session.ModeReminder)
		b.reply(user.ChatID, i18n.T(lang, "reminder_prompt"), backKeyboard(lang))
		return
	case i18n.Matches(text, "reports"):
		b.modes.Set(user.ID, session.ModeReport)
		b.reply(user.ChatID, i18n.T(lang, "report_prompt"), reportKeyboard(lang))
		return
	case i18n.Matches(text, "back"):
		b.modes.Clear(user.ID)
		b.reply(user.ChatID, i18n.T(lang, "main_menu"), mainMenuKeyboard(lang))
		return
	case i18n.Matches(text, "skip"):
		// Onboarding timezone step skipped; the neutral zone stays.
		b.reply(user.ChatID, i18n.T(lang, "main_menu"), mainMenuKeyboard(lang))
		return
	}

	mode := b.modes.Get(user.ID)

	if !user.TimezoneSet() && mode == session.ModeNone {
		if i18n.Matches(text, "enter_country") {
			// The keyboard button itself, not a country name yet.
			b.reply(user.ChatID, i18n.T(lang, "request_location_for_timezone"), nil)
			return
		}
		b.handleCountry(ctx, user, text)
		return
	}

	switch mode {
	case session.ModeExpense:
		b.handleExpenseText(ctx, user, text)
	case session.ModeIncome:
		b.handleIncomeText(ctx, user, text)
	case session.ModeReminder:
		b.handleReminderText(ctx, user, text)
	case session.ModeReport:
		b.handleReportQuestion(ctx, user, text)
	default:
		// Free-form text outside every mode is treated as expenses.
		b.handleExpenseText(ctx, user, text)
	}
}

// handleVoice transcribes and routes a voice message. Pending confirmations
// still dominate; outside a mode the transcript is treated as expenses.
func (b *Bot) handleVoice(ctx context.Context, user *domain.User, fileRef string) {
	lang := user.Lang()

	text, err := b.transcribe(ctx, fileRef)
	if err != nil {
		b.log.Warn().Err(err).Int64("user_id", user.ID).Msg("voice transcription failed")
		b.reply(user.ChatID, i18n.T(lang, "voice_unavailable"), nil)
		return
	}

	if b.ledger.Has(user.ID) {
		b.repromptPending(user)
		return
	}

	switch b.modes.Get(user.ID) {
	case session.ModeIncome:
		b.handleIncomeText(ctx, user, text)
	case session.ModeReminder:
		b.handleReminderText(ctx, user, text)
	case session.ModeReport:
		b.handleReportQuestion(ctx, user, text)
	default:
		b.handleExpenseText(ctx, user, text)
	}
}

// HandleCallback routes one pressed inline button.
func (b *Bot) HandleCallback(ctx context.Context, cb Callback) {
	user, _, err := b.store.GetOrCreateUser(ctx, cb.UserID, cb.ChatID, cb.Name)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", cb.UserID).Msg("load user for callback")
		return
	}

	switch {
	case cb.Data == "confirm_yes":
		b.confirmPending(ctx, user)
	case cb.Data == "confirm_no":
		b.rejectPending(user)
	case strings.HasPrefix(cb.Data, "lang_"):
		b.handleLanguageChoice(ctx, user, strings.TrimPrefix(cb.Data, "lang_"))
	case strings.HasPrefix(cb.Data, "currency_"):
		b.handleCurrencyChoice(ctx, user, strings.TrimPrefix(cb.Data, "currency_"))
	case strings.HasPrefix(cb.Data, "report_"):
		b.handleReportPeriod(ctx, user, strings.TrimPrefix(cb.Data, "report_"))
	default:
		b.log.Debug().Str("data", cb.Data).Msg("unknown callback")
	}
}
