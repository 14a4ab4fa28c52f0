package bot

import (
	"context"
	"errors"
	"time"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/timeparse"
)

// handleReminderText resolves the time expression in text, persists the
// reminder and registers its deliveries. Reminders skip the confirmation
// ledger: a parsed future moment is actionable as-is.
func (b *Bot) handleReminderText(ctx context.Context, user *domain.User, text string) {
	lang := user.Lang()
	loc := b.userLocation(ctx, user)

	at, err := b.times.Resolve(ctx, text, lang, loc)
	switch {
	case errors.Is(err, timeparse.ErrPast):
		b.reply(user.ChatID, i18n.T(lang, "reminder_past"), nil)
		return
	case err != nil:
		b.reply(user.ChatID, i18n.T(lang, "reminder_prompt"), backKeyboard(lang))
		return
	}

	r := domain.Reminder{
		UserID:   user.ID,
		ChatID:   user.ChatID,
		Message:  timeparse.Message(text),
		RemindAt: at,
	}
	if err := b.store.AddReminder(ctx, &r); err != nil {
		b.log.Error().Err(err).Int64("user_id", user.ID).Msg("add reminder")
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}

	b.sched.Schedule(r)
	b.reply(user.ChatID, i18n.T(lang, "reminder_added"), mainMenuKeyboard(lang))
}

// userLocation loads the user's effective timezone: the stored zone when
// set, otherwise the convention for their language. A language-derived zone
// is persisted so later reminders resolve consistently.
func (b *Bot) userLocation(ctx context.Context, user *domain.User) *time.Location {
	if user.TimezoneSet() {
		if loc, err := time.LoadLocation(user.Timezone); err == nil {
			return loc
		}
		b.log.Warn().Str("timezone", user.Timezone).Int64("user_id", user.ID).Msg("stored timezone is invalid")
	}

	zone := i18n.DefaultTimezone(user.Lang())
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.UTC
	}
	if zone != domain.DefaultTimezone {
		if err := b.store.UpdateUserTimezone(ctx, user.ID, zone); err == nil {
			user.Timezone = zone
		}
	}
	return loc
}
