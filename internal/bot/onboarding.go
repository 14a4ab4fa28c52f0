package bot

import (
	"context"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
)

// startOnboarding resets the session and asks for a language. /start always
// lands here, for brand-new and returning users alike.
func (b *Bot) startOnboarding(user *domain.User) {
	b.modes.Clear(user.ID)
	b.ledger.Drop(user.ID)
	b.reply(user.ChatID, i18n.T(user.Lang(), "welcome"), languageKeyboard())
}

func (b *Bot) handleLanguageChoice(ctx context.Context, user *domain.User, code string) {
	valid := false
	for _, l := range i18n.Languages {
		if l == code {
			valid = true
			break
		}
	}
	if !valid {
		b.log.Warn().Str("code", code).Msg("unknown language choice")
		return
	}

	if err := b.store.UpdateUserLanguage(ctx, user.ID, code); err != nil {
		b.log.Error().Err(err).Int64("user_id", user.ID).Msg("update language")
		b.reply(user.ChatID, i18n.T(user.Lang(), "error"), nil)
		return
	}
	user.Language = code

	b.reply(user.ChatID, i18n.T(code, "language_set"), nil)

	if !user.TimezoneSet() {
		b.reply(user.ChatID, i18n.T(code, "request_location_for_timezone"), locationKeyboard(code))
		return
	}
	b.reply(user.ChatID, i18n.T(code, "main_menu"), mainMenuKeyboard(code))
}

// handleLocation resolves shared coordinates to a timezone.
func (b *Bot) handleLocation(ctx context.Context, user *domain.User, loc Coordinates) {
	lang := user.Lang()

	zone := ""
	if b.geo != nil {
		zone = b.geo.ResolveTimezone(loc.Latitude, loc.Longitude)
	}
	if zone == "" {
		b.reply(user.ChatID, i18n.T(lang, "timezone_detection_failed"), mainMenuKeyboard(lang))
		return
	}
	b.setTimezone(ctx, user, zone)
}

// handleCountry treats free text from a user without a timezone as a country
// or city name and asks the model to resolve it.
func (b *Bot) handleCountry(ctx context.Context, user *domain.User, text string) {
	lang := user.Lang()

	zone := b.ai.ResolveCountryTimezone(ctx, text)
	if zone == "" {
		b.reply(user.ChatID, i18n.T(lang, "timezone_detection_failed"), locationKeyboard(lang))
		return
	}
	b.setTimezone(ctx, user, zone)
}

func (b *Bot) setTimezone(ctx context.Context, user *domain.User, zone string) {
	lang := user.Lang()

	if err := b.store.UpdateUserTimezone(ctx, user.ID, zone); err != nil {
		b.log.Error().Err(err).Int64("user_id", user.ID).Msg("update timezone")
		b.reply(user.ChatID, i18n.T(lang, "error"), nil)
		return
	}
	user.Timezone = zone

	// The daily nudge moves with the timezone.
	b.sched.ScheduleNudge(*user)

	b.reply(user.ChatID, i18n.Tf(lang, "timezone_updated", "timezone", zone), mainMenuKeyboard(lang))
}
