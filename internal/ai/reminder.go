package ai

import (
	"context"
	"strings"
	"time"
)

const reminderTimeLayout = "2006-01-02 15:04"

// ExtractReminderTime asks the model for the local moment a reminder should
// fire. It returns the zero time when the message carries no time expression
// or the model call fails; the caller then runs its own parsing.
func (g *Gateway) ExtractReminderTime(ctx context.Context, text, lang, tzName string, nowLocal time.Time) time.Time {
	raw, err := g.generate(ctx, g.timeout, reminderSystem(tzName, nowLocal), reminderPrompt(lang, text))
	if err != nil {
		g.log.Warn().Err(err).Msg("reminder time extraction failed")
		return time.Time{}
	}

	answer := strings.TrimSpace(cleanModelJSON(raw))
	if answer == "" || strings.EqualFold(answer, "none") {
		return time.Time{}
	}

	// Models sometimes answer in full ISO form with an offset despite the
	// asked layout; convert those instead of rejecting them.
	if parsed, err := time.Parse(time.RFC3339, answer); err == nil {
		return parsed.In(nowLocal.Location())
	}
	parsed, err := time.ParseInLocation(reminderTimeLayout, answer, nowLocal.Location())
	if err != nil {
		g.log.Warn().Str("raw", raw).Msg("reminder time response is not a timestamp")
		return time.Time{}
	}
	return parsed
}
