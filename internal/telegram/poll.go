package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/bot"
)

// Run long-polls for updates and feeds them to the conversation core until
// the context is cancelled.
func (a *Adapter) Run(ctx context.Context, b *bot.Bot, pollTimeout int) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeout

	updates := a.api.GetUpdatesChan(cfg)
	a.log.Info().Msg("polling for updates")

	a.consume(ctx, b, updates)
	a.api.StopReceivingUpdates()
}

// consume fans updates out, one goroutine per update. A handler may sit in
// a model call for its full timeout, so one user's slow extraction must not
// hold up anyone else; the session state is safe for concurrent use.
func (a *Adapter) consume(ctx context.Context, b *bot.Bot, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			go a.dispatch(ctx, b, upd)
		}
	}
}

func (a *Adapter) dispatch(ctx context.Context, b *bot.Bot, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		cq := upd.CallbackQuery
		// Ack first so the button stops spinning even if handling is slow.
		if _, err := a.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			a.log.Warn().Err(err).Msg("ack callback")
		}
		if cq.Message == nil {
			return
		}
		b.HandleCallback(ctx, bot.Callback{
			UserID:    cq.From.ID,
			ChatID:    cq.Message.Chat.ID,
			MessageID: cq.Message.MessageID,
			Name:      cq.From.FirstName,
			Data:      cq.Data,
		})

	case upd.Message != nil:
		m := upd.Message
		if m.From == nil {
			return
		}
		in := bot.Incoming{
			UserID: m.From.ID,
			ChatID: m.Chat.ID,
			Name:   m.From.FirstName,
			Text:   m.Text,
		}
		if m.Voice != nil {
			in.Voice = m.Voice.FileID
		}
		if m.Location != nil {
			in.Location = &bot.Coordinates{
				Latitude:  m.Location.Latitude,
				Longitude: m.Location.Longitude,
			}
		}
		b.HandleMessage(ctx, in)
	}
}
