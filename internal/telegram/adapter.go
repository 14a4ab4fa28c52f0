// Package telegram adapts the conversation core to the Telegram Bot API:
// long polling in, rendered messages and keyboards out.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/bot"
)

// Adapter wraps the Bot API client.
type Adapter struct {
	api *tgbotapi.BotAPI
	log zerolog.Logger
}

// New authenticates against the Bot API.
func New(token string, log zerolog.Logger) (*Adapter, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	log.Info().Str("username", api.Self.UserName).Msg("authenticated with telegram")
	return &Adapter{api: api, log: log}, nil
}

// Send renders and delivers one outgoing message.
func (a *Adapter) Send(msg bot.Message) error {
	m := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if kb := msg.Keyboard; kb != nil {
		if kb.Inline {
			m.ReplyMarkup = inlineMarkup(kb)
		} else {
			m.ReplyMarkup = replyMarkup(kb)
		}
	}
	if _, err := a.api.Send(m); err != nil {
		return fmt.Errorf("send to chat %d: %w", msg.ChatID, err)
	}
	return nil
}

// SendText delivers a plain message with no keyboard. The scheduler uses
// this for reminder and nudge deliveries.
func (a *Adapter) SendText(chatID int64, text string) error {
	return a.Send(bot.Message{ChatID: chatID, Text: text})
}

// FileURL resolves a file reference to a download URL. The voice
// transcriber uses this to fetch audio.
func (a *Adapter) FileURL(fileID string) (string, error) {
	url, err := a.api.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", fileID, err)
	}
	return url, nil
}

func inlineMarkup(kb *bot.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb.Rows))
	for _, r := range kb.Rows {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(r))
		for _, b := range r {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func replyMarkup(kb *bot.Keyboard) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(kb.Rows))
	for _, r := range kb.Rows {
		row := make([]tgbotapi.KeyboardButton, 0, len(r))
		for _, b := range r {
			if b.RequestLocation {
				row = append(row, tgbotapi.NewKeyboardButtonLocation(b.Label))
			} else {
				row = append(row, tgbotapi.NewKeyboardButton(b.Label))
			}
		}
		rows = append(rows, row)
	}
	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	return markup
}
