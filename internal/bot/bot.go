package bot

import (
	"github.com/rs/zerolog"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/session"
)

// Deps is everything a Bot needs. Transcriber and Locations may be nil when
// the corresponding feature is not configured.
type Deps struct {
	Store       Store
	Extractor   Extractor
	Times       TimeResolver
	Scheduler   Scheduler
	Transport   Transport
	Transcriber Transcriber
	Locations   LocationResolver
	Log         zerolog.Logger
}

// Bot is the conversation core. One instance serves every user; per-user
// state lives in the mode tracker and the confirmation ledger.
type Bot struct {
	store  Store
	ai     Extractor
	times  TimeResolver
	sched  Scheduler
	out    Transport
	stt    Transcriber
	geo    LocationResolver
	modes  *session.Modes
	ledger *session.Ledger
	log    zerolog.Logger
}

// New wires a Bot.
func New(d Deps) *Bot {
	return &Bot{
		store:  d.Store,
		ai:     d.Extractor,
		times:  d.Times,
		sched:  d.Scheduler,
		out:    d.Transport,
		stt:    d.Transcriber,
		geo:    d.Locations,
		modes:  session.NewModes(),
		ledger: session.NewLedger(),
		log:    d.Log,
	}
}

func (b *Bot) send(msg Message) {
	if err := b.out.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("send message")
	}
}

func (b *Bot) reply(chatID int64, text string, kb *Keyboard) {
	b.send(Message{ChatID: chatID, Text: text, Keyboard: kb})
}
