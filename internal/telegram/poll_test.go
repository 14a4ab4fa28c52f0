package telegram

import (
	"context"
	"io"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/bot"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// stallStore blocks the user lookup for one user until released. The update
// paths exercised here never reach the other methods.
type stallStore struct {
	stallUser int64
	release   chan struct{}
}

func (s *stallStore) GetOrCreateUser(_ context.Context, userID, chatID int64, name string) (*domain.User, bool, error) {
	if userID == s.stallUser {
		<-s.release
	}
	return &domain.User{ID: userID, ChatID: chatID, Name: name, Timezone: domain.DefaultTimezone}, true, nil
}

func (s *stallStore) GetUser(context.Context, int64) (*domain.User, error)    { return nil, nil }
func (s *stallStore) UpdateUserLanguage(context.Context, int64, string) error { return nil }
func (s *stallStore) UpdateUserTimezone(context.Context, int64, string) error { return nil }
func (s *stallStore) UpdateUserCurrency(context.Context, int64, string) error { return nil }
func (s *stallStore) AddExpense(context.Context, *domain.Expense) error       { return nil }
func (s *stallStore) GetExpenses(context.Context, int64, domain.Instant, int) ([]domain.Expense, error) {
	return nil, nil
}
func (s *stallStore) AddIncome(context.Context, *domain.Income) error            { return nil }
func (s *stallStore) GetIncomes(context.Context, int64) ([]domain.Income, error) { return nil, nil }
func (s *stallStore) AddReminder(context.Context, *domain.Reminder) error        { return nil }

// chanTransport reports the chat id of each delivered message.
type chanTransport struct {
	chats chan int64
}

func (c *chanTransport) Send(msg bot.Message) error {
	c.chats <- msg.ChatID
	return nil
}

func messageUpdate(userID, chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, FirstName: "u"},
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	}}
}

// One user's handler sitting in a slow remote call must not delay anyone
// else's messages.
func TestConsumeDoesNotSerializeUsers(t *testing.T) {
	store := &stallStore{stallUser: 1, release: make(chan struct{})}
	out := &chanTransport{chats: make(chan int64, 4)}
	core := bot.New(bot.Deps{
		Store:     store,
		Transport: out,
		Log:       zerolog.New(io.Discard),
	})
	a := &Adapter{log: zerolog.New(io.Discard)}

	updates := make(chan tgbotapi.Update, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		a.consume(ctx, core, updates)
		close(done)
	}()

	updates <- messageUpdate(1, 1, "hello")
	updates <- messageUpdate(2, 2, "hello")

	select {
	case chat := <-out.chats:
		if chat != 2 {
			t.Errorf("replied to chat %d first, want 2", chat)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second user's message was stuck behind the first")
	}

	close(store.release)
	select {
	case chat := <-out.chats:
		if chat != 1 {
			t.Errorf("replied to chat %d, want 1", chat)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first user's handler never finished")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consume did not stop on context cancel")
	}
}
