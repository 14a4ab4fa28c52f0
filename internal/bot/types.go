// Package bot is the conversation core: it routes incoming updates through
// the mode and confirmation state machines and answers with localized
// messages and keyboards. It knows nothing about the wire protocol; the
// transport adapter feeds it normalized updates.
package bot

import (
	"context"
	"time"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// Incoming is one normalized user update from the transport.
type Incoming struct {
	UserID   int64
	ChatID   int64
	Name     string
	Text     string
	Voice    string // file reference of a voice message, "" otherwise
	Location *Coordinates
}

// Callback is one pressed inline button.
type Callback struct {
	UserID    int64
	ChatID    int64
	MessageID int
	Name      string
	Data      string
}

// Coordinates is a shared location.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Button is one keyboard button. Exactly one flag may be set.
type Button struct {
	Label           string
	Data            string // inline callback payload, "" for reply buttons
	RequestLocation bool
}

// Keyboard is rendered as a reply keyboard when Inline is false, otherwise
// as inline buttons attached to the message.
type Keyboard struct {
	Inline bool
	Rows   [][]Button
}

// Message is one outgoing message.
type Message struct {
	ChatID   int64
	Text     string
	Keyboard *Keyboard
}

// Transport delivers messages to the user.
type Transport interface {
	Send(msg Message) error
}

// Store is the persistence the conversation core needs.
type Store interface {
	GetOrCreateUser(ctx context.Context, userID, chatID int64, name string) (*domain.User, bool, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	UpdateUserLanguage(ctx context.Context, userID int64, language string) error
	UpdateUserTimezone(ctx context.Context, userID int64, timezone string) error
	UpdateUserCurrency(ctx context.Context, userID int64, currency string) error
	AddExpense(ctx context.Context, e *domain.Expense) error
	GetExpenses(ctx context.Context, userID int64, since domain.Instant, limit int) ([]domain.Expense, error)
	AddIncome(ctx context.Context, in *domain.Income) error
	GetIncomes(ctx context.Context, userID int64) ([]domain.Income, error)
	AddReminder(ctx context.Context, r *domain.Reminder) error
}

// Extractor is the model-backed extraction surface.
type Extractor interface {
	ExtractExpense(ctx context.Context, text, lang, defaultCurrency string) domain.ExpenseItem
	ExtractExpenses(ctx context.Context, text, lang, defaultCurrency string) []domain.ExpenseItem
	ExtractIncome(ctx context.Context, text, lang, defaultCurrency string) domain.IncomeItem
	ResolveCountryTimezone(ctx context.Context, country string) string
	AnswerReport(ctx context.Context, question, lang, digest string) (string, error)
}

// TimeResolver turns reminder text into a firing instant.
type TimeResolver interface {
	Resolve(ctx context.Context, text, lang string, loc *time.Location) (domain.Instant, error)
}

// Scheduler registers reminder deliveries and daily nudges.
type Scheduler interface {
	Schedule(r domain.Reminder)
	ScheduleNudge(u domain.User)
}

// Transcriber converts a voice message to text.
type Transcriber interface {
	Transcribe(ctx context.Context, fileRef string) (string, error)
}

// LocationResolver maps coordinates to an IANA timezone, "" when unknown.
type LocationResolver interface {
	ResolveTimezone(lat, lon float64) string
}
