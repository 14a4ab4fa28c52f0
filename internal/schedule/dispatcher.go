package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
	"github.com/botirbakhtiyarov/smartexpensebot/internal/i18n"
)

const (
	// warnLead is how long before the exact moment the warning fires.
	warnLead = 10 * time.Minute
	// nudgeHour is the local hour of the daily expense nudge.
	nudgeHour = 20
	// callbackTimeout bounds the storage and send work done inside a
	// fired timer.
	callbackTimeout = 30 * time.Second
)

// UserSource is the user lookup the dispatcher needs. GetUser returns nil
// without an error when the user no longer exists.
type UserSource interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ReminderSource is the reminder persistence the dispatcher needs.
type ReminderSource interface {
	GetPendingReminders(ctx context.Context) ([]domain.Reminder, error)
	MarkReminderSent(ctx context.Context, id int64) error
}

// Notifier delivers a plain text message to a chat.
type Notifier interface {
	SendText(chatID int64, text string) error
}

// Dispatcher turns persisted reminders into timer registrations and runs
// the deliveries. Deliveries re-check that the owner still exists so a
// deleted account never receives a message.
type Dispatcher struct {
	timer     Timer
	users     UserSource
	reminders ReminderSource
	notify    Notifier
	now       func() time.Time
	log       zerolog.Logger
}

// NewDispatcher wires a dispatcher.
func NewDispatcher(timer Timer, users UserSource, reminders ReminderSource, notify Notifier, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		timer:     timer,
		users:     users,
		reminders: reminders,
		notify:    notify,
		now:       time.Now,
		log:       log,
	}
}

func warningID(id int64) string { return fmt.Sprintf("reminder_warning_%d", id) }
func exactID(id int64) string   { return fmt.Sprintf("reminder_exact_%d", id) }
func nudgeID(userID int64) string {
	return fmt.Sprintf("daily_%d", userID)
}

// Schedule registers the warning and exact deliveries for one reminder.
// Either delivery whose moment has already passed is skipped; an overdue
// reminder never fires late.
func (d *Dispatcher) Schedule(r domain.Reminder) {
	warnAt := r.RemindAt.Add(-warnLead)
	if warnAt.Time().After(d.now()) {
		d.timer.Register(warningID(r.ID), warnAt.Time(), func() {
			d.deliver(r, "reminder_warning", false)
		})
	}
	if r.RemindAt.Time().After(d.now()) {
		d.timer.Register(exactID(r.ID), r.RemindAt.Time(), func() {
			d.deliver(r, "reminder_triggered", true)
		})
	}
}

// Cancel drops both deliveries for a reminder.
func (d *Dispatcher) Cancel(reminderID int64) {
	d.timer.Cancel(warningID(reminderID))
	d.timer.Cancel(exactID(reminderID))
}

func (d *Dispatcher) deliver(r domain.Reminder, key string, markSent bool) {
	ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
	defer cancel()

	user, err := d.users.GetUser(ctx, r.UserID)
	if err != nil {
		d.log.Error().Err(err).Int64("reminder_id", r.ID).Msg("reminder delivery: load user")
		return
	}
	if user == nil {
		// Owner deleted their account after scheduling.
		d.log.Debug().Int64("reminder_id", r.ID).Msg("reminder owner gone, skipping")
		return
	}

	text := i18n.Tf(user.Lang(), key, "message", r.Message)
	if err := d.notify.SendText(r.ChatID, text); err != nil {
		d.log.Error().Err(err).Int64("reminder_id", r.ID).Msg("reminder delivery: send")
		return
	}

	if markSent {
		if err := d.reminders.MarkReminderSent(ctx, r.ID); err != nil {
			d.log.Error().Err(err).Int64("reminder_id", r.ID).Msg("reminder delivery: mark sent")
		}
	}
}

// RecoverPending re-registers every unsent reminder after a restart.
// Reminders that came due while the process was down stay unregistered.
func (d *Dispatcher) RecoverPending(ctx context.Context) error {
	pending, err := d.reminders.GetPendingReminders(ctx)
	if err != nil {
		return fmt.Errorf("recover pending reminders: %w", err)
	}
	for _, r := range pending {
		d.Schedule(r)
	}
	d.log.Info().Int("count", len(pending)).Msg("recovered pending reminders")
	return nil
}

// ScheduleNudge registers the user's next daily expense nudge, computed in
// their own timezone. Each delivery schedules the next one.
func (d *Dispatcher) ScheduleNudge(user domain.User) {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}

	nowLocal := d.now().In(loc)
	next := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), nudgeHour, 0, 0, 0, loc)
	if !next.After(nowLocal) {
		next = next.AddDate(0, 0, 1)
	}

	userID := user.ID
	d.timer.Register(nudgeID(userID), next, func() {
		d.nudge(userID)
	})
}

func (d *Dispatcher) nudge(userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
	defer cancel()

	user, err := d.users.GetUser(ctx, userID)
	if err != nil {
		d.log.Error().Err(err).Int64("user_id", userID).Msg("daily nudge: load user")
		return
	}
	if user == nil {
		return
	}

	if err := d.notify.SendText(user.ChatID, i18n.T(user.Lang(), "daily_expense_reminder")); err != nil {
		d.log.Error().Err(err).Int64("user_id", userID).Msg("daily nudge: send")
	}

	d.ScheduleNudge(*user)
}

// ScheduleAllNudges registers the daily nudge for every known user.
func (d *Dispatcher) ScheduleAllNudges(ctx context.Context) error {
	users, err := d.users.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("schedule daily nudges: %w", err)
	}
	for _, u := range users {
		d.ScheduleNudge(u)
	}
	d.log.Info().Int("count", len(users)).Msg("scheduled daily nudges")
	return nil
}

// CancelNudge drops a user's daily nudge, used when the account is deleted.
func (d *Dispatcher) CancelNudge(userID int64) {
	d.timer.Cancel(nudgeID(userID))
}
