package storage

import (
	"context"
	"fmt"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// AddExpense persists a confirmed expense and fills in its ID.
func (s *Store) AddExpense(ctx context.Context, e *domain.Expense) error {
	if e.Created.IsZero() {
		e.Created = domain.NowInstant()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (user_id, amount, category, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.UserID, e.Amount, string(e.Category), e.Description, e.Created.String())
	if err != nil {
		return fmt.Errorf("add expense for user %d: %w", e.UserID, err)
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("add expense for user %d: %w", e.UserID, err)
	}
	return nil
}

// GetExpenses returns the user's expenses recorded at or after since,
// newest first. limit <= 0 means no limit.
func (s *Store) GetExpenses(ctx context.Context, userID int64, since domain.Instant, limit int) ([]domain.Expense, error) {
	q := `SELECT id, user_id, amount, category, description, created_at
	      FROM expenses WHERE user_id = ? AND created_at >= ?
	      ORDER BY created_at DESC, id DESC`
	args := []any{userID, since.String()}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get expenses for user %d: %w", userID, err)
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		var (
			e         domain.Expense
			category  string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &category, &e.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Category = domain.Category(category)
		e.Created, _ = domain.ParseInstant(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// AddIncome persists a confirmed income and fills in its ID.
func (s *Store) AddIncome(ctx context.Context, in *domain.Income) error {
	if in.Created.IsZero() {
		in.Created = domain.NowInstant()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO incomes (user_id, amount, currency, description, recurrence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Amount, in.Currency, in.Description, in.Recurrence, in.Created.String())
	if err != nil {
		return fmt.Errorf("add income for user %d: %w", in.UserID, err)
	}
	in.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("add income for user %d: %w", in.UserID, err)
	}
	return nil
}

// GetIncomes returns the user's income records, newest first.
func (s *Store) GetIncomes(ctx context.Context, userID int64) ([]domain.Income, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, amount, currency, description, recurrence, created_at
		 FROM incomes WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("get incomes for user %d: %w", userID, err)
	}
	defer rows.Close()

	var out []domain.Income
	for rows.Next() {
		var (
			in        domain.Income
			createdAt string
		)
		if err := rows.Scan(&in.ID, &in.UserID, &in.Amount, &in.Currency, &in.Description, &in.Recurrence, &createdAt); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		in.Created, _ = domain.ParseInstant(createdAt)
		out = append(out, in)
	}
	return out, rows.Err()
}

// AddReminder persists a reminder and fills in its ID.
func (s *Store) AddReminder(ctx context.Context, r *domain.Reminder) error {
	if r.Created.IsZero() {
		r.Created = domain.NowInstant()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reminders (user_id, chat_id, message, remind_at, sent, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		r.UserID, r.ChatID, r.Message, r.RemindAt.String(), r.Created.String())
	if err != nil {
		return fmt.Errorf("add reminder for user %d: %w", r.UserID, err)
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("add reminder for user %d: %w", r.UserID, err)
	}
	return nil
}

// GetPendingReminders returns every reminder not yet marked sent, soonest
// first. Overdue reminders are included so a restart can still deliver them.
func (s *Store) GetPendingReminders(ctx context.Context) ([]domain.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, chat_id, message, remind_at, sent, created_at
		 FROM reminders WHERE sent = 0 ORDER BY remind_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("get pending reminders: %w", err)
	}
	defer rows.Close()

	var out []domain.Reminder
	for rows.Next() {
		var (
			r         domain.Reminder
			remindAt  string
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.UserID, &r.ChatID, &r.Message, &remindAt, &r.Sent, &createdAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		r.RemindAt, _ = domain.ParseInstant(remindAt)
		r.Created, _ = domain.ParseInstant(createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

// MarkReminderSent flips the sent flag. Only the exact-time delivery calls
// this; the warning leaves the reminder pending.
func (s *Store) MarkReminderSent(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE reminders SET sent = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark reminder %d sent: %w", id, err)
	}
	return nil
}
