package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

// GetOrCreateUser loads the user, creating a fresh record on first contact.
// The second return value reports whether the user was just created, which
// is what sends a new user into onboarding.
func (s *Store) GetOrCreateUser(ctx context.Context, userID, chatID int64, name string) (*domain.User, bool, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		return user, false, nil
	}

	created := domain.NowInstant()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, chat_id, name, language, timezone, currency, created_at)
		 VALUES (?, ?, ?, '', ?, '', ?)`,
		userID, chatID, name, domain.DefaultTimezone, created.String())
	if err != nil {
		return nil, false, fmt.Errorf("create user %d: %w", userID, err)
	}

	return &domain.User{
		ID:       userID,
		ChatID:   chatID,
		Name:     name,
		Timezone: domain.DefaultTimezone,
		Created:  created,
	}, true, nil
}

// GetUser returns the user or nil when no such user exists.
func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var (
		u         domain.User
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, chat_id, name, language, timezone, currency, created_at
		 FROM users WHERE id = ?`, userID).
		Scan(&u.ID, &u.ChatID, &u.Name, &u.Language, &u.Timezone, &u.Currency, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	u.Created, _ = domain.ParseInstant(createdAt)
	return &u, nil
}

// UserExists reports whether the user has a record.
func (s *Store) UserExists(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user %d: %w", userID, err)
	}
	return true, nil
}

// ListUsers returns every known user.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chat_id, name, language, timezone, currency, created_at FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var (
			u         domain.User
			createdAt string
		)
		if err := rows.Scan(&u.ID, &u.ChatID, &u.Name, &u.Language, &u.Timezone, &u.Currency, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Created, _ = domain.ParseInstant(createdAt)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) updateUserField(ctx context.Context, userID int64, field, value string) error {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE users SET %s = ? WHERE id = ?`, field), value, userID)
	if err != nil {
		return fmt.Errorf("update user %d %s: %w", userID, field, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update user %d %s: no such user", userID, field)
	}
	return nil
}

// UpdateUserLanguage sets the user's interface language.
func (s *Store) UpdateUserLanguage(ctx context.Context, userID int64, language string) error {
	return s.updateUserField(ctx, userID, "language", language)
}

// UpdateUserTimezone sets the user's IANA timezone.
func (s *Store) UpdateUserTimezone(ctx context.Context, userID int64, timezone string) error {
	return s.updateUserField(ctx, userID, "timezone", timezone)
}

// UpdateUserCurrency sets the user's default currency code.
func (s *Store) UpdateUserCurrency(ctx context.Context, userID int64, currency string) error {
	return s.updateUserField(ctx, userID, "currency", currency)
}

// UpdateUserName refreshes the display name.
func (s *Store) UpdateUserName(ctx context.Context, userID int64, name string) error {
	return s.updateUserField(ctx, userID, "name", name)
}

// DeleteUser removes the user and, through the cascades, every record they
// own.
func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}
