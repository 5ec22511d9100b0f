package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/postline/database"
	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/google/uuid"
)

// sqliteSessionRepo, SessionRepository interface'inin SQLite implementasyonu.
type sqliteSessionRepo struct {
	db database.TxQuerier
}

// NewSQLiteSessionRepo, constructor.
func NewSQLiteSessionRepo(db database.TxQuerier) SessionRepository {
	return &sqliteSessionRepo{db: db}
}

func (r *sqliteSessionRepo) Create(ctx context.Context, session *models.Session) error {
	session.ID = uuid.NewString()

	query := `
		INSERT INTO sessions (id, user_id, token)
		VALUES (?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		session.ID,
		session.UserID,
		session.Token,
	).Scan(&session.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: session already exists for user", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *sqliteSessionRepo) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	query := `
		SELECT id, user_id, token, created_at
		FROM sessions WHERE token = ?`

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&session.ID, &session.UserID, &session.Token, &session.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}

	return session, nil
}

func (r *sqliteSessionRepo) GetByUserID(ctx context.Context, userID string) (*models.Session, error) {
	query := `
		SELECT id, user_id, token, created_at
		FROM sessions WHERE user_id = ?`

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&session.ID, &session.UserID, &session.Token, &session.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session by user id: %w", err)
	}

	return session, nil
}

// Upsert — tek statement'lık insert-or-replace.
//
// ON CONFLICT(user_id) DO UPDATE: satır varsa token değişir, id ve
// created_at korunur. Ayrı existence check + create/replace yapılmaz —
// eşzamanlı iki signin'den kaybedeni conflict'e düşürmek yerine
// ikisini de geçerli kılar; satırda her zaman son yazılan token kalır.
func (r *sqliteSessionRepo) Upsert(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, token)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET token = excluded.token
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		session.UserID,
		session.Token,
	).Scan(&session.ID, &session.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	return nil
}

func (r *sqliteSessionRepo) Replace(ctx context.Context, id string, newToken string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET token = ? WHERE id = ?`, newToken, id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: token already in use", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to replace session token: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
