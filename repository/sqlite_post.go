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

// sqlitePostRepo, PostRepository interface'inin SQLite implementasyonu.
type sqlitePostRepo struct {
	db database.TxQuerier
}

// NewSQLitePostRepo, constructor.
func NewSQLitePostRepo(db database.TxQuerier) PostRepository {
	return &sqlitePostRepo{db: db}
}

func (r *sqlitePostRepo) Create(ctx context.Context, post *models.Post) error {
	post.ID = uuid.NewString()

	query := `
		INSERT INTO posts (id, user_id, title, description)
		VALUES (?, ?, ?, ?)
		RETURNING like_count, dislike_count, created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID,
		post.UserID,
		post.Title,
		post.Description,
	).Scan(&post.LikeCount, &post.DislikeCount, &post.CreatedAt)

	if err != nil {
		// UNIQUE constraint violation → aynı title'lı gönderi zaten var
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: post title already taken", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *sqlitePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, user_id, title, description, like_count, dislike_count, created_at
		FROM posts WHERE id = ?`

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Description,
		&post.LikeCount, &post.DislikeCount, &post.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *sqlitePostRepo) GetByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT id, user_id, title, description, like_count, dislike_count, created_at
		FROM posts WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by user id: %w", err)
	}
	defer rows.Close() // rows'u kapatmayı ASLA unutma — aksi halde bağlantı sızar

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.ID, &post.UserID, &post.Title, &post.Description,
			&post.LikeCount, &post.DislikeCount, &post.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	return posts, nil
}

func (r *sqlitePostRepo) Update(ctx context.Context, post *models.Post) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, description = ? WHERE id = ?`,
		post.Title, post.Description, post.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: post title already taken", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to update post: %w", err)
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

func (r *sqlitePostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
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

func (r *sqlitePostRepo) IncrementLike(ctx context.Context, id string) (*models.Post, error) {
	return r.increment(ctx, id, "like_count")
}

func (r *sqlitePostRepo) IncrementDislike(ctx context.Context, id string) (*models.Post, error) {
	return r.increment(ctx, id, "dislike_count")
}

// increment, verilen sayaç kolonunu 1 artırıp güncel satırı döner.
// Kolon adı sadece sabit iki değerden gelir — SQL injection riski yok.
func (r *sqlitePostRepo) increment(ctx context.Context, id string, column string) (*models.Post, error) {
	query := fmt.Sprintf(`
		UPDATE posts SET %s = %s + 1 WHERE id = ?
		RETURNING id, user_id, title, description, like_count, dislike_count, created_at`,
		column, column)

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Description,
		&post.LikeCount, &post.DislikeCount, &post.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment %s: %w", column, err)
	}

	return post, nil
}
