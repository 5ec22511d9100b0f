package repository

import (
	"context"

	"github.com/akinalp/postline/models"
)

// PostRepository, gönderi veritabanı işlemleri için interface.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Post, error)
	// Update, title ve description kolonlarını verilen değerlerle yazar.
	// Hangi alanların değişeceğine service karar verir (patch orada uygulanır).
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	// IncrementLike / IncrementDislike, ilgili sayacı tek atomik statement
	// ile 1 artırır ve güncel satırı döner. Read-modify-write yapılmaz —
	// eşzamanlı like'lar kaybolmaz.
	IncrementLike(ctx context.Context, id string) (*models.Post, error)
	IncrementDislike(ctx context.Context, id string) (*models.Post, error)
}
