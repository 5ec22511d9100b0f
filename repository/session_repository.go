package repository

import (
	"context"

	"github.com/akinalp/postline/models"
)

// SessionRepository, refresh token oturumları için interface.
//
// Invariant: kullanıcı başına en fazla bir session satırı.
// Bu, sessions.user_id UNIQUE constraint'i ile DB seviyesinde korunur —
// uygulama tarafında mutex yok. Constraint ihlali ErrAlreadyExists olarak
// yüzeye çıkar (doğru orkestrasyonda oluşmamalı, defensive contract).
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	GetByUserID(ctx context.Context, userID string) (*models.Session, error)
	// Upsert, kullanıcının session'ını tek atomik statement ile
	// oluşturur veya token'ını değiştirir (insert-or-replace, user_id anahtarlı).
	// Eşzamanlı signin'ler yarışabilir — kaybeden taraf var olan satırın
	// token'ını günceller, conflict hatası oluşmaz.
	Upsert(ctx context.Context, session *models.Session) error
	// Replace, mevcut session'ın token kolonunu yeni refresh token ile
	// değiştirir. Satır yerinde güncellenir, id korunur.
	Replace(ctx context.Context, id string, newToken string) error
	Delete(ctx context.Context, id string) error
}
