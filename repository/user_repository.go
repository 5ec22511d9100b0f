// Package repository, veritabanı erişim katmanını tanımlar.
//
// Repository Pattern: veritabanı işlemlerini (CRUD) soyutlayan tasarım kalıbı.
// Service katmanı doğrudan SQL yazmaz — repository interface'i üzerinden çalışır.
//
// Neden interface?
// 1. Test: Fake repository yazarak DB olmadan test edebilirsin
// 2. Esneklik: SQLite'tan PostgreSQL'e geçiş sadece yeni implementasyon ister
// 3. Dependency Inversion: Service, concrete struct'a değil interface'e bağımlı
//
// Go'da interface "implicit"tır — struct, interface'deki tüm method'ları
// implement ediyorsa otomatik olarak o interface'i sağlar.
package repository

import (
	"context"

	"github.com/akinalp/postline/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
// Kullanıcılar signup'ta oluşturulur ve bu kapsamda değiştirilmez —
// update/delete operasyonu yok.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByIdentifier, username VEYA email eşleşmesiyle kullanıcı bulur.
	// Signin her iki kimlikle de yapılabilir.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}
