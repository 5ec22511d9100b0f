package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Post, bir kullanıcı gönderisini temsil eder.
// title global unique'tir; like/dislike sayaçları yalnızca like/dislike
// operasyonları üzerinden birer birer artar — client'tan değer kabul edilmez.
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreatePostRequest, gönderi oluştururken client'tan gelen veri.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate, CreatePostRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreatePostRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(r.Title) > 256 {
		return fmt.Errorf("title must be at most 256 characters")
	}
	return nil
}

// UpdatePostRequest, kısmi gönderi güncellemesi (patch).
//
// Field'lar pointer: nil → "bu alana dokunma", boş string'e pointer →
// "bu alanı boş string yap". JSON'da alanın hiç gelmemesi ile null/boş
// gelmesi bu sayede ayırt edilir — truthiness kontrolüyle boş string
// update'inin sessizce atlanması mümkün değildir.
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Validate, UpdatePostRequest'in geçerli olup olmadığını kontrol eder.
// Gönderilen title boş olamaz — title unique ve zorunlu bir alandır.
func (r *UpdatePostRequest) Validate() error {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		if trimmed == "" {
			return fmt.Errorf("title cannot be empty")
		}
		if utf8.RuneCountInString(trimmed) > 256 {
			return fmt.Errorf("title must be at most 256 characters")
		}
		r.Title = &trimmed
	}
	return nil
}
