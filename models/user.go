// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda API'den
// gelen/giden verilerin şeklini de belirler. `json:"username"` tag'leri
// struct field'larının JSON'a nasıl serialize edileceğini söyler.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// User, bir kullanıcıyı temsil eder.
// Signup'ta bir kez oluşturulur; bu kapsamda sonradan değiştirilmez
// (profil güncelleme endpoint'i yok).
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Password  string    `json:"-"` // SHA3-256 digest — API response'a DAHİL ETME
	CreatedAt time.Time `json:"created_at"`
}

// SignupRequest, kayıt olurken client'tan gelen veri.
// Password düz metin gelir — digest'leme service katmanında yapılır.
type SignupRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, SignupRequest'in geçerli olup olmadığını kontrol eder.
// Kurallar:
//   - Username: 3-64 karakter, alfanumerik + alt çizgi
//   - Email: geçerli format, max 64 karakter
//   - FullName: zorunlu, max 64 karakter
//   - Password: minimum 8 karakter
func (r *SignupRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	usernameLen := utf8.RuneCountInString(r.Username)
	if usernameLen < 3 || usernameLen > 64 {
		return fmt.Errorf("username must be between 3 and 64 characters")
	}
	for _, ch := range r.Username {
		if !isValidUsernameChar(ch) {
			return fmt.Errorf("username can only contain letters, numbers, and underscores")
		}
	}

	r.Email = strings.TrimSpace(r.Email)
	if utf8.RuneCountInString(r.Email) > 64 || !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}

	r.FullName = strings.TrimSpace(r.FullName)
	fullNameLen := utf8.RuneCountInString(r.FullName)
	if fullNameLen == 0 || fullNameLen > 64 {
		return fmt.Errorf("full name must be between 1 and 64 characters")
	}

	if utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	return nil
}

// SigninRequest, giriş yaparken client'tan gelen veri.
// Username VEYA email ile giriş yapılabilir — en az biri dolu olmalı.
type SigninRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, SigninRequest'in geçerli olup olmadığını kontrol eder.
func (r *SigninRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	if r.Username == "" && r.Email == "" {
		return fmt.Errorf("username or email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Identifier, signin'de kullanıcıyı bulmak için kullanılacak kimliği döner.
// Username doluysa username, değilse email.
func (r *SigninRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// isValidUsernameChar, username'de izin verilen karakterleri kontrol eder.
func isValidUsernameChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
