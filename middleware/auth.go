// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware, request handler'a ulaşmadan önce çalışır:
//   func(next http.Handler) http.Handler
//
// Kendi işini yapar (token doğrula), sonra next'i çağırır.
// Hata varsa next çağrılmaz — request burada durur.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/akinalp/postline/handlers"
	"github.com/akinalp/postline/pkg"
	"github.com/akinalp/postline/services"
)

// AuthMiddleware, bearer access token doğrulama guard'ı.
//
// Access token stateless'tır — guard DB'ye GİTMEZ, sadece imza + expiry
// kontrolü yapar ve çözülen claims'i context'e koyar. Session Store yalnızca
// refresh token'lar için vardır.
type AuthMiddleware struct {
	tokens services.TokenService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(tokens services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Require, bearer token zorunlu kılan middleware.
//
// Header formatı: Authorization: Bearer <token>
// Header yok veya şema yanlış → 401 "not authenticated".
// Token doğrulanamazsa → tür'e göre mesaj (expired / invalid), yine 401.
// Tüm 401 yanıtları WWW-Authenticate: Bearer challenge'ı taşır.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokens.Verify(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, pkg.ErrTokenExpired):
				pkg.ErrorWithDetail(w, http.StatusUnauthorized, "access token expired", err.Error())
			case errors.Is(err, pkg.ErrTokenSignatureInvalid), errors.Is(err, pkg.ErrTokenMalformed):
				pkg.ErrorWithDetail(w, http.StatusUnauthorized, "invalid access token", err.Error())
			default:
				pkg.Error(w, err)
			}
			return
		}

		// Claims'i context'e koy — downstream handler'lar caller kimliğini
		// r.Context().Value(handlers.ClaimsContextKey) ile okur.
		ctx := context.WithValue(r.Context(), handlers.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
