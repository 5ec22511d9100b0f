// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi ince (thin) olmalı:
// 1. Request body/cookie'yi parse et
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı içermez, ASLA doğrudan DB'ye erişmez.
// Cookie set/clear burada yapılır — service http'yi bilmez.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/akinalp/postline/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService services.AuthService
	cookieName  string
	refreshTTL  time.Duration
}

// NewAuthHandler, constructor.
// cookieName ve refreshTTL config'den gelir — refresh token cookie'si
// httponly, path "/" ve max-age = refresh TTL ile yazılır.
func NewAuthHandler(authService services.AuthService, cookieName string, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
		refreshTTL:  refreshTTL,
	}
}

// Signup godoc
// POST /auth/signup
// Başarıda 201 + {access_token}; refresh token cookie'ye yazılır.
// Username veya email alınmışsa 409.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	pkg.JSON(w, http.StatusCreated, pair)
}

// Signin godoc
// POST /auth/signin
// Username veya email + şifre. Başarıda 200 + {access_token} ve yeni
// refresh cookie; yanlış şifre mevcut oturumu da revoke eder (401).
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.authService.Signin(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	pkg.JSON(w, http.StatusOK, pair)
}

// Refresh godoc
// POST /auth/refresh
// Refresh token cookie'den okunur, body yok.
//
// Her başarısızlık yolu cookie'yi temizler — geçersiz cookie client'ta
// bırakılmaz. Mesaj, hatanın türüne göre seçilir: session kaydı yoksa
// "invalid session", token süresi dolmuşsa "refresh token expired",
// imza/format bozuksa "invalid refresh token". Üçü de 401.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		h.clearRefreshCookie(w)
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid session")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, pkg.ErrUnauthorized) {
			h.clearRefreshCookie(w)
		}
		switch {
		case errors.Is(err, pkg.ErrTokenExpired):
			pkg.ErrorWithDetail(w, http.StatusUnauthorized, "refresh token expired", err.Error())
		case errors.Is(err, pkg.ErrTokenSignatureInvalid), errors.Is(err, pkg.ErrTokenMalformed):
			pkg.ErrorWithDetail(w, http.StatusUnauthorized, "invalid refresh token", err.Error())
		default:
			pkg.Error(w, err)
		}
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	pkg.JSON(w, http.StatusOK, pair)
}

// Logout godoc
// POST /auth/logout
// Cookie yoksa 401. Varsa cookie her durumda temizlenir ve session
// silinir; session zaten yoksa da başarı döner (idempotent).
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "you not authorized")
		return
	}

	h.clearRefreshCookie(w)

	if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "successful logout from account"})
}

// setRefreshCookie, refresh token'ı httponly cookie olarak yazar.
// HttpOnly: JavaScript erişemez — XSS ile token çalınamaz.
func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
	})
}

// clearRefreshCookie, refresh cookie'sini siler (MaxAge < 0 → browser siler).
func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// contextKey, context'te değer taşımak için kullanılan key tipi.
// string yerine özel tip — paketler arası key çakışmasını önler.
type contextKey string

// ClaimsContextKey, bearer guard'ın doğruladığı token claims'ini taşır.
// Handler'lar r.Context().Value(ClaimsContextKey).(*models.TokenClaims)
// ile caller'ın kimliğine erişir.
const ClaimsContextKey contextKey = "claims"
