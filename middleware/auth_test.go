package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akinalp/postline/handlers"
	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/akinalp/postline/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardFixture, gerçek token service ile guard kurar ve arkasına
// context'teki claims'i kaydeden bir handler koyar.
func guardFixture(t *testing.T) (services.TokenService, http.Handler, *[]*models.TokenClaims) {
	t.Helper()
	tokens := services.NewTokenService("test-secret")
	guard := NewAuthMiddleware(tokens)

	var seen []*models.TokenClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := r.Context().Value(handlers.ClaimsContextKey).(*models.TokenClaims)
		seen = append(seen, claims)
		w.WriteHeader(http.StatusOK)
	})

	return tokens, guard.Require(next), &seen
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp pkg.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Message
}

func TestRequireMissingHeader(t *testing.T) {
	_, guarded, seen := guardFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "not authenticated", errorMessage(t, w))
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Empty(t, *seen) // next hiç çağrılmadı
}

func TestRequireWrongScheme(t *testing.T) {
	tokens, guarded, seen := guardFixture(t)

	token, err := tokens.Create("user-1", time.Minute)
	require.NoError(t, err)

	// Geçerli token bile olsa şema Bearer değilse reddedilir
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Basic "+token)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "not authenticated", errorMessage(t, w))
	assert.Empty(t, *seen)
}

func TestRequireExpiredToken(t *testing.T) {
	tokens, guarded, seen := guardFixture(t)

	token, err := tokens.Create("user-1", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "access token expired", errorMessage(t, w))
	assert.Empty(t, *seen)
}

func TestRequireTamperedToken(t *testing.T) {
	_, guarded, seen := guardFixture(t)

	// Başka secret ile imzalanmış token
	other := services.NewTokenService("other-secret")
	token, err := other.Create("user-1", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid access token", errorMessage(t, w))
	assert.Empty(t, *seen)
}

func TestRequireValidTokenPassesClaims(t *testing.T) {
	tokens, guarded, seen := guardFixture(t)

	token, err := tokens.Create("user-42", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *seen, 1)
	require.NotNil(t, (*seen)[0])
	assert.Equal(t, "user-42", (*seen)[0].UserID)
}
