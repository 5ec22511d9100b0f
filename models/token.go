package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT token'ın içindeki veriler (payload): {user_id, exp}.
//
// Access ve refresh token aynı payload şeklini paylaşır — sadece ömür
// politikaları ve saklama biçimleri farklıdır (refresh, Session'da mirror'lanır).
//
// Bu struct models paketinde tanımlanır çünkü birden fazla katman
// (services, middleware, handlers) tarafından kullanılır —
// circular dependency'yi önler.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
