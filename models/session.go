package models

import "time"

// Session, kullanıcının güncel refresh token grant'ını temsil eder.
//
// Neden refresh token ayrı tabloda?
// Access token kısa ömürlü ve stateless — hiç persist edilmez.
// Refresh token uzun ömürlü — DB'de tutularak revoke edilebilir olur:
// logout'ta satır silinir, token artık hiçbir session'a denk gelmez.
//
// Invariant: user_id unique — kullanıcı başına en fazla bir aktif oturum.
// Token kolonu her zaman o kullanıcı için en son üretilen refresh token'ı tutar.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"` // Encoded refresh token — API'ye gönderilmez
	CreatedAt time.Time `json:"created_at"`
}
