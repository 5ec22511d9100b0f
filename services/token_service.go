package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService, imzalı ve süreli token üretir/doğrular.
//
// Access ve refresh token aynı servisten çıkar — ikisi de HS256 ile imzalı
// {user_id, exp} payload taşır, sadece ttl'leri farklıdır.
//
// Verify üç ayrı hata türü döner: Expired, InvalidSignature, Malformed.
// Tek bir generic "unauthorized" yerine üç tür ayırmak, auth flow ve bearer
// guard'ın aynı 401 status ile farklı, kesin client mesajları vermesini sağlar.
type TokenService interface {
	Create(userID string, ttl time.Duration) (string, error)
	Verify(tokenString string) (*models.TokenClaims, error)
}

type tokenService struct {
	secret []byte
}

// NewTokenService, constructor.
// Secret process-wide config'den gelir — startup'tan sonra read-only.
func NewTokenService(secret string) TokenService {
	return &tokenService{secret: []byte(secret)}
}

// Create, {user_id, exp = now + ttl} payload'lı imzalı token üretir.
// Sadece serialization hatasında fail eder — programcı hatası sayılır.
func (s *tokenService) Create(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify, token'ın imzasını ve süresini kontrol edip claims'i döner.
//
// Hata türleri (hepsi pkg.ErrUnauthorized'ı wrap eder):
//   - pkg.ErrTokenExpired: imza geçerli ama süre dolmuş
//   - pkg.ErrTokenSignatureInvalid: imza secret ile eşleşmiyor
//   - pkg.ErrTokenMalformed: beklenen yapıya decode edilemiyor
//
// Çağıran taraf errors.Is ile türe göre branch'ler — cookie temizleme ve
// client mesajı buna göre seçilir.
func (s *tokenService) Verify(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		// golang-jwt sentinel'lerini kendi domain hatalarımıza çevir.
		// Sıralama önemli: malformed kontrolü önce — parse bile edilemeyen
		// token için expiry/imza konuşulamaz.
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %s", pkg.ErrTokenMalformed, err.Error())
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %s", pkg.ErrTokenSignatureInvalid, err.Error())
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %s", pkg.ErrTokenExpired, err.Error())
		default:
			return nil, fmt.Errorf("%w: %s", pkg.ErrTokenMalformed, err.Error())
		}
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrTokenMalformed)
	}

	return claims, nil
}
