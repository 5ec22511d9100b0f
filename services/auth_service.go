// Package services, business logic katmanını barındırır.
//
// Service Layer Pattern: Handler (HTTP) ile Repository (DB) arasında oturan
// katman. Tüm iş kuralları burada yaşar: şifre digest'leme, token üretme,
// session rotasyonu, sahiplik kontrolleri.
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/akinalp/postline/pkg/crypto"
	"github.com/akinalp/postline/repository"
)

// AuthService, kimlik doğrulama ve oturum yaşam döngüsü.
//
// Kullanıcı başına state machine: NoSession ←→ HasSession(token).
//   - Signup / Signin (doğru şifre): HasSession — token yeni pair'in refresh'i
//   - Signin (yanlış şifre): varsa session SİLİNİR — defensive revocation
//   - Refresh (geçerli): HasSession, token rotate edilir
//   - Logout: NoSession
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*TokenPair, error)
	Signin(ctx context.Context, req *models.SigninRequest) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// TokenPair, signup/signin/refresh sonrası dönen token çifti.
// AccessToken response body'de döner; RefreshToken handler tarafından
// httponly cookie'ye yazılır, body'ye asla konmaz.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      TokenService
	hasher      *crypto.Hasher
	accessExp   time.Duration
	refreshExp  time.Duration
}

// NewAuthService, constructor.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	tokens TokenService,
	hasher *crypto.Hasher,
	accessExp time.Duration,
	refreshExp time.Duration,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		hasher:      hasher,
		accessExp:   accessExp,
		refreshExp:  refreshExp,
	}
}

// Signup, yeni kullanıcı kaydı oluşturur.
//
// Akış: şifreyi digest'le → user oluştur → token çifti üret → session oluştur.
// Unique ihlalinde (username/email alınmış) hiçbir şey yazılmaz, Conflict döner.
// User yazıldıktan sonra session oluşturulamazsa Internal — user satırı kalır,
// kullanıcı signin ile oturum açabilir.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: s.hasher.Sum(req.Password),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrAlreadyExists olabilir → 409
	}

	pair, err := s.generatePair(user.ID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		UserID: user.ID,
		Token:  pair.RefreshToken,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: bad session", pkg.ErrInternal)
	}

	return pair, nil
}

// Signin, username veya email + şifre ile giriş yapar.
//
// Yanlış şifre, varsa mevcut session'ı SİLER — başarısız giriş denemesi
// oturumu defensive olarak revoke eder. İkinci yanlış deneme de Unauthorized
// döner ve session silinmiş kalır.
//
// Doğru şifrede session atomik upsert ile yazılır: yoksa oluşur, varsa
// token'ı rotate olur. Ayrı existence check yok — eşzamanlı signin'ler
// conflict üretmez, satırda son yazılan token kalır.
func (s *authService) Signin(ctx context.Context, req *models.SigninRequest) (*TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByIdentifier(ctx, req.Identifier())
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: username or email is not exist", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if s.hasher.Sum(req.Password) != user.Password {
		// Yanlış şifre → mevcut oturumu revoke et
		session, findErr := s.sessionRepo.GetByUserID(ctx, user.ID)
		if findErr == nil {
			if delErr := s.sessionRepo.Delete(ctx, session.ID); delErr != nil {
				return nil, delErr
			}
		} else if !errors.Is(findErr, pkg.ErrNotFound) {
			return nil, findErr
		}
		return nil, fmt.Errorf("%w: password is not correct", pkg.ErrUnauthorized)
	}

	pair, err := s.generatePair(user.ID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		UserID: user.ID,
		Token:  pair.RefreshToken,
	}
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, err
	}

	return pair, nil
}

// Refresh, cookie'den gelen refresh token ile yeni bir token çifti üretir.
//
// Sıra önemli: önce session lookup, sonra token doğrulama.
// Session Store'da olmayan bir token — geçerli imzalı olsa bile — reddedilir
// (logout sonrası replay bu adımda ölür).
//
// Doğrulama hatalarında (expired/invalid signature/malformed) session satırına
// DOKUNULMAZ — sadece tespit edilir. Yanlış cookie'li bir çağrının gerçek
// oturumu yok etmesine izin verilmez. Cookie temizliği handler'ın işi.
//
// Başarıda stored token rotate edilir: eski refresh token artık hiçbir
// session'a denk gelmez, replay edilemez.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	session, err := s.sessionRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid session", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err // tür korunur — handler errors.Is ile mesaj seçer
	}

	pair, err := s.generatePair(claims.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Replace(ctx, session.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout, refresh token'ın session'ını siler.
// Session bulunamazsa da başarı sayılır — logout idempotent'tir,
// "zaten çıkmışsın" hatası anlamsız. Tek sessizce yutulan not-found bu.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.sessionRepo.Delete(ctx, session.ID)
}

// generatePair, aynı subject için access + refresh token çifti üretir.
func (s *authService) generatePair(userID string) (*TokenPair, error) {
	access, err := s.tokens.Create(userID, s.accessExp)
	if err != nil {
		return nil, err
	}

	refresh, err := s.tokens.Create(userID, s.refreshExp)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
