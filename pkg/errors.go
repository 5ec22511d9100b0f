// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir (string taşıyan struct'lar).
// errors.New() ile sabit error değişkenleri tanımlarız.
// Böylece error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Bu, typo'ya açık string karşılaştırmasından çok daha güvenlidir.
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları döner, handler yakalar.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)

// Token doğrulama hataları — üçü de 401'e map'lenir ama mesajları farklıdır.
//
// Neden tek ErrUnauthorized yetmiyor?
// Auth flow ve bearer guard, client'a hatanın sebebini söylemek zorunda:
// "token süresi doldu" gören client refresh endpoint'ine gider,
// "imza geçersiz" gören client baştan login olur.
// Üçü de ErrUnauthorized'ı wrap eder — errors.Is(err, ErrUnauthorized) hepsinde true.
var (
	ErrTokenExpired          = wrapSentinel(ErrUnauthorized, "token expired")
	ErrTokenSignatureInvalid = wrapSentinel(ErrUnauthorized, "invalid token signature")
	ErrTokenMalformed        = wrapSentinel(ErrUnauthorized, "malformed token")
)

// wrapSentinel, bir sentinel error'ı başka bir sentinel'in altına bağlar.
// fmt.Errorf("%w: ...") her çağrıda yeni değer ürettiği için burada kullanılamaz —
// sentinel'ler paket yüklenirken bir kez oluşturulmalı ki errors.Is ile eşleşsin.
func wrapSentinel(parent error, msg string) error {
	return &sentinelError{parent: parent, msg: msg}
}

type sentinelError struct {
	parent error
	msg    string
}

func (e *sentinelError) Error() string { return e.msg }
func (e *sentinelError) Unwrap() error { return e.parent }
