// Package crypto — şifre digest fonksiyonları.
//
// Şifreler veritabanında asla düz metin saklanmaz; SHA3-256 digest'i saklanır.
// Digest deterministiktir: aynı salt + aynı şifre → her zaman aynı hex çıktı.
// Karşılaştırma bu yüzden digest eşitliği ile yapılır, düz metinle asla.
//
// Salt process-wide konfigürasyondur (kullanıcı başına değil) ve şifrenin
// önüne eklenerek hash'lenir. Salt config'den inject edilir — ambient global yok.
package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Hasher, sabit salt ile SHA3-256 digest üretir.
type Hasher struct {
	salt []byte
}

// NewHasher, constructor.
func NewHasher(salt string) *Hasher {
	return &Hasher{salt: []byte(salt)}
}

// Sum, salt||secret'in SHA3-256 digest'ini hex string olarak döner.
// Hata yolu yok — pure function.
func (h *Hasher) Sum(secret string) string {
	d := sha3.New256()
	d.Write(h.salt)
	d.Write([]byte(secret))
	return hex.EncodeToString(d.Sum(nil))
}
