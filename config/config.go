// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config bir kez main'de oluşturulur ve ihtiyacı olan katmanlara inject edilir.
// Request handler'ları içinde asla os.Getenv çağrılmaz — signing key, salt ve
// TTL'ler startup'tan sonra read-only'dir.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/postline.db)
}

// AuthConfig, token imzalama ve oturum ayarları.
type AuthConfig struct {
	SecretKey          string        // JWT imzalama anahtarı — GİZLİ TUTULMALI
	PasswordSalt       string        // Şifre digest'i için process-wide salt
	AccessTokenExpire  time.Duration // Access token ömrü (varsayılan: 30dk)
	RefreshTokenExpire time.Duration // Refresh token ömrü (varsayılan: 7 gün)
	RefreshCookieName  string        // Refresh token'ın taşındığı cookie'nin adı
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	// TTL'ler saniye cinsinden okunur — access: 30dk, refresh: 7 gün.
	accessExpire, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE", "1800"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE: %w", err)
	}

	refreshExpire, err := strconv.Atoi(getEnv("REFRESH_TOKEN_EXPIRE", "604800"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_EXPIRE: %w", err)
	}

	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is required")
	}

	passwordSalt := getEnv("PASSWORD_SECRET_SALT", "")
	if passwordSalt == "" {
		return nil, fmt.Errorf("PASSWORD_SECRET_SALT environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/postline.db"),
		},
		Auth: AuthConfig{
			SecretKey:          secretKey,
			PasswordSalt:       passwordSalt,
			AccessTokenExpire:  time.Duration(accessExpire) * time.Second,
			RefreshTokenExpire: time.Duration(refreshExpire) * time.Second,
			RefreshCookieName:  getEnv("REFRESH_TOKEN_KEY", "refresh_token_key"),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
