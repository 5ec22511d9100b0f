// Package main, postline backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar ile)
//  3. Repository'leri oluştur (DB bağlantısı ile)
//  4. Service'leri oluştur (repository'ler ile)
//  5. Handler'ları oluştur (service'ler ile)
//  6. Middleware'ı oluştur
//  7. HTTP router'ı kur, route'ları bağla
//  8. CORS yapılandır
//  9. HTTP Server'ı başlat
// 10. Graceful shutdown
//
// Global değişken YOK — her şey burada oluşturulup birbirine bağlanıyor.
// Secret key, salt ve TTL'ler config'den inject edilir; request handler'ları
// içinde asla ambient state okunmaz.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/postline/config"
	"github.com/akinalp/postline/database"
	"github.com/akinalp/postline/handlers"
	"github.com/akinalp/postline/middleware"
	"github.com/akinalp/postline/pkg/crypto"
	"github.com/akinalp/postline/repository"
	"github.com/akinalp/postline/services"
	"github.com/rs/cors"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] postline server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to load embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrationsFS)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Repository Layer ───
	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	sessionRepo := repository.NewSQLiteSessionRepo(db.Conn)
	postRepo := repository.NewSQLitePostRepo(db.Conn)

	// ─── 4. Service Layer ───
	tokenService := services.NewTokenService(cfg.Auth.SecretKey)
	hasher := crypto.NewHasher(cfg.Auth.PasswordSalt)

	authService := services.NewAuthService(
		userRepo,
		sessionRepo,
		tokenService,
		hasher,
		cfg.Auth.AccessTokenExpire,
		cfg.Auth.RefreshTokenExpire,
	)
	postService := services.NewPostService(postRepo)

	// ─── 5. Handler Layer ───
	authHandler := handlers.NewAuthHandler(authService, cfg.Auth.RefreshCookieName, cfg.Auth.RefreshTokenExpire)
	postHandler := handlers.NewPostHandler(postService)

	// ─── 6. Middleware ───
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// ─── 7. HTTP Router ───
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"postline"}`)
	})

	// Auth — public endpoint'ler (bearer token gerekmez; refresh/logout
	// kimliğini cookie'deki refresh token'dan alır)
	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/signin", authHandler.Signin)
	mux.HandleFunc("POST /auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)

	// Posts — tamamı bearer guard'ın arkasında
	mux.Handle("POST /posts", authMiddleware.Require(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /posts", authMiddleware.Require(http.HandlerFunc(postHandler.List)))
	mux.Handle("GET /posts/{id}", authMiddleware.Require(http.HandlerFunc(postHandler.Get)))
	mux.Handle("PUT /posts/{id}", authMiddleware.Require(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /posts/{id}", authMiddleware.Require(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("POST /posts/{id}/like", authMiddleware.Require(http.HandlerFunc(postHandler.Like)))
	mux.Handle("POST /posts/{id}/dislike", authMiddleware.Require(http.HandlerFunc(postHandler.Dislike)))

	// ─── 8. CORS ───
	// AllowCredentials: refresh cookie'sinin cross-origin gönderilebilmesi için şart.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := corsHandler.Handler(mux)

	// ─── 9. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 10. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
