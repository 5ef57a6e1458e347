package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumina_site/internal/api"
	"lumina_site/internal/api/handler"
	"lumina_site/internal/app/service"
	"lumina_site/internal/common/security"
	"lumina_site/internal/domain/repository"
	"lumina_site/internal/i18n"
	"lumina_site/internal/platform/cache"
	"lumina_site/internal/platform/config"
	"lumina_site/internal/platform/database"
	"lumina_site/internal/platform/storage"
	"lumina_site/web"
)

func main() {
	// 1. Configuration
	cfg := config.Load()
	log.Println("Configuration loaded.")

	// 2. Translation tables
	bundle, err := i18n.Load()
	if err != nil {
		log.Fatalf("Could not load translations: %v", err)
	}

	// 3. User registry
	var userRepo repository.UserRepository
	if cfg.UserBackend == "postgres" {
		db, err := database.Connect(cfg.DBConnStr)
		if err != nil {
			log.Fatalf("Could not connect to Postgres: %v", err)
		}
		defer db.Close()
		userRepo = repository.NewPgUserRepository(db)
		log.Println("User registry: postgres.")
	} else {
		userRepo = repository.NewMemoryUserRepository(repository.DemoUsers()...)
		log.Println("User registry: in-memory (demo accounts seeded).")
	}

	// 4. Session store
	var sessionRepo repository.SessionRepository
	if cfg.SessionBackend == "redis" {
		rdb, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		sessionRepo = repository.NewRedisSessionRepository(rdb)
		log.Println("Session store: redis.")
	} else {
		sessionRepo = repository.NewMemorySessionRepository()
		log.Println("Session store: in-memory.")
	}

	// 5. Blob store
	signer := security.NewUploadTokenSigner(cfg.UploadTokenSecret, cfg.UploadTokenTTL)
	var store storage.Store
	if cfg.UseS3() {
		store, err = storage.NewS3Store(context.Background(), storage.S3Options{
			Endpoint:        cfg.R2Endpoint,
			Region:          cfg.R2Region,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			Bucket:          cfg.R2Bucket,
			PublicDomain:    cfg.R2PublicDomain,
		})
		if err != nil {
			log.Fatalf("Could not set up R2 storage: %v", err)
		}
		log.Println("Blob store: R2/S3.")
	} else {
		store = storage.NewMemoryStore(signer, cfg.BaseURL)
		log.Println("Blob store: in-memory mock (configure R2_* for real storage).")
	}

	// 6. Services
	authService := service.NewAuthService(userRepo, sessionRepo)
	fileService := service.NewFileService(store, cfg.UploadPrefix)
	contentService := service.NewContentService()

	// 7. Renderer & handlers
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Could not parse templates: %v", err)
	}
	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookieMaxAge)
	adminHandler := handler.NewAdminHandler(fileService, signer)
	pageHandler := handler.NewPageHandler(renderer, bundle, contentService, fileService)

	// 8. Router & HTTP server
	router := api.NewRouter(sessionRepo, authHandler, adminHandler, pageHandler)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully.")
}
