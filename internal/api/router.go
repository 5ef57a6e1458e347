package api

import (
	"net/http"
	"time"

	"lumina_site/internal/api/handler"
	custommw "lumina_site/internal/api/middleware"
	"lumina_site/internal/domain/model"
	"lumina_site/internal/domain/repository"
	"lumina_site/web"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	sessionRepo repository.SessionRepository,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	pageHandler *handler.PageHandler,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Cross-cutting: locale resolution first (it rewrites the path), then
	// one identity resolution for the whole request.
	r.Use(custommw.Localizer)
	r.Use(custommw.Identity(sessionRepo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Handle("/public/*", web.StaticHandler("/public/"))

	// Session auth API
	r.Route("/api/auth", authHandler.RegisterRoutes)

	// Admin file-manager API; the presigned upload endpoint sits outside
	// the guard because its authority is the signed token.
	r.Route("/api/admin", func(admin chi.Router) {
		admin.Group(func(guarded chi.Router) {
			guarded.Use(custommw.RequireUser)
			guarded.Use(custommw.RequireRole(model.RoleAdmin))
			adminHandler.RegisterRoutes(guarded)
		})
		adminHandler.RegisterPresignedUpload(admin)
	})

	// Pages
	pageHandler.RegisterPublic(r)
	r.Group(func(authed chi.Router) {
		authed.Use(custommw.RequireUser)
		pageHandler.RegisterAuthenticated(authed)
	})
	r.Group(func(admin chi.Router) {
		admin.Use(custommw.RequireUser)
		admin.Use(custommw.RequireRole(model.RoleAdmin))
		pageHandler.RegisterAdmin(admin)
	})

	return r
}
