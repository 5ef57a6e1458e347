package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"lumina_site/internal/api/middleware"
	"lumina_site/internal/app/service"
	"lumina_site/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge time.Duration
}

func NewAuthHandler(authService *service.AuthService, cookieMaxAge time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieMaxAge: cookieMaxAge}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/register", h.register)
	r.Post("/sign-out", h.signOut)
	r.Get("/me", h.me)
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    interface{} `json:"user"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	http.SetCookie(w, h.sessionCookie(result.SessionID, int(h.cookieMaxAge.Seconds())))
	common.RespondWithJSON(w, http.StatusOK, loginResponse{Success: true, User: result.User})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := h.authService.Register(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.SuccessResponse{Success: true})
}

func (h *AuthHandler) signOut(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := middleware.GetSessionIDFromContext(r.Context()); ok {
		if err := h.authService.Logout(r.Context(), sessionID); err != nil {
			common.RespondWithError(w, http.StatusInternalServerError, "sign out failed")
			return
		}
	}

	// Expire the cookie regardless of whether the session still existed.
	http.SetCookie(w, h.sessionCookie("", -1))
	common.RespondWithJSON(w, http.StatusOK, common.SuccessResponse{Success: true})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, common.ErrUnauthorized.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
