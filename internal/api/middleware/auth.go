package middleware

import (
	"context"
	"net/http"
	"net/url"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"
	"lumina_site/internal/domain/repository"
)

type contextKey string

const (
	UserCtxKey      contextKey = "user"
	SessionIDCtxKey contextKey = "sessionID"
)

const SessionCookieName = "session"

// Identity resolves the session cookie to a user exactly once per request
// and attaches the result to the context. Requests without a valid session
// proceed with a nil user; this middleware never terminates a request.
func Identity(sessions repository.SessionRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionIDCtxKey, cookie.Value)
			// A stale id is treated the same as no cookie at all.
			if user, err := sessions.Get(ctx, cookie.Value); err == nil {
				ctx = context.WithValue(ctx, UserCtxKey, user)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser redirects anonymous requests to the login page, carrying the
// original (locale-prefixed) destination so the login flow can return.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserFromContext(r.Context()); !ok {
			target := "/login?redirect=" + url.QueryEscape(GetOriginalPath(r))
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole terminates with 403 when the authenticated user fails the
// role check. Compose after RequireUser.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok || user.Role != role {
				common.RespondWithError(w, http.StatusForbidden, common.ErrForbidden.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*model.User)
	return user, ok && user != nil
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}
