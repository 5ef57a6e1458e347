package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumina_site/internal/domain/model"
	"lumina_site/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityChain(sessions repository.SessionRepository, next http.HandlerFunc) http.Handler {
	return Identity(sessions)(next)
}

func TestIdentityAttachesUser(t *testing.T) {
	ctx := context.Background()
	sessions := repository.NewMemorySessionRepository()
	user := &model.User{ID: "1", Email: "admin@example.com", Role: model.RoleAdmin}
	sessionID, err := sessions.Create(ctx, user)
	require.NoError(t, err)

	var gotUser *model.User
	var gotSession string
	h := identityChain(sessions, func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = GetUserFromContext(r.Context())
		gotSession, _ = GetSessionIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, user, gotUser)
	assert.Equal(t, sessionID, gotSession)
}

func TestIdentityWithoutCookie(t *testing.T) {
	sessions := repository.NewMemorySessionRepository()

	var hasUser bool
	h := identityChain(sessions, func(w http.ResponseWriter, r *http.Request) {
		_, hasUser = GetUserFromContext(r.Context())
	})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, hasUser)
}

// A cookie pointing at a vanished session behaves exactly like no cookie.
func TestIdentityWithStaleSession(t *testing.T) {
	sessions := repository.NewMemorySessionRepository()

	var hasUser, reached bool
	h := identityChain(sessions, func(w http.ResponseWriter, r *http.Request) {
		reached = true
		_, hasUser = GetUserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, reached)
	assert.False(t, hasUser)
}

func TestRequireUserRedirects(t *testing.T) {
	h := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("guarded handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	ctx := context.WithValue(req.Context(), OriginalPathCtxKey, "/ja/admin")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fja%2Fadmin", rec.Header().Get("Location"))
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole(model.RoleAdmin)

	run := func(user *model.User) *httptest.ResponseRecorder {
		reached := false
		h := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		}))
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if user != nil {
			req = req.WithContext(context.WithValue(req.Context(), UserCtxKey, user))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			assert.True(t, reached)
		}
		return rec
	}

	assert.Equal(t, http.StatusForbidden, run(nil).Code)
	assert.Equal(t, http.StatusForbidden, run(&model.User{Role: model.RoleUser}).Code)
	assert.Equal(t, http.StatusOK, run(&model.User{Role: model.RoleAdmin}).Code)
}
