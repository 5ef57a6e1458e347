package middleware

import (
	"context"
	"net/http"
	"strings"

	"lumina_site/internal/i18n"
)

const (
	LocaleCtxKey       contextKey = "locale"
	OriginalPathCtxKey contextKey = "originalPath"
)

// Localizer resolves the request locale from the path prefix, rewrites the
// path to its unprefixed residual, and stashes both the locale and the
// original path in the context. Routes are registered once, unprefixed;
// /ja/... and /zh/... variants fall out of the rewrite.
func Localizer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale, residual := i18n.Resolve(r.URL.Path)

		ctx := context.WithValue(r.Context(), LocaleCtxKey, locale)
		ctx = context.WithValue(ctx, OriginalPathCtxKey, r.URL.Path)

		r = r.WithContext(ctx)
		r.URL.Path = residual
		// chi routes on RawPath when escaped characters are present; keep
		// it consistent with the rewritten Path.
		if r.URL.RawPath != "" && locale != i18n.DefaultLocale {
			r.URL.RawPath = strings.TrimPrefix(r.URL.RawPath, "/"+string(locale))
			if r.URL.RawPath == "" {
				r.URL.RawPath = "/"
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetLocale returns the request's resolved locale, defaulting when the
// Localizer did not run (tests hitting handlers directly).
func GetLocale(ctx context.Context) i18n.Locale {
	if locale, ok := ctx.Value(LocaleCtxKey).(i18n.Locale); ok {
		return locale
	}
	return i18n.DefaultLocale
}

// GetOriginalPath returns the path as the client sent it, locale prefix
// included.
func GetOriginalPath(r *http.Request) string {
	if path, ok := r.Context().Value(OriginalPathCtxKey).(string); ok {
		return path
	}
	return r.URL.Path
}
