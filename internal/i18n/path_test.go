package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantLocale   Locale
		wantResidual string
	}{
		{"root", "/", LocaleEN, "/"},
		{"unprefixed page", "/products", LocaleEN, "/products"},
		{"japanese root", "/ja", LocaleJA, "/"},
		{"japanese page", "/ja/products", LocaleJA, "/products"},
		{"chinese nested", "/zh/blog/hello-world", LocaleZH, "/blog/hello-world"},
		{"en prefix is not stripped", "/en/products", LocaleEN, "/en/products"},
		{"unknown prefix", "/fr/products", LocaleEN, "/fr/products"},
		{"locale-looking suffix", "/blog/ja", LocaleEN, "/blog/ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale, residual := Resolve(tt.path)
			assert.Equal(t, tt.wantLocale, locale)
			assert.Equal(t, tt.wantResidual, residual)
		})
	}
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "/products", Localize("/products", LocaleEN))
	assert.Equal(t, "/ja/products", Localize("/products", LocaleJA))
	assert.Equal(t, "/zh/blog/hello", Localize("/blog/hello", LocaleZH))
	assert.Equal(t, "/ja", Localize("/", LocaleJA))
	assert.Equal(t, "/", Localize("/", LocaleEN))
}

// Localize then Resolve must return the original locale and residual for
// every supported locale.
func TestLocalizeResolveRoundTrip(t *testing.T) {
	residuals := []string{"/", "/products", "/blog/hello-world", "/admin/files", "/a/b/c"}

	for _, locale := range SupportedLocales {
		for _, residual := range residuals {
			localized := Localize(residual, locale)
			gotLocale, gotResidual := Resolve(localized)
			assert.Equal(t, locale, gotLocale, "path %q", localized)
			assert.Equal(t, residual, gotResidual, "path %q", localized)
		}
	}
}
