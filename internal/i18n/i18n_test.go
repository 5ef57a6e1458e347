package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() *Bundle {
	return &Bundle{tables: map[Locale]map[string]interface{}{
		LocaleEN: {
			"nav": map[string]interface{}{
				"home": "Home",
			},
			"only": map[string]interface{}{
				"english": "English only",
			},
		},
		LocaleJA: {
			"nav": map[string]interface{}{
				"home": "ホーム",
			},
		},
		LocaleZH: {},
	}}
}

func TestTranslate(t *testing.T) {
	b := testBundle()

	assert.Equal(t, "Home", b.Translate(LocaleEN, "nav.home"))
	assert.Equal(t, "ホーム", b.Translate(LocaleJA, "nav.home"))
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	b := testBundle()

	assert.Equal(t, "English only", b.Translate(LocaleJA, "only.english"))
	assert.Equal(t, "English only", b.Translate(LocaleZH, "only.english"))
	assert.Equal(t, b.Translate(LocaleEN, "only.english"), b.Translate(LocaleJA, "only.english"))
}

func TestTranslateReturnsKeyOnTotalMiss(t *testing.T) {
	b := testBundle()

	for _, locale := range SupportedLocales {
		assert.Equal(t, "no.such.key", b.Translate(locale, "no.such.key"))
	}
	// Partial match that dead-ends on a non-string node.
	assert.Equal(t, "nav", b.Translate(LocaleEN, "nav"))
	assert.Equal(t, "nav.home.deeper", b.Translate(LocaleEN, "nav.home.deeper"))
}

func TestLoadEmbeddedTables(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	for _, locale := range SupportedLocales {
		assert.NotEmpty(t, b.Translate(locale, "site.title"))
		assert.NotEqual(t, "nav.home", b.Translate(locale, "nav.home"))
	}
}

func TestTranslator(t *testing.T) {
	b := testBundle()
	tr := b.Translator(LocaleJA)

	assert.Equal(t, LocaleJA, tr.Locale())
	assert.Equal(t, "ホーム", tr.T("nav.home"))
	assert.Equal(t, "English only", tr.T("only.english"))
}
