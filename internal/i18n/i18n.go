package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*/common.json
var localeFS embed.FS

// Bundle holds the per-locale translation tables, loaded once at startup
// and read-only afterwards.
type Bundle struct {
	tables map[Locale]map[string]interface{}
}

func Load() (*Bundle, error) {
	b := &Bundle{tables: make(map[Locale]map[string]interface{})}
	for _, locale := range SupportedLocales {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s/common.json", locale))
		if err != nil {
			return nil, fmt.Errorf("i18n: reading %s table: %w", locale, err)
		}
		table := make(map[string]interface{})
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("i18n: parsing %s table: %w", locale, err)
		}
		b.tables[locale] = table
	}
	return b, nil
}

// Translate walks the dotted key into the locale's table, falling back to
// the default locale and finally to the key itself. It never fails.
func (b *Bundle) Translate(locale Locale, key string) string {
	if s, ok := lookup(b.tables[locale], key); ok {
		return s
	}
	if locale != DefaultLocale {
		if s, ok := lookup(b.tables[DefaultLocale], key); ok {
			return s
		}
	}
	return key
}

// Translator binds a bundle to one locale, handy for templates.
type Translator struct {
	bundle *Bundle
	locale Locale
}

func (b *Bundle) Translator(locale Locale) *Translator {
	return &Translator{bundle: b, locale: locale}
}

func (t *Translator) Locale() Locale {
	return t.locale
}

func (t *Translator) T(key string) string {
	return t.bundle.Translate(t.locale, key)
}

func lookup(table map[string]interface{}, key string) (string, bool) {
	var value interface{} = table
	for _, part := range strings.Split(key, ".") {
		m, ok := value.(map[string]interface{})
		if !ok {
			return "", false
		}
		value, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := value.(string)
	return s, ok
}
