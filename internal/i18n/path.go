package i18n

import "strings"

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
	LocaleZH Locale = "zh"
)

// DefaultLocale is served unprefixed; the others get a leading path segment.
const DefaultLocale = LocaleEN

var SupportedLocales = []Locale{LocaleEN, LocaleJA, LocaleZH}

func IsSupported(code string) bool {
	for _, l := range SupportedLocales {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Resolve derives the locale from a request path and strips its prefix.
// An unrecognized or absent prefix resolves to the default locale with the
// path unchanged.
func Resolve(path string) (Locale, string) {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return DefaultLocale, "/"
	}

	first := segments[0]
	if IsSupported(first) && Locale(first) != DefaultLocale {
		residual := "/" + strings.Join(segments[1:], "/")
		return Locale(first), residual
	}
	return DefaultLocale, path
}

// Localize prefixes a residual path with the locale segment. The default
// locale stays unprefixed. Localize is the inverse Resolve round-trips on.
func Localize(path string, locale Locale) string {
	clean := strings.TrimPrefix(path, "/")
	if locale == DefaultLocale {
		return "/" + clean
	}
	if clean == "" {
		return "/" + string(locale)
	}
	return "/" + string(locale) + "/" + clean
}
