// Package i18n provides the en/de message catalogs for the web UI.
// English is the base locale; unknown locales and missing keys fall back
// to it.
package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

// CookieName persists the user's locale choice across visits.
const CookieName = "tempo_locale"

var supported = []language.Tag{
	language.English, // base locale, must stay first
	language.German,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[string]map[string]string{
	"en": en,
	"de": de,
}

type contextKey struct{}

// Locales lists the locale codes the UI can be switched to.
func Locales() []string {
	return []string{"en", "de"}
}

// Match resolves the preferred locale from the given candidates (cookie
// value first, then Accept-Language) to a supported locale code.
func Match(preferred ...string) string {
	tag, _ := language.MatchStrings(matcher, preferred...)
	base, _ := tag.Base()
	if _, ok := catalogs[base.String()]; ok {
		return base.String()
	}
	return "en"
}

// T translates a key for a locale, falling back to English and finally to
// the key itself.
func T(locale, key string) string {
	if msgs, ok := catalogs[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := en[key]; ok {
		return msg
	}
	return key
}

// Middleware resolves the request's locale from the locale cookie with an
// Accept-Language fallback and stores it on the context.
func Middleware(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			preferred := []string{}
			if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
				preferred = append(preferred, cookie.Value)
			}
			if al := r.Header.Get("Accept-Language"); al != "" {
				preferred = append(preferred, al)
			}
			preferred = append(preferred, defaultLocale)

			ctx := context.WithValue(r.Context(), contextKey{}, Match(preferred...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the locale resolved by Middleware, defaulting to the
// base locale.
func FromContext(ctx context.Context) string {
	if locale, ok := ctx.Value(contextKey{}).(string); ok {
		return locale
	}
	return "en"
}
