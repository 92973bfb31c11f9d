package auth

import (
	"context"
	"net/http"
	"time"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "tempo_session"

// SessionValidity bounds how long a login lasts.
const SessionValidity = 30 * 24 * time.Hour

type contextKey struct{}

// UserID returns the authenticated user's id from the request context, or
// "" for an unauthenticated request.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// WithUserID returns a context carrying the authenticated user id. Exposed
// for handler tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// SetSessionCookie issues the session cookie for a logged-in user.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionValidity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie logs the browser out.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware resolves the session cookie into a user id on the request
// context. Requests without a valid session pass through unauthenticated;
// RequireUser gates the routes that need one.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err == nil {
				if userID, err := UserIDFromToken(cookie.Value, secret); err == nil {
					r = r.WithContext(WithUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser redirects unauthenticated requests to the login page,
// mirroring the router guard of the original UI.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r.Context()) == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
