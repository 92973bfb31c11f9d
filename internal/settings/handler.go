package settings

import (
	"net/http"
	"slices"

	"github.com/emiliopalmerini/tempo/internal/i18n"
	"github.com/emiliopalmerini/tempo/internal/web/templates"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templates.SettingsPage(templates.SettingsData{
		Locale:  i18n.FromContext(ctx),
		Locales: i18n.Locales(),
	}).Render(ctx, w)
}

// SetLocale persists the locale choice in a cookie; the i18n middleware
// picks it up on the next request.
func (h *Handler) SetLocale(w http.ResponseWriter, r *http.Request) {
	locale := r.FormValue("locale")
	if !slices.Contains(i18n.Locales(), locale) {
		http.Error(w, "unsupported locale", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
