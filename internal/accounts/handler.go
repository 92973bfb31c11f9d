package accounts

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/tempo/internal/auth"
	"github.com/emiliopalmerini/tempo/internal/domain"
	"github.com/emiliopalmerini/tempo/internal/i18n"
	"github.com/emiliopalmerini/tempo/internal/ports"
	"github.com/emiliopalmerini/tempo/internal/web/templates"
)

type Handler struct {
	users  ports.UserRepository
	secret []byte
}

func NewHandler(users ports.UserRepository, secret []byte) *Handler {
	return &Handler{users: users, secret: secret}
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templates.LoginPage(templates.AuthData{Locale: i18n.FromContext(ctx)}).Render(ctx, w)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := i18n.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")

	user, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		http.Error(w, domain.OpError("logging in", err).Error(), http.StatusInternalServerError)
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		w.WriteHeader(http.StatusUnauthorized)
		templates.LoginPage(templates.AuthData{
			Locale: locale,
			Error:  i18n.T(locale, "login.invalid"),
		}).Render(ctx, w)
		return
	}

	if err := h.startSession(w, user.ID); err != nil {
		http.Error(w, domain.OpError("logging in", err).Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templates.RegisterPage(templates.AuthData{Locale: i18n.FromContext(ctx)}).Render(ctx, w)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := i18n.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")
	if email == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		templates.RegisterPage(templates.AuthData{
			Locale: locale,
			Error:  i18n.T(locale, "register.missing"),
		}).Render(ctx, w)
		return
	}

	existing, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		http.Error(w, domain.OpError("registering", err).Error(), http.StatusInternalServerError)
		return
	}
	if existing != nil {
		w.WriteHeader(http.StatusConflict)
		templates.RegisterPage(templates.AuthData{
			Locale: locale,
			Error:  i18n.T(locale, "register.taken"),
		}).Render(ctx, w)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		http.Error(w, domain.OpError("registering", err).Error(), http.StatusInternalServerError)
		return
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.users.Create(ctx, user); err != nil {
		http.Error(w, domain.OpError("registering", err).Error(), http.StatusInternalServerError)
		return
	}
	log.Info().Str("user_id", user.ID).Msg("user registered")

	if err := h.startSession(w, user.ID); err != nil {
		http.Error(w, domain.OpError("registering", err).Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) startSession(w http.ResponseWriter, userID string) error {
	token, err := auth.GenerateToken(userID, h.secret, auth.SessionValidity)
	if err != nil {
		return err
	}
	auth.SetSessionCookie(w, token)
	return nil
}
