package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginPage renders the login form.
func LoginPage(data AuthData) templ.Component {
	return Layout(data.Locale, t(data.Locale, "login.heading"), false, component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
`, esc(t(data.Locale, "login.heading"))); err != nil {
			return err
		}
		if err := authError(data, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="/login" class="auth-form">
  <label>%s <input type="email" name="email" required></label>
  <label>%s <input type="password" name="password" required></label>
  <button type="submit">%s</button>
</form>
<p><a href="/register">%s</a></p>
`,
			esc(t(data.Locale, "login.email")),
			esc(t(data.Locale, "login.password")),
			esc(t(data.Locale, "login.submit")),
			esc(t(data.Locale, "login.register")))
		return err
	}))
}

// RegisterPage renders the account creation form.
func RegisterPage(data AuthData) templ.Component {
	return Layout(data.Locale, t(data.Locale, "register.heading"), false, component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
`, esc(t(data.Locale, "register.heading"))); err != nil {
			return err
		}
		if err := authError(data, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="/register" class="auth-form">
  <label>%s <input type="email" name="email" required></label>
  <label>%s <input type="password" name="password" required></label>
  <button type="submit">%s</button>
</form>
`,
			esc(t(data.Locale, "login.email")),
			esc(t(data.Locale, "login.password")),
			esc(t(data.Locale, "register.submit")))
		return err
	}))
}

func authError(data AuthData, w io.Writer) error {
	if data.Error == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="error">%s</p>`, esc(data.Error))
	return err
}
