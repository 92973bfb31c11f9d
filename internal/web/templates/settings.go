package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// SettingsPage renders the locale selector.
func SettingsPage(data SettingsData) templ.Component {
	return Layout(data.Locale, t(data.Locale, "settings.heading"), true, component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="/settings/locale">
  <label>%s <select name="locale">`,
			esc(t(data.Locale, "settings.heading")),
			esc(t(data.Locale, "settings.locale"))); err != nil {
			return err
		}

		for _, locale := range data.Locales {
			selected := ""
			if locale == data.Locale {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(locale), selected, esc(locale)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</select></label>
  <button type="submit">%s</button>
</form>
`, esc(t(data.Locale, "settings.save")))
		return err
	}))
}
