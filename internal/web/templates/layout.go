package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps a page body in the html skeleton with the navigation bar.
func Layout(locale, title string, authed bool, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/style.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
`, esc(locale), esc(title)); err != nil {
			return err
		}

		if err := nav(locale, authed).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

func nav(locale string, authed bool) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<nav class="topnav"><a class="brand" href="/">%s</a>`, esc(t(locale, "app.title"))); err != nil {
			return err
		}
		if authed {
			if _, err := fmt.Fprintf(w, `<span class="links"><a href="/">%s</a> <a href="/settings">%s</a> <form class="inline" method="post" action="/logout"><button type="submit" class="link">%s</button></form></span>`,
				esc(t(locale, "nav.projects")), esc(t(locale, "nav.settings")), esc(t(locale, "nav.logout"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</nav>\n")
		return err
	})
}
