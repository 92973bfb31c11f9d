package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ProjectsPage renders the project list with the search box and the
// create form.
func ProjectsPage(data ProjectsData) templ.Component {
	return Layout(data.Locale, t(data.Locale, "app.title"), true, projectsBody(data))
}

func projectsBody(data ProjectsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<input type="search" name="q" value="%s" placeholder="%s"
  hx-get="/projects/search" hx-trigger="input changed delay:300ms" hx-target="#project-list">
<form method="post" action="/projects" class="create-form">
  <input type="text" name="name" placeholder="%s" required>
  <input type="text" name="description" placeholder="%s">
  <button type="submit">%s</button>
</form>
<div id="project-list">`,
			esc(t(data.Locale, "projects.heading")),
			esc(data.Query),
			esc(t(data.Locale, "projects.search")),
			esc(t(data.Locale, "projects.name")),
			esc(t(data.Locale, "projects.description")),
			esc(t(data.Locale, "projects.create")),
		); err != nil {
			return err
		}

		if err := ProjectList(data).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

// ProjectList renders just the list, used both inside the page and as the
// search fragment target.
func ProjectList(data ProjectsData) templ.Component {
	return component(func(w io.Writer) error {
		if len(data.Projects) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(t(data.Locale, "projects.empty")))
			return err
		}

		if _, err := io.WriteString(w, `<ul class="projects">`); err != nil {
			return err
		}
		for _, p := range data.Projects {
			if _, err := fmt.Fprintf(w, `<li><a href="/projects/%s/entries">%s</a><span class="desc">%s</span>
<button hx-delete="/projects/%s" hx-confirm="%s?" hx-target="closest li" hx-swap="outerHTML">%s</button></li>`,
				esc(p.ID), esc(p.Name), esc(p.Description),
				esc(p.ID), esc(t(data.Locale, "projects.delete")), esc(t(data.Locale, "projects.delete"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n")
		return err
	})
}
