package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// EntriesPage renders the time entries for one project with the timer
// controls, manual entry form, and export link.
func EntriesPage(data EntriesData) templ.Component {
	return Layout(data.Locale, data.Project.Name, true, entriesBody(data))
}

func entriesBody(data EntriesData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<h2>%s</h2>
`, esc(data.Project.Name), esc(t(data.Locale, "entries.heading"))); err != nil {
			return err
		}

		if err := TimerControls(data).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="/projects/%s/entries" class="manual-form">
  <input type="datetime-local" name="start_time" required>
  <input type="datetime-local" name="end_time" required>
  <button type="submit">%s</button>
</form>
`, esc(data.Project.ID), esc(t(data.Locale, "entries.manual"))); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="/projects/%s/entries/combine">`, esc(data.Project.ID)); err != nil {
			return err
		}

		if err := EntryTable(data).Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<button type="submit">%s</button>
</form>
<p class="total">%s: %s</p>
<p><a href="/projects/%s/report.pdf">%s</a></p>
`,
			esc(t(data.Locale, "entries.combine")),
			esc(t(data.Locale, "entries.total")), esc(data.Total),
			esc(data.Project.ID), esc(t(data.Locale, "entries.export")))
		return err
	})
}

// TimerControls renders the start/stop button depending on whether this
// project owns the running timer.
func TimerControls(data EntriesData) templ.Component {
	return component(func(w io.Writer) error {
		if data.Running != nil {
			_, err := fmt.Fprintf(w, `<div class="timer running"><span>%s</span>
<form class="inline" method="post" action="/entries/%s/stop"><button type="submit">%s</button></form></div>
`, esc(t(data.Locale, "entries.running")), esc(data.Running.ID), esc(t(data.Locale, "entries.stop")))
			return err
		}
		_, err := fmt.Fprintf(w, `<div class="timer"><form class="inline" method="post" action="/projects/%s/entries/start"><button type="submit">%s</button></form></div>
`, esc(data.Project.ID), esc(t(data.Locale, "entries.start")))
		return err
	})
}

// EntryTable renders the entry rows with the combine checkboxes.
func EntryTable(data EntriesData) templ.Component {
	return component(func(w io.Writer) error {
		if len(data.Entries) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(t(data.Locale, "entries.empty")))
			return err
		}

		if _, err := fmt.Fprintf(w, `<table class="entries">
<thead><tr><th></th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th></th></tr></thead>
<tbody>
`,
			esc(t(data.Locale, "entries.date")),
			esc(t(data.Locale, "entries.from")),
			esc(t(data.Locale, "entries.to")),
			esc(t(data.Locale, "entries.duration"))); err != nil {
			return err
		}

		for _, e := range data.Entries {
			stop := e.Stop
			if e.Running {
				stop = "…"
			}
			if _, err := fmt.Fprintf(w, `<tr><td><input type="checkbox" name="ids" value="%s"></td>
<td>%s</td><td>%s</td><td>%s</td><td>%s</td>
<td><button hx-delete="/entries/%s" hx-target="closest tr" hx-swap="outerHTML"></button></td></tr>
`, esc(e.ID), esc(e.Date), esc(e.Start), esc(stop), esc(e.Duration), esc(e.ID)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}
