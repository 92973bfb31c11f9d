package timeentries

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/tempo/internal/auth"
	"github.com/emiliopalmerini/tempo/internal/domain"
	"github.com/emiliopalmerini/tempo/internal/i18n"
	"github.com/emiliopalmerini/tempo/internal/ports"
	"github.com/emiliopalmerini/tempo/internal/telemetry"
	"github.com/emiliopalmerini/tempo/internal/web/templates"
)

type Handler struct {
	entries  ports.TimeEntryRepository
	projects ports.ProjectRepository
	metrics  *telemetry.Metrics
}

func NewHandler(entries ports.TimeEntryRepository, projects ports.ProjectRepository, metrics *telemetry.Metrics) *Handler {
	return &Handler{entries: entries, projects: projects, metrics: metrics}
}

// ListByProject renders the entry page for one project: the timer
// controls, the entry table, and the worked total.
func (h *Handler) ListByProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	entries, err := h.entries.ListByProject(ctx, project.ID)
	if err != nil {
		http.Error(w, domain.OpError("getting time entries", err).Error(), http.StatusInternalServerError)
		return
	}

	total, err := h.entries.TotalWorkedByProject(ctx, project.ID)
	if err != nil {
		http.Error(w, domain.OpError("getting total worked time", err).Error(), http.StatusInternalServerError)
		return
	}

	running, err := h.entries.RunningByProject(ctx, project.ID)
	if err != nil {
		http.Error(w, domain.OpError("getting running time entry", err).Error(), http.StatusInternalServerError)
		return
	}

	data := templates.EntriesData{
		Locale: i18n.FromContext(ctx),
		Project: templates.ProjectView{
			ID:   project.ID,
			Name: project.Name,
		},
		Entries: toViews(entries),
		Total:   templates.FormatDuration(total),
	}
	if running != nil {
		view := toView(running)
		data.Running = &view
	}

	templates.EntriesPage(data).Render(ctx, w)
}

// Start opens a running timer on the project. If another timer is already
// running anywhere the call does nothing; the page reload shows the state
// unchanged.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	id, err := h.entries.StartWork(ctx, project.ID)
	if err != nil {
		http.Error(w, domain.OpError("starting work", err).Error(), http.StatusInternalServerError)
		return
	}
	if id == "" {
		log.Debug().Str("project_id", project.ID).Msg("start ignored, timer already running")
	} else {
		h.metrics.RecordEntryStarted(ctx, project.ID)
	}

	http.Redirect(w, r, "/projects/"+project.ID+"/entries", http.StatusSeeOther)
}

// CreateManual records a completed interval from the manual entry form.
// The interval is stored as given; an end before the start yields a
// negative duration rather than an error.
func (h *Handler) CreateManual(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	start, err := parseLocalTime(r.FormValue("start_time"))
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}
	end, err := parseLocalTime(r.FormValue("end_time"))
	if err != nil {
		http.Error(w, "invalid end_time", http.StatusBadRequest)
		return
	}

	if _, err := h.entries.CreateManual(ctx, project.ID, start, end); err != nil {
		http.Error(w, domain.OpError("creating time entry", err).Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/projects/"+project.ID+"/entries", http.StatusSeeOther)
}

// Stop closes the running entry with the current time.
func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	entry, err := h.entries.GetByID(ctx, id)
	if err != nil {
		http.Error(w, domain.OpError("ending work", err).Error(), http.StatusInternalServerError)
		return
	}
	if entry == nil {
		http.NotFound(w, r)
		return
	}

	if err := h.entries.EndWork(ctx, id); err != nil {
		http.Error(w, domain.OpError("ending work", err).Error(), http.StatusInternalServerError)
		return
	}
	h.metrics.RecordEntryStopped(ctx)

	http.Redirect(w, r, "/projects/"+entry.ProjectID+"/entries", http.StatusSeeOther)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.entries.DeleteByID(ctx, id); err != nil {
		http.Error(w, domain.OpError("deleting time entry", err).Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Patch updates an entry's interval. A form field that is absent leaves
// the value unchanged, an empty field clears it, and a value sets it to
// that epoch-millisecond timestamp.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	var patch domain.TimeEntryPatch
	if r.PostForm.Has("start_time") {
		field, err := parsePatchField(r.PostForm.Get("start_time"))
		if err != nil {
			http.Error(w, "invalid start_time", http.StatusBadRequest)
			return
		}
		patch.StartTime = field
	}
	if r.PostForm.Has("end_time") {
		field, err := parsePatchField(r.PostForm.Get("end_time"))
		if err != nil {
			http.Error(w, "invalid end_time", http.StatusBadRequest)
			return
		}
		patch.EndTime = field
	}

	if err := h.entries.Patch(ctx, id, patch); err != nil {
		if err == domain.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		http.Error(w, domain.OpError("updating time entry", err).Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Combine merges the checked entries into one spanning interval.
func (h *Handler) Combine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	ids := r.PostForm["ids"]

	if len(ids) > 1 {
		if err := h.entries.Combine(ctx, ids); err != nil {
			http.Error(w, domain.OpError("combining time entries", err).Error(), http.StatusInternalServerError)
			return
		}
		h.metrics.RecordEntriesCombined(ctx, len(ids)-1)
	}

	http.Redirect(w, r, "/projects/"+project.ID+"/entries", http.StatusSeeOther)
}

// ownedProject resolves the {id} route parameter to a project the
// authenticated user owns, writing the error response itself otherwise.
func (h *Handler) ownedProject(w http.ResponseWriter, r *http.Request) (*domain.Project, bool) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	project, err := h.projects.GetByID(ctx, id)
	if err != nil {
		http.Error(w, domain.OpError("getting project", err).Error(), http.StatusInternalServerError)
		return nil, false
	}
	if project == nil || project.UserID != auth.UserID(ctx) {
		http.NotFound(w, r)
		return nil, false
	}
	return project, true
}

func parseLocalTime(value string) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04", value, time.Local)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
		if err != nil {
			return 0, err
		}
	}
	return t.UnixMilli(), nil
}

func parsePatchField(value string) (domain.PatchField, error) {
	if value == "" {
		return domain.ClearField(), nil
	}
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return domain.PatchField{}, err
	}
	return domain.SetField(ms), nil
}

func toViews(entries []*domain.TimeEntry) []templates.EntryView {
	views := make([]templates.EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toView(e))
	}
	return views
}

func toView(e *domain.TimeEntry) templates.EntryView {
	view := templates.EntryView{
		ID:      e.ID,
		Date:    templates.FormatDate(e.StartTime),
		Start:   templates.FormatTime(e.StartTime),
		Running: e.Running,
	}
	if e.EndTime != nil {
		view.Stop = templates.FormatTime(*e.EndTime)
		view.Duration = templates.FormatDuration(*e.EndTime - e.StartTime)
	}
	return view
}
