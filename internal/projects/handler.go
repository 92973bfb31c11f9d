package projects

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/tempo/internal/auth"
	"github.com/emiliopalmerini/tempo/internal/domain"
	"github.com/emiliopalmerini/tempo/internal/i18n"
	"github.com/emiliopalmerini/tempo/internal/ports"
	"github.com/emiliopalmerini/tempo/internal/web/templates"
)

type Handler struct {
	projects ports.ProjectRepository
}

func NewHandler(projects ports.ProjectRepository) *Handler {
	return &Handler{projects: projects}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projects.List(ctx, auth.UserID(ctx))
	if err != nil {
		http.Error(w, domain.OpError("getting projects", err).Error(), http.StatusInternalServerError)
		return
	}

	templates.ProjectsPage(templates.ProjectsData{
		Locale:   i18n.FromContext(ctx),
		Projects: toViews(projects),
	}).Render(ctx, w)
}

// Search serves the htmx fragment behind the search box. A query that
// matches nothing falls back to the full list, so clearing the box
// restores the page without a reload.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	projects, err := h.projects.SearchByName(ctx, auth.UserID(ctx), query)
	if err != nil {
		http.Error(w, domain.OpError("getting projects by name", err).Error(), http.StatusInternalServerError)
		return
	}

	templates.ProjectList(templates.ProjectsData{
		Locale:   i18n.FromContext(ctx),
		Query:    query,
		Projects: toViews(projects),
	}).Render(ctx, w)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	project := &domain.Project{
		ID:        uuid.NewString(),
		UserID:    auth.UserID(ctx),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if description := strings.TrimSpace(r.FormValue("description")); description != "" {
		project.Description = &description
	}

	if err := h.projects.Create(ctx, project); err != nil {
		http.Error(w, domain.OpError("creating project", err).Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete removes a project and everything tracked against it. The row
// disappears client-side via the htmx swap, so a successful delete has an
// empty body.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	project, err := h.projects.GetByID(ctx, id)
	if err != nil {
		http.Error(w, domain.OpError("deleting project", err).Error(), http.StatusInternalServerError)
		return
	}
	if project == nil || project.UserID != auth.UserID(ctx) {
		http.NotFound(w, r)
		return
	}

	if err := h.projects.Delete(ctx, id); err != nil {
		http.Error(w, domain.OpError("deleting project", err).Error(), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("project_id", id).Msg("project deleted")
	w.WriteHeader(http.StatusOK)
}

func toViews(projects []*domain.Project) []templates.ProjectView {
	views := make([]templates.ProjectView, 0, len(projects))
	for _, p := range projects {
		view := templates.ProjectView{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt.Format("2006-01-02"),
		}
		if p.Description != nil {
			view.Description = *p.Description
		}
		views = append(views, view)
	}
	return views
}
