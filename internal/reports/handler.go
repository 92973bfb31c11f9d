package reports

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/tempo/internal/auth"
	"github.com/emiliopalmerini/tempo/internal/domain"
	"github.com/emiliopalmerini/tempo/internal/ports"
	"github.com/emiliopalmerini/tempo/internal/report"
	"github.com/emiliopalmerini/tempo/internal/telemetry"
)

type Handler struct {
	entries  ports.TimeEntryRepository
	projects ports.ProjectRepository
	metrics  *telemetry.Metrics
}

func NewHandler(entries ports.TimeEntryRepository, projects ports.ProjectRepository, metrics *telemetry.Metrics) *Handler {
	return &Handler{entries: entries, projects: projects, metrics: metrics}
}

// Export renders the project's completed entries as a PDF download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	project, err := h.projects.GetByID(ctx, id)
	if err != nil {
		http.Error(w, domain.OpError("exporting report", err).Error(), http.StatusInternalServerError)
		return
	}
	if project == nil || project.UserID != auth.UserID(ctx) {
		http.NotFound(w, r)
		return
	}

	entries, err := h.entries.ListByProject(ctx, id)
	if err != nil {
		http.Error(w, domain.OpError("exporting report", err).Error(), http.StatusInternalServerError)
		return
	}

	doc, err := report.Build(entries, report.Metadata{
		Title:   project.Name,
		Subject: "Working time report",
		Creator: "tempo",
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoEntries) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, domain.OpError("exporting report", err).Error(), http.StatusInternalServerError)
		return
	}

	h.metrics.RecordReportExported(ctx, id)
	log.Debug().Str("project_id", id).Int("bytes", len(doc)).Msg("report exported")

	filename := report.Filename(project.Name, time.Now())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(doc)
}
