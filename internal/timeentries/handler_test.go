package timeentries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/emiliopalmerini/tempo/internal/auth"
	"github.com/emiliopalmerini/tempo/internal/domain"
)

func ownedProjectRepo() *MockProjectRepository {
	return &MockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id, UserID: "u1", Name: "website"}, nil
		},
	}
}

func testRouter(h *Handler, userID string) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), userID)))
		})
	})
	RegisterRoutes(r, h)
	return r
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_ListByProject(t *testing.T) {
	end := int64(7_200_000)
	entries := &MockTimeEntryRepository{
		ListByProjectFunc: func(ctx context.Context, projectID string) ([]*domain.TimeEntry, error) {
			return []*domain.TimeEntry{
				{ID: "e1", ProjectID: projectID, StartTime: 3_600_000, EndTime: &end},
			}, nil
		},
		TotalWorkedByProjectFunc: func(ctx context.Context, projectID string) (int64, error) {
			return 3_600_000, nil
		},
		RunningByProjectFunc: func(ctx context.Context, projectID string) (*domain.TimeEntry, error) {
			return nil, nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	req := httptest.NewRequest(http.MethodGet, "/projects/p1/entries", nil)
	w := httptest.NewRecorder()
	testRouter(h, "u1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ListByProject() status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "website") {
		t.Error("Expected the project name in the page")
	}
	if !strings.Contains(body, "01:00") {
		t.Error("Expected the worked total in the page")
	}
}

func TestHandler_ListByProjectNotOwned(t *testing.T) {
	projects := &MockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id, UserID: "someone-else", Name: "theirs"}, nil
		},
	}

	h := NewHandler(&MockTimeEntryRepository{}, projects, nil)
	req := httptest.NewRequest(http.MethodGet, "/projects/p1/entries", nil)
	w := httptest.NewRecorder()
	testRouter(h, "u1").ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("ListByProject() status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandler_Start(t *testing.T) {
	started := ""
	entries := &MockTimeEntryRepository{
		StartWorkFunc: func(ctx context.Context, projectID string) (string, error) {
			started = projectID
			return "e1", nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	w := postForm(testRouter(h, "u1"), "/projects/p1/entries/start", url.Values{})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Start() status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if started != "p1" {
		t.Errorf("Expected StartWork on p1, got %q", started)
	}
	if loc := w.Header().Get("Location"); loc != "/projects/p1/entries" {
		t.Errorf("Unexpected redirect %q", loc)
	}
}

func TestHandler_StartWhileTimerRuns(t *testing.T) {
	entries := &MockTimeEntryRepository{
		StartWorkFunc: func(ctx context.Context, projectID string) (string, error) {
			return "", nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	w := postForm(testRouter(h, "u1"), "/projects/p1/entries/start", url.Values{})

	// The start is silently ignored; the page just reloads.
	if w.Code != http.StatusSeeOther {
		t.Errorf("Start() status = %d, want %d", w.Code, http.StatusSeeOther)
	}
}

func TestHandler_CreateManual(t *testing.T) {
	var gotStart, gotEnd int64
	entries := &MockTimeEntryRepository{
		CreateManualFunc: func(ctx context.Context, projectID string, start, end int64) (string, error) {
			gotStart, gotEnd = start, end
			return "e1", nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	form := url.Values{
		"start_time": {"2026-08-29T09:00"},
		"end_time":   {"2026-08-29T10:30"},
	}
	w := postForm(testRouter(h, "u1"), "/projects/p1/entries", form)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("CreateManual() status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if gotEnd-gotStart != 90*60*1000 {
		t.Errorf("Expected a 90 minute interval, got %d ms", gotEnd-gotStart)
	}
}

func TestHandler_CreateManualInvalidTime(t *testing.T) {
	entries := &MockTimeEntryRepository{
		CreateManualFunc: func(ctx context.Context, projectID string, start, end int64) (string, error) {
			t.Error("CreateManual should not be called")
			return "", nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	form := url.Values{"start_time": {"yesterday"}, "end_time": {"2026-08-29T10:30"}}
	w := postForm(testRouter(h, "u1"), "/projects/p1/entries", form)

	if w.Code != http.StatusBadRequest {
		t.Errorf("CreateManual() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandler_Stop(t *testing.T) {
	ended := ""
	entries := &MockTimeEntryRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.TimeEntry, error) {
			return &domain.TimeEntry{ID: id, ProjectID: "p1", StartTime: 1000, Running: true}, nil
		},
		EndWorkFunc: func(ctx context.Context, id string) error {
			ended = id
			return nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	w := postForm(testRouter(h, "u1"), "/entries/e1/stop", url.Values{})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Stop() status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if ended != "e1" {
		t.Errorf("Expected EndWork on e1, got %q", ended)
	}
	if loc := w.Header().Get("Location"); loc != "/projects/p1/entries" {
		t.Errorf("Unexpected redirect %q", loc)
	}
}

func TestHandler_StopUnknownEntry(t *testing.T) {
	entries := &MockTimeEntryRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.TimeEntry, error) {
			return nil, nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	w := postForm(testRouter(h, "u1"), "/entries/missing/stop", url.Values{})

	if w.Code != http.StatusNotFound {
		t.Errorf("Stop() status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandler_Patch(t *testing.T) {
	var got domain.TimeEntryPatch
	entries := &MockTimeEntryRepository{
		PatchFunc: func(ctx context.Context, id string, patch domain.TimeEntryPatch) error {
			got = patch
			return nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	form := url.Values{"start_time": {"500"}, "end_time": {""}}
	req := httptest.NewRequest(http.MethodPatch, "/entries/e1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	testRouter(h, "u1").ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Patch() status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if !got.StartTime.Set || got.StartTime.Value == nil || *got.StartTime.Value != 500 {
		t.Errorf("Expected start set to 500, got %+v", got.StartTime)
	}
	if !got.EndTime.Set || got.EndTime.Value != nil {
		t.Errorf("Expected end cleared, got %+v", got.EndTime)
	}
}

func TestHandler_PatchOmittedFieldUnchanged(t *testing.T) {
	var got domain.TimeEntryPatch
	entries := &MockTimeEntryRepository{
		PatchFunc: func(ctx context.Context, id string, patch domain.TimeEntryPatch) error {
			got = patch
			return nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	form := url.Values{"end_time": {"9000"}}
	req := httptest.NewRequest(http.MethodPatch, "/entries/e1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	testRouter(h, "u1").ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Patch() status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got.StartTime.Set {
		t.Error("Expected omitted start_time to stay unset")
	}
	if !got.EndTime.Set || got.EndTime.Value == nil || *got.EndTime.Value != 9000 {
		t.Errorf("Expected end set to 9000, got %+v", got.EndTime)
	}
}

func TestHandler_PatchUnknownEntry(t *testing.T) {
	entries := &MockTimeEntryRepository{
		PatchFunc: func(ctx context.Context, id string, patch domain.TimeEntryPatch) error {
			return domain.ErrNotFound
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	form := url.Values{"start_time": {"500"}}
	req := httptest.NewRequest(http.MethodPatch, "/entries/missing", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	testRouter(h, "u1").ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Patch() status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandler_Combine(t *testing.T) {
	var combined []string
	entries := &MockTimeEntryRepository{
		CombineFunc: func(ctx context.Context, ids []string) error {
			combined = ids
			return nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	form := url.Values{"ids": {"e1", "e2", "e3"}}
	w := postForm(testRouter(h, "u1"), "/projects/p1/entries/combine", form)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Combine() status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if len(combined) != 3 {
		t.Errorf("Expected 3 ids, got %v", combined)
	}
}

func TestHandler_CombineSingleSelection(t *testing.T) {
	entries := &MockTimeEntryRepository{
		CombineFunc: func(ctx context.Context, ids []string) error {
			t.Error("Combine should not be called for fewer than two entries")
			return nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	form := url.Values{"ids": {"e1"}}
	w := postForm(testRouter(h, "u1"), "/projects/p1/entries/combine", form)

	if w.Code != http.StatusSeeOther {
		t.Errorf("Combine() status = %d, want %d", w.Code, http.StatusSeeOther)
	}
}

func TestHandler_Delete(t *testing.T) {
	deleted := ""
	entries := &MockTimeEntryRepository{
		DeleteByIDFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	h := NewHandler(entries, ownedProjectRepo(), nil)
	req := httptest.NewRequest(http.MethodDelete, "/entries/e1", nil)
	w := httptest.NewRecorder()
	testRouter(h, "u1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Delete() status = %d, want %d", w.Code, http.StatusOK)
	}
	if deleted != "e1" {
		t.Errorf("Expected e1 deleted, got %q", deleted)
	}
}
