package note

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appnote "github.com/pulselabs/pulse-api/internal/application/note"
	corenote "github.com/pulselabs/pulse-api/internal/core/note"
	"github.com/pulselabs/pulse-api/internal/testutil"
)

type fakeRepo struct {
	notes map[string]corenote.Note
	err   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{notes: make(map[string]corenote.Note)}
}

func (r *fakeRepo) Create(_ context.Context, n corenote.Note) error {
	if r.err != nil {
		return r.err
	}
	r.notes[n.ID] = n
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*corenote.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	if n, ok := r.notes[id]; ok {
		return &n, nil
	}
	return nil, nil
}

func (r *fakeRepo) List(_ context.Context, limit int) ([]corenote.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]corenote.Note, 0, limit)
	for _, n := range r.notes {
		if len(out) == limit {
			break
		}
		out = append(out, n)
	}
	return out, nil
}

func newRouter(repo corenote.Repository) http.Handler {
	handler := NewHandler(appnote.NewService(repo), testutil.NewNullLogger())
	r := chi.NewRouter()
	r.Get("/api/v1/notes", handler.List)
	r.Post("/api/v1/notes", handler.Create)
	r.Get("/api/v1/notes/{noteID}", handler.Get)
	return r
}

func TestHandler_Create(t *testing.T) {
	repo := newFakeRepo()
	router := newRouter(repo)

	req := testutil.CreateRequest(http.MethodPost, "/api/v1/notes", map[string]string{
		"title": "shopping",
		"body":  "milk",
	}, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var created corenote.Note
	testutil.DecodeJSONResponse(t, w, &created)

	if created.Title != "shopping" {
		t.Errorf("expected title %q, got %q", "shopping", created.Title)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Errorf("expected a UUID id, got %q", created.ID)
	}
	if _, ok := repo.notes[created.ID]; !ok {
		t.Error("expected the note to be persisted")
	}
}

func TestHandler_Create_InvalidBody(t *testing.T) {
	router := newRouter(newFakeRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for an empty body, got %d", w.Code)
	}
}

func TestHandler_Create_MissingTitle(t *testing.T) {
	router := newRouter(newFakeRepo())

	req := testutil.CreateRequest(http.MethodPost, "/api/v1/notes", map[string]string{"body": "x"}, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for a missing title, got %d", w.Code)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	router := newRouter(newFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandler_Get_MalformedID(t *testing.T) {
	router := newRouter(newFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for a malformed id, got %d", w.Code)
	}
}

func TestHandler_Get_Found(t *testing.T) {
	repo := newFakeRepo()
	router := newRouter(repo)

	createReq := testutil.CreateRequest(http.MethodPost, "/api/v1/notes", map[string]string{"title": "t"}, nil)
	createW := httptest.NewRecorder()
	router.ServeHTTP(createW, createReq)

	var created corenote.Note
	testutil.DecodeJSONResponse(t, createW, &created)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes/"+created.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var fetched corenote.Note
	testutil.DecodeJSONResponse(t, w, &fetched)
	if fetched.ID != created.ID {
		t.Errorf("expected note %q, got %q", created.ID, fetched.ID)
	}
}

func TestHandler_List(t *testing.T) {
	repo := newFakeRepo()
	router := newRouter(repo)

	for i := 0; i < 3; i++ {
		req := testutil.CreateRequest(http.MethodPost, "/api/v1/notes", map[string]string{"title": "t"}, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Notes []corenote.Note `json:"notes"`
		Count int             `json:"count"`
	}
	testutil.DecodeJSONResponse(t, w, &resp)

	if resp.Count != 3 || len(resp.Notes) != 3 {
		t.Errorf("expected 3 notes, got count=%d len=%d", resp.Count, len(resp.Notes))
	}
}

func TestHandler_List_BadLimit(t *testing.T) {
	router := newRouter(newFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes?limit=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for a non-integer limit, got %d", w.Code)
	}
}

func TestHandler_List_RepoFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.err = context.DeadlineExceeded
	router := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 when the repository fails, got %d", w.Code)
	}
}
