package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/application/services"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// courseRepo is a minimal in-memory ports.Repository for handler tests.
type courseRepo struct {
	puts    []domain.Course
	getItem domain.Course
	getErr  error
	updated domain.Course
	deleted []string
	items   []domain.Course
	next    string
}

func (f *courseRepo) Put(ctx context.Context, item domain.Course) error {
	f.puts = append(f.puts, item)
	return nil
}

func (f *courseRepo) Get(ctx context.Context, id string) (domain.Course, error) {
	if f.getErr != nil {
		return domain.Course{}, f.getErr
	}
	return f.getItem, nil
}

func (f *courseRepo) Update(ctx context.Context, id string, set map[string]any) (domain.Course, error) {
	return f.updated, nil
}

func (f *courseRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *courseRepo) List(ctx context.Context, p ports.Page) ([]domain.Course, string, error) {
	return f.items, f.next, nil
}

func (f *courseRepo) QueryIndex(ctx context.Context, index, attr, value string, p ports.Page) ([]domain.Course, string, error) {
	return f.items, "", nil
}

type nopBus struct{}

func (nopBus) Publish(ctx context.Context, event ports.Event) error        { return nil }
func (nopBus) PublishBatch(ctx context.Context, events []ports.Event) error { return nil }

func newCourseRouter(repo *courseRepo) http.Handler {
	logger := zap.NewNop()
	h := NewCourseHandler(services.NewCourseService(repo, nopBus{}, logger), logger)

	r := chi.NewRouter()
	r.Route("/courses", func(r chi.Router) {
		r.Post("/", h.CreateCourse)
		r.Get("/", h.ListCourses)
		r.Get("/{courseID}", h.GetCourse)
		r.Put("/{courseID}", h.UpdateCourse)
		r.Delete("/{courseID}", h.DeleteCourse)
	})
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) common.APIResponse {
	t.Helper()
	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCourseHandler_Create(t *testing.T) {
	repo := &courseRepo{}
	router := newCourseRouter(repo)

	body := `{"title":"Physics 101","price":499.0,"level":"beginner"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	require.Len(t, repo.puts, 1)
	assert.Equal(t, "Physics 101", repo.puts[0].Title)
	assert.Equal(t, domain.StatusActive, repo.puts[0].Status)
}

func TestCourseHandler_Create_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"price":10}`},
		{"negative price", `{"title":"X","price":-1}`},
		{"bad level", `{"title":"X","price":0,"level":"expert"}`},
		{"unknown field", `{"title":"X","price":0,"bogus":true}`},
		{"malformed json", `{"title":}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &courseRepo{}
			w := httptest.NewRecorder()
			newCourseRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, decodeEnvelope(t, w).Success)
			assert.Empty(t, repo.puts)
		})
	}
}

func TestCourseHandler_Get(t *testing.T) {
	stored := domain.Course{Title: "Physics 101"}
	stored.ID = "c1"
	stored.Status = domain.StatusActive
	router := newCourseRouter(&courseRepo{getItem: stored})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/c1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Physics 101", data["title"])
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	router := newCourseRouter(&courseRepo{getErr: apperrors.NewNotFoundError("course")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
}

func TestCourseHandler_List(t *testing.T) {
	a := domain.Course{Title: "A"}
	a.ID = "c1"
	b := domain.Course{Title: "B"}
	b.ID = "c2"
	router := newCourseRouter(&courseRepo{items: []domain.Course{a, b}, next: "token-1"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses?limit=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
	assert.Equal(t, "token-1", resp.NextToken)
}

func TestCourseHandler_Update_UnknownField(t *testing.T) {
	router := newCourseRouter(&courseRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/courses/c1", strings.NewReader(`{"ownerId":"u9"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Contains(t, resp.Message, "ownerId")
}

func TestCourseHandler_Delete(t *testing.T) {
	stored := domain.Course{Title: "Physics 101"}
	stored.ID = "c1"
	repo := &courseRepo{getItem: stored, updated: stored}
	router := newCourseRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/courses/c1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
}
