package aifiles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

func TestClient_Upload(t *testing.T) {
	var gotAuth, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/files", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		gotFilename = header.Filename

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":         "file-9",
			"name":       header.Filename,
			"size_bytes": 11,
			"status":     "processing",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", zap.NewNop())
	file, err := c.Upload(context.Background(), "notes.pdf", "application/pdf", strings.NewReader("hello world"))

	require.NoError(t, err)
	assert.Equal(t, "file-9", file.ID)
	assert.Equal(t, "notes.pdf", file.Name)
	assert.Equal(t, int64(11), file.SizeBytes)
	assert.Equal(t, "processing", file.Status)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "notes.pdf", gotFilename)
}

func TestClient_Get_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/files/missing", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "file not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", zap.NewNop())
	_, err := c.Get(context.Background(), "missing")

	assert.True(t, apperrors.IsNotFound(err))
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusUnauthorized, apperrors.IsUnauthorized, "unauthorized"},
		{http.StatusForbidden, apperrors.IsUnauthorized, "forbidden"},
		{http.StatusBadRequest, apperrors.IsValidation, "bad request"},
		{http.StatusRequestEntityTooLarge, apperrors.IsValidation, "too large"},
		{http.StatusTooManyRequests, func(err error) bool {
			return apperrors.IsType(err, apperrors.ErrorTypeRateLimit)
		}, "rate limited"},
		{http.StatusBadGateway, func(err error) bool {
			return apperrors.IsType(err, apperrors.ErrorTypeExternal)
		}, "upstream failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "test-key", zap.NewNop())
			_, err := c.Get(context.Background(), "file-1")

			assert.True(t, tt.check(err), "unexpected error for status %d: %v", tt.status, err)
		})
	}
}

func TestClient_Delete(t *testing.T) {
	var deleted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", zap.NewNop())

	require.NoError(t, c.Delete(context.Background(), "file-9"))
	assert.Equal(t, "/v1/files/file-9", deleted)
}
