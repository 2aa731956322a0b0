package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

type fakeStorage struct {
	uploadKey   string
	contentType string
	downloadKey string
}

func (f *fakeStorage) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	f.uploadKey, f.contentType = key, contentType
	return "https://bucket.example.com/put/" + key, nil
}

func (f *fakeStorage) PresignDownload(ctx context.Context, key string) (string, error) {
	f.downloadKey = key
	return "https://bucket.example.com/get/" + key, nil
}

type fakeAIFiles struct {
	uploaded  string
	deletedID string
	file      *ports.AIFile
	err       error
}

func (f *fakeAIFiles) Upload(ctx context.Context, filename, contentType string, body io.Reader) (*ports.AIFile, error) {
	f.uploaded = filename
	if f.err != nil {
		return nil, f.err
	}
	return f.file, nil
}

func (f *fakeAIFiles) Get(ctx context.Context, fileID string) (*ports.AIFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.file, nil
}

func (f *fakeAIFiles) Delete(ctx context.Context, fileID string) error {
	f.deletedID = fileID
	return f.err
}

func newMaterialFixture(stored domain.Material) (*MaterialService, *fakeRepo[domain.Material], *fakeStorage, *fakeAIFiles) {
	repo := &fakeRepo[domain.Material]{getItem: stored}
	store := &fakeStorage{}
	ai := &fakeAIFiles{file: &ports.AIFile{ID: "file-1", Name: "notes.pdf", Status: "processed"}}
	svc := NewMaterialService(repo, store, ai, &fakeBus{}, zap.NewNop(), "courseId-index")
	return svc, repo, store, ai
}

func storedMaterial() domain.Material {
	m := domain.Material{Name: "Physics notes"}
	m.ID = "mat-1"
	m.Status = domain.StatusActive
	return m
}

func TestMaterialService_UploadURL(t *testing.T) {
	svc, repo, store, _ := newMaterialFixture(storedMaterial())

	target, err := svc.UploadURL(context.Background(), "mat-1", "notes.pdf", "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "materials/mat-1/notes.pdf", target.FileKey)
	assert.Contains(t, target.URL, target.FileKey)
	assert.Equal(t, "application/pdf", store.contentType)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, target.FileKey, repo.updates[0]["fileKey"])
	assert.Equal(t, "application/pdf", repo.updates[0]["fileType"])
}

func TestMaterialService_UploadURL_StripsPath(t *testing.T) {
	svc, _, store, _ := newMaterialFixture(storedMaterial())

	target, err := svc.UploadURL(context.Background(), "mat-1", "../../etc/passwd", "")

	require.NoError(t, err)
	assert.Equal(t, "materials/mat-1/passwd", target.FileKey)
	assert.Equal(t, target.FileKey, store.uploadKey)
}

func TestMaterialService_UploadURL_MissingName(t *testing.T) {
	svc, _, _, _ := newMaterialFixture(storedMaterial())

	_, err := svc.UploadURL(context.Background(), "mat-1", "   ", "")

	assert.True(t, apperrors.IsValidation(err))
}

func TestMaterialService_DownloadURL(t *testing.T) {
	stored := storedMaterial()
	stored.FileKey = "materials/mat-1/notes.pdf"
	svc, _, store, _ := newMaterialFixture(stored)

	url, err := svc.DownloadURL(context.Background(), "mat-1")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, stored.FileKey))
	assert.Equal(t, stored.FileKey, store.downloadKey)
}

func TestMaterialService_DownloadURL_NoFile(t *testing.T) {
	svc, _, _, _ := newMaterialFixture(storedMaterial())

	_, err := svc.DownloadURL(context.Background(), "mat-1")

	assert.True(t, apperrors.IsValidation(err))
}

func TestMaterialService_AttachAIFile(t *testing.T) {
	svc, repo, _, ai := newMaterialFixture(storedMaterial())

	file, err := svc.AttachAIFile(context.Background(), "mat-1", "notes.pdf", "application/pdf", strings.NewReader("content"))

	require.NoError(t, err)
	assert.Equal(t, "file-1", file.ID)
	assert.Equal(t, "notes.pdf", ai.uploaded)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, "file-1", repo.updates[0]["aiFileId"])
}

func TestMaterialService_AttachAIFile_AlreadyAttached(t *testing.T) {
	stored := storedMaterial()
	stored.AIFileID = "file-0"
	svc, _, _, ai := newMaterialFixture(stored)

	_, err := svc.AttachAIFile(context.Background(), "mat-1", "notes.pdf", "", strings.NewReader("x"))

	assert.True(t, apperrors.IsConflict(err))
	assert.Empty(t, ai.uploaded)
}

func TestMaterialService_DetachAIFile(t *testing.T) {
	stored := storedMaterial()
	stored.AIFileID = "file-1"
	svc, repo, _, ai := newMaterialFixture(stored)

	require.NoError(t, svc.DetachAIFile(context.Background(), "mat-1"))

	assert.Equal(t, "file-1", ai.deletedID)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, "", repo.updates[0]["aiFileId"])
}

func TestMaterialService_DetachAIFile_NotAttached(t *testing.T) {
	svc, _, _, _ := newMaterialFixture(storedMaterial())

	err := svc.DetachAIFile(context.Background(), "mat-1")

	assert.True(t, apperrors.IsNotFound(err))
}
