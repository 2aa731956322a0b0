package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/utils"
)

// UploadTarget is a presigned PUT link plus the object key it writes to.
type UploadTarget struct {
	URL     string `json:"url"`
	FileKey string `json:"fileKey"`
}

// MaterialService manages material records and their backing files. File
// bytes never pass through the backend: uploads and downloads go straight
// to object storage through presigned URLs.
type MaterialService struct {
	crud[domain.Material]
	storage       ports.FileStorage
	aiFiles       ports.AIFileClient
	courseIDIndex string
}

// NewMaterialService creates a material service.
func NewMaterialService(repo ports.Repository[domain.Material], storage ports.FileStorage, aiFiles ports.AIFileClient, events ports.EventBus, logger *zap.Logger, courseIDIndex string) *MaterialService {
	return &MaterialService{
		crud:          newCrud(repo, events, logger, "material"),
		storage:       storage,
		aiFiles:       aiFiles,
		courseIDIndex: courseIDIndex,
	}
}

// Create stores a new material record. The file itself is uploaded
// afterwards through UploadURL.
func (s *MaterialService) Create(ctx context.Context, material domain.Material) (domain.Material, error) {
	material.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, material); err != nil {
		return domain.Material{}, err
	}

	s.publish(ctx, "material.created", map[string]string{"id": material.ID, "name": material.Name})
	return material, nil
}

// ListByCourse returns the materials attached to a course.
func (s *MaterialService) ListByCourse(ctx context.Context, courseID string, p ports.Page) ([]domain.Material, string, error) {
	return s.repo.QueryIndex(ctx, s.courseIDIndex, "courseId", courseID, p)
}

// UploadURL presigns a PUT for the material's file and records the resulting
// object key and content type on the material.
func (s *MaterialService) UploadURL(ctx context.Context, id, fileName, contentType string) (*UploadTarget, error) {
	fileName = sanitizeFileName(fileName)
	if fileName == "" {
		return nil, apperrors.NewValidationError("fileName is required")
	}

	// Confirm the material exists before handing out a write URL.
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("materials/%s/%s", id, fileName)
	url, err := s.storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, err
	}

	set := map[string]any{
		"fileKey":   key,
		"updatedAt": utils.NowRFC3339(),
	}
	if contentType != "" {
		set["fileType"] = contentType
	}
	if _, err := s.repo.Update(ctx, id, set); err != nil {
		return nil, err
	}

	return &UploadTarget{URL: url, FileKey: key}, nil
}

// DownloadURL presigns a GET for the material's stored file.
func (s *MaterialService) DownloadURL(ctx context.Context, id string) (string, error) {
	material, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if material.FileKey == "" {
		return "", apperrors.NewValidationError("material has no uploaded file")
	}
	return s.storage.PresignDownload(ctx, material.FileKey)
}

// AttachAIFile pushes the given content to the AI file API and records the
// remote file id on the material.
func (s *MaterialService) AttachAIFile(ctx context.Context, id, fileName, contentType string, body io.Reader) (*ports.AIFile, error) {
	material, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if material.AIFileID != "" {
		return nil, apperrors.NewConflictError("material already has an AI file attached")
	}

	file, err := s.aiFiles.Upload(ctx, fileName, contentType, body)
	if err != nil {
		return nil, err
	}

	set := map[string]any{
		"aiFileId":  file.ID,
		"updatedAt": utils.NowRFC3339(),
	}
	if _, err := s.repo.Update(ctx, id, set); err != nil {
		// The remote file is orphaned; log so it can be cleaned up.
		s.logger.Error("AI file uploaded but material update failed",
			zap.String("materialId", id),
			zap.String("aiFileId", file.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.publish(ctx, "material.ai_file_attached", map[string]string{"id": id, "aiFileId": file.ID})
	return file, nil
}

// AIFileStatus reads the remote file record for the material.
func (s *MaterialService) AIFileStatus(ctx context.Context, id string) (*ports.AIFile, error) {
	material, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if material.AIFileID == "" {
		return nil, apperrors.NewNotFoundError("AI file")
	}
	return s.aiFiles.Get(ctx, material.AIFileID)
}

// DetachAIFile deletes the remote file and clears the reference.
func (s *MaterialService) DetachAIFile(ctx context.Context, id string) error {
	material, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if material.AIFileID == "" {
		return apperrors.NewNotFoundError("AI file")
	}

	if err := s.aiFiles.Delete(ctx, material.AIFileID); err != nil {
		return err
	}

	set := map[string]any{
		"aiFileId":  "",
		"updatedAt": utils.NowRFC3339(),
	}
	if _, err := s.repo.Update(ctx, id, set); err != nil {
		return err
	}

	s.publish(ctx, "material.ai_file_detached", map[string]string{"id": id})
	return nil
}

// sanitizeFileName keeps only the base name so a caller cannot steer the
// object key outside the material's prefix.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = path.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
