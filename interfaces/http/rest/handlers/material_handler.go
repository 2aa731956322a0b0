package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/services"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/utils"
)

// maxAIFileBytes caps files proxied to the AI file API.
const maxAIFileBytes = 50 << 20

// MaterialHandler handles material HTTP requests, including presigned upload
// and download links and the AI file proxy.
type MaterialHandler struct {
	service *services.MaterialService
	logger  *zap.Logger
}

// NewMaterialHandler creates a new material handler.
func NewMaterialHandler(service *services.MaterialService, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{service: service, logger: logger}
}

// CreateMaterialRequest is the request body for creating a material.
type CreateMaterialRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	FileType string `json:"fileType,omitempty" validate:"omitempty,max=100"`
	CourseID string `json:"courseId,omitempty"`
}

// UploadURLRequest is the request body for requesting an upload link.
type UploadURLRequest struct {
	FileName    string `json:"fileName" validate:"required,min=1,max=255"`
	ContentType string `json:"contentType,omitempty" validate:"omitempty,max=100"`
}

// CreateMaterial handles POST /materials
func (h *MaterialHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req CreateMaterialRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	material, err := h.service.Create(r.Context(), domain.Material{
		Name:     req.Name,
		FileType: req.FileType,
		CourseID: req.CourseID,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Material created", material)
}

// GetMaterial handles GET /materials/{materialID}
func (h *MaterialHandler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	material, err := h.service.Get(r.Context(), chi.URLParam(r, "materialID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Material retrieved", material)
}

// ListMaterials handles GET /materials, optionally filtered by ?courseId=
func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		materials []domain.Material
		next      string
		err       error
	)
	if courseID := r.URL.Query().Get("courseId"); courseID != "" {
		materials, next, err = h.service.ListByCourse(r.Context(), courseID, page)
	} else {
		materials, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Materials retrieved", materials, len(materials), next)
}

// UpdateMaterial handles PUT /materials/{materialID}
func (h *MaterialHandler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body, "name", "fileType", "courseId", "status")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	material, err := h.service.Update(r.Context(), chi.URLParam(r, "materialID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Material updated", material)
}

// DeleteMaterial handles DELETE /materials/{materialID}
func (h *MaterialHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "materialID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Material archived", nil)
}

// UploadURL handles POST /materials/{materialID}/upload-url
func (h *MaterialHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	var req UploadURLRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	target, err := h.service.UploadURL(r.Context(), chi.URLParam(r, "materialID"), req.FileName, req.ContentType)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Upload URL issued", target)
}

// DownloadURL handles GET /materials/{materialID}/download-url
func (h *MaterialHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.service.DownloadURL(r.Context(), chi.URLParam(r, "materialID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Download URL issued", map[string]string{"url": url})
}

// AttachAIFile handles POST /materials/{materialID}/ai-file. The file comes
// in as multipart form data and is streamed through to the AI file API.
func (h *MaterialHandler) AttachAIFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAIFileBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Missing file in multipart form")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	aiFile, err := h.service.AttachAIFile(r.Context(), chi.URLParam(r, "materialID"), header.Filename, contentType, file)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "AI file attached", aiFile)
}

// GetAIFile handles GET /materials/{materialID}/ai-file
func (h *MaterialHandler) GetAIFile(w http.ResponseWriter, r *http.Request) {
	aiFile, err := h.service.AIFileStatus(r.Context(), chi.URLParam(r, "materialID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "AI file retrieved", aiFile)
}

// DetachAIFile handles DELETE /materials/{materialID}/ai-file
func (h *MaterialHandler) DetachAIFile(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DetachAIFile(r.Context(), chi.URLParam(r, "materialID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "AI file detached", nil)
}
