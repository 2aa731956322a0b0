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

// AdaptiveContentHandler handles adaptive content HTTP requests.
type AdaptiveContentHandler struct {
	service *services.AdaptiveContentService
	logger  *zap.Logger
}

// NewAdaptiveContentHandler creates a new adaptive content handler.
func NewAdaptiveContentHandler(service *services.AdaptiveContentService, logger *zap.Logger) *AdaptiveContentHandler {
	return &AdaptiveContentHandler{service: service, logger: logger}
}

// CreateAdaptiveContentRequest is the request body for creating adaptive
// content.
type CreateAdaptiveContentRequest struct {
	CourseID        string   `json:"courseId" validate:"required"`
	Level           string   `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Title           string   `json:"title" validate:"required,min=1,max=200"`
	Body            string   `json:"body,omitempty"`
	MediaKeys       []string `json:"mediaKeys,omitempty"`
	PrerequisiteIDs []string `json:"prerequisiteIds,omitempty"`
}

// CreateAdaptiveContent handles POST /adaptive-content
func (h *AdaptiveContentHandler) CreateAdaptiveContent(w http.ResponseWriter, r *http.Request) {
	var req CreateAdaptiveContentRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	content, err := h.service.Create(r.Context(), domain.AdaptiveContent{
		CourseID:        req.CourseID,
		Level:           req.Level,
		Title:           req.Title,
		Body:            req.Body,
		MediaKeys:       req.MediaKeys,
		PrerequisiteIDs: req.PrerequisiteIDs,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Adaptive content created", content)
}

// GetAdaptiveContent handles GET /adaptive-content/{contentID}
func (h *AdaptiveContentHandler) GetAdaptiveContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.Get(r.Context(), chi.URLParam(r, "contentID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Adaptive content retrieved", content)
}

// ListAdaptiveContent handles GET /adaptive-content, optionally filtered by
// ?courseId= and ?level=
func (h *AdaptiveContentHandler) ListAdaptiveContent(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		contents []domain.AdaptiveContent
		next     string
		err      error
	)
	if courseID := r.URL.Query().Get("courseId"); courseID != "" {
		contents, next, err = h.service.ListByCourse(r.Context(), courseID, r.URL.Query().Get("level"), page)
	} else {
		contents, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Adaptive content retrieved", contents, len(contents), next)
}

// UpdateAdaptiveContent handles PUT /adaptive-content/{contentID}
func (h *AdaptiveContentHandler) UpdateAdaptiveContent(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body, "courseId", "level", "title", "body", "mediaKeys", "prerequisiteIds", "status")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	content, err := h.service.Update(r.Context(), chi.URLParam(r, "contentID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Adaptive content updated", content)
}

// DeleteAdaptiveContent handles DELETE /adaptive-content/{contentID}
func (h *AdaptiveContentHandler) DeleteAdaptiveContent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "contentID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Adaptive content archived", nil)
}
