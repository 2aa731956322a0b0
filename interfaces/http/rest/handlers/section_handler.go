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

// SectionHandler handles section HTTP requests.
type SectionHandler struct {
	service *services.SectionService
	logger  *zap.Logger
}

// NewSectionHandler creates a new section handler.
func NewSectionHandler(service *services.SectionService, logger *zap.Logger) *SectionHandler {
	return &SectionHandler{service: service, logger: logger}
}

// CreateSectionRequest is the request body for creating a section.
type CreateSectionRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	ChapterID   string `json:"chapterId" validate:"required"`
	Position    int    `json:"position,omitempty" validate:"omitempty,gte=0"`
	ContentType string `json:"contentType,omitempty" validate:"omitempty,oneof=video text quiz pdf"`
	MaterialID  string `json:"materialId,omitempty"`
}

// CreateSection handles POST /sections
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req CreateSectionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	section, err := h.service.Create(r.Context(), domain.Section{
		Title:       req.Title,
		ChapterID:   req.ChapterID,
		Position:    req.Position,
		ContentType: req.ContentType,
		MaterialID:  req.MaterialID,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Section created", section)
}

// GetSection handles GET /sections/{sectionID}
func (h *SectionHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.service.Get(r.Context(), chi.URLParam(r, "sectionID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Section retrieved", section)
}

// ListSections handles GET /sections, optionally filtered by ?chapterId=
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		sections []domain.Section
		next     string
		err      error
	)
	if chapterID := r.URL.Query().Get("chapterId"); chapterID != "" {
		sections, next, err = h.service.ListByChapter(r.Context(), chapterID, page)
	} else {
		sections, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Sections retrieved", sections, len(sections), next)
}

// UpdateSection handles PUT /sections/{sectionID}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body, "title", "chapterId", "position", "contentType", "materialId", "status")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	section, err := h.service.Update(r.Context(), chi.URLParam(r, "sectionID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Section updated", section)
}

// DeleteSection handles DELETE /sections/{sectionID}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "sectionID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Section archived", nil)
}
