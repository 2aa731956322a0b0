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

// ChapterHandler handles chapter HTTP requests.
type ChapterHandler struct {
	service *services.ChapterService
	logger  *zap.Logger
}

// NewChapterHandler creates a new chapter handler.
func NewChapterHandler(service *services.ChapterService, logger *zap.Logger) *ChapterHandler {
	return &ChapterHandler{service: service, logger: logger}
}

// CreateChapterRequest is the request body for creating a chapter.
type CreateChapterRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	SubjectID   string `json:"subjectId" validate:"required"`
	Position    int    `json:"position,omitempty" validate:"omitempty,gte=0"`
	Description string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// CreateChapter handles POST /chapters
func (h *ChapterHandler) CreateChapter(w http.ResponseWriter, r *http.Request) {
	var req CreateChapterRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	chapter, err := h.service.Create(r.Context(), domain.Chapter{
		Title:       req.Title,
		SubjectID:   req.SubjectID,
		Position:    req.Position,
		Description: req.Description,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Chapter created", chapter)
}

// GetChapter handles GET /chapters/{chapterID}
func (h *ChapterHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.service.Get(r.Context(), chi.URLParam(r, "chapterID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Chapter retrieved", chapter)
}

// ListChapters handles GET /chapters, optionally filtered by ?subjectId=
func (h *ChapterHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		chapters []domain.Chapter
		next     string
		err      error
	)
	if subjectID := r.URL.Query().Get("subjectId"); subjectID != "" {
		chapters, next, err = h.service.ListBySubject(r.Context(), subjectID, page)
	} else {
		chapters, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Chapters retrieved", chapters, len(chapters), next)
}

// UpdateChapter handles PUT /chapters/{chapterID}
func (h *ChapterHandler) UpdateChapter(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body, "title", "subjectId", "position", "description", "status")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	chapter, err := h.service.Update(r.Context(), chi.URLParam(r, "chapterID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Chapter updated", chapter)
}

// DeleteChapter handles DELETE /chapters/{chapterID}
func (h *ChapterHandler) DeleteChapter(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "chapterID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Chapter archived", nil)
}
