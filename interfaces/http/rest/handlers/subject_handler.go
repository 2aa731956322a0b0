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

// SubjectHandler handles subject HTTP requests.
type SubjectHandler struct {
	service *services.SubjectService
	logger  *zap.Logger
}

// NewSubjectHandler creates a new subject handler.
func NewSubjectHandler(service *services.SubjectService, logger *zap.Logger) *SubjectHandler {
	return &SubjectHandler{service: service, logger: logger}
}

// CreateSubjectRequest is the request body for creating a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Code        string `json:"code,omitempty" validate:"omitempty,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=5000"`
	CourseID    string `json:"courseId,omitempty"`
}

// CreateSubject handles POST /subjects
func (h *SubjectHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req CreateSubjectRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	subject, err := h.service.Create(r.Context(), domain.Subject{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		CourseID:    req.CourseID,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Subject created", subject)
}

// GetSubject handles GET /subjects/{subjectID}
func (h *SubjectHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	subject, err := h.service.Get(r.Context(), chi.URLParam(r, "subjectID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Subject retrieved", subject)
}

// ListSubjects handles GET /subjects, optionally filtered by ?courseId=
func (h *SubjectHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		subjects []domain.Subject
		next     string
		err      error
	)
	if courseID := r.URL.Query().Get("courseId"); courseID != "" {
		subjects, next, err = h.service.ListByCourse(r.Context(), courseID, page)
	} else {
		subjects, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Subjects retrieved", subjects, len(subjects), next)
}

// UpdateSubject handles PUT /subjects/{subjectID}
func (h *SubjectHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body, "name", "code", "description", "courseId", "status")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	subject, err := h.service.Update(r.Context(), chi.URLParam(r, "subjectID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Subject updated", subject)
}

// DeleteSubject handles DELETE /subjects/{subjectID}
func (h *SubjectHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "subjectID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Subject archived", nil)
}
