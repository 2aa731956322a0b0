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

// AssignmentHandler handles assignment HTTP requests.
type AssignmentHandler struct {
	service *services.AssignmentService
	logger  *zap.Logger
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(service *services.AssignmentService, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{service: service, logger: logger}
}

// CreateAssignmentRequest is the request body for creating an assignment.
type CreateAssignmentRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=200"`
	CourseID        string   `json:"courseId" validate:"required"`
	SectionID       string   `json:"sectionId,omitempty"`
	TotalMarks      float64  `json:"totalMarks,omitempty" validate:"omitempty,gte=0"`
	PassMarks       float64  `json:"passMarks,omitempty" validate:"omitempty,gte=0"`
	DurationMinutes int      `json:"durationMinutes,omitempty" validate:"omitempty,gte=1"`
	QuestionIDs     []string `json:"questionIds,omitempty"`
	DueAt           string   `json:"dueAt,omitempty"`
}

// CreateAssignment handles POST /assignments
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.DueAt != "" {
		if _, err := utils.ParseRFC3339(req.DueAt); err != nil {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "dueAt must be RFC3339")
			return
		}
	}

	assignment, err := h.service.Create(r.Context(), domain.Assignment{
		Title:           req.Title,
		CourseID:        req.CourseID,
		SectionID:       req.SectionID,
		TotalMarks:      req.TotalMarks,
		PassMarks:       req.PassMarks,
		DurationMinutes: req.DurationMinutes,
		QuestionIDs:     req.QuestionIDs,
		DueAt:           req.DueAt,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Assignment created", assignment)
}

// GetAssignment handles GET /assignments/{assignmentID}
func (h *AssignmentHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.service.Get(r.Context(), chi.URLParam(r, "assignmentID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Assignment retrieved", assignment)
}

// ListAssignments handles GET /assignments, optionally filtered by ?courseId=
func (h *AssignmentHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		assignments []domain.Assignment
		next        string
		err         error
	)
	if courseID := r.URL.Query().Get("courseId"); courseID != "" {
		assignments, next, err = h.service.ListByCourse(r.Context(), courseID, page)
	} else {
		assignments, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Assignments retrieved", assignments, len(assignments), next)
}

// UpdateAssignment handles PUT /assignments/{assignmentID}
func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body,
		"title", "courseId", "sectionId", "totalMarks", "passMarks",
		"durationMinutes", "questionIds", "dueAt", "status",
	)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	assignment, err := h.service.Update(r.Context(), chi.URLParam(r, "assignmentID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Assignment updated", assignment)
}

// DeleteAssignment handles DELETE /assignments/{assignmentID}
func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "assignmentID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Assignment archived", nil)
}
