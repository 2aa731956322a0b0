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

// CourseHandler handles course HTTP requests.
type CourseHandler struct {
	service *services.CourseService
	logger  *zap.Logger
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(service *services.CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{service: service, logger: logger}
}

// CreateCourseRequest is the request body for creating a course.
type CreateCourseRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=200"`
	Description   string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	SubjectIDs    []string `json:"subjectIds,omitempty"`
	Price         float64  `json:"price" validate:"gte=0"`
	DurationWeeks int      `json:"durationWeeks,omitempty" validate:"omitempty,gte=1"`
	Level         string   `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	ThumbnailKey  string   `json:"thumbnailKey,omitempty"`
	TagIDs        []string `json:"tagIds,omitempty"`
}

// CreateCourse handles POST /courses
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	course, err := h.service.Create(r.Context(), domain.Course{
		Title:         req.Title,
		Description:   req.Description,
		SubjectIDs:    req.SubjectIDs,
		Price:         req.Price,
		DurationWeeks: req.DurationWeeks,
		Level:         req.Level,
		ThumbnailKey:  req.ThumbnailKey,
		TagIDs:        req.TagIDs,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, "Course created", course)
}

// GetCourse handles GET /courses/{courseID}
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.Get(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Course retrieved", course)
}

// ListCourses handles GET /courses
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, next, err := h.service.List(r.Context(), pageFrom(r))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Courses retrieved", courses, len(courses), next)
}

// UpdateCourse handles PUT /courses/{courseID}
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body,
		"title", "description", "subjectIds", "price", "durationWeeks",
		"level", "thumbnailKey", "tagIds", "status",
	)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	course, err := h.service.Update(r.Context(), chi.URLParam(r, "courseID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Course updated", course)
}

// DeleteCourse handles DELETE /courses/{courseID}
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "courseID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Course archived", nil)
}
