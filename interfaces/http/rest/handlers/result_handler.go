package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/services"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/auth"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/utils"
)

// ResultHandler handles result HTTP requests.
type ResultHandler struct {
	service *services.ResultService
	logger  *zap.Logger
}

// NewResultHandler creates a new result handler.
func NewResultHandler(service *services.ResultService, logger *zap.Logger) *ResultHandler {
	return &ResultHandler{service: service, logger: logger}
}

// SubmitResultRequest is the request body for submitting an assignment.
type SubmitResultRequest struct {
	AssignmentID string                     `json:"assignmentId" validate:"required"`
	Answers      []services.SubmittedAnswer `json:"answers" validate:"required,dive"`
}

// SubmitResult handles POST /results
func (h *ResultHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var req SubmitResultRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.service.Submit(r.Context(), user.UserID, req.AssignmentID, req.Answers)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Result recorded", result)
}

// GetResult handles GET /results/{resultID}
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context(), chi.URLParam(r, "resultID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Result retrieved", result)
}

// ListResults handles GET /results, optionally filtered by ?userId= or
// ?assignmentId=
func (h *ResultHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		results []domain.Result
		next    string
		err     error
	)
	switch {
	case r.URL.Query().Get("userId") != "":
		results, next, err = h.service.ListByUser(r.Context(), r.URL.Query().Get("userId"), page)
	case r.URL.Query().Get("assignmentId") != "":
		results, next, err = h.service.ListByAssignment(r.Context(), r.URL.Query().Get("assignmentId"), page)
	default:
		results, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Results retrieved", results, len(results), next)
}
