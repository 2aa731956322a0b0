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

// QuestionHandler handles question HTTP requests.
type QuestionHandler struct {
	service *services.QuestionService
	logger  *zap.Logger
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(service *services.QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{service: service, logger: logger}
}

// CreateQuestionRequest is the request body for creating a question.
type CreateQuestionRequest struct {
	Text          string   `json:"text" validate:"required,min=1"`
	AssignmentID  string   `json:"assignmentId" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectOption int      `json:"correctOption" validate:"gte=0"`
	Marks         float64  `json:"marks,omitempty" validate:"omitempty,gte=0"`
	NegativeMarks float64  `json:"negativeMarks,omitempty" validate:"omitempty,gte=0"`
	Explanation   string   `json:"explanation,omitempty"`
	TagIDs        []string `json:"tagIds,omitempty"`
}

// BulkCreateQuestionsRequest is the request body for bulk question creation.
type BulkCreateQuestionsRequest struct {
	Questions []CreateQuestionRequest `json:"questions" validate:"required,min=1,max=100,dive"`
}

func (req CreateQuestionRequest) toDomain() domain.Question {
	return domain.Question{
		Text:          req.Text,
		AssignmentID:  req.AssignmentID,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		Marks:         req.Marks,
		NegativeMarks: req.NegativeMarks,
		Explanation:   req.Explanation,
		TagIDs:        req.TagIDs,
	}
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	question, err := h.service.Create(r.Context(), req.toDomain())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Question created", question)
}

// BulkCreateQuestions handles POST /questions/bulk
func (h *QuestionHandler) BulkCreateQuestions(w http.ResponseWriter, r *http.Request) {
	var req BulkCreateQuestionsRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	questions := make([]domain.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = q.toDomain()
	}

	result, err := h.service.BulkCreate(r.Context(), questions)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Questions created", result)
}

// GetQuestion handles GET /questions/{questionID}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.service.Get(r.Context(), chi.URLParam(r, "questionID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Question retrieved", question)
}

// ListQuestions handles GET /questions, optionally filtered by ?assignmentId=
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	var (
		questions []domain.Question
		next      string
		err       error
	)
	if assignmentID := r.URL.Query().Get("assignmentId"); assignmentID != "" {
		questions, next, err = h.service.ListByAssignment(r.Context(), assignmentID, page)
	} else {
		questions, next, err = h.service.List(r.Context(), page)
	}
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Questions retrieved", questions, len(questions), next)
}

// UpdateQuestion handles PUT /questions/{questionID}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body,
		"text", "assignmentId", "options", "correctOption", "marks",
		"negativeMarks", "explanation", "tagIds", "status",
	)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	question, err := h.service.Update(r.Context(), chi.URLParam(r, "questionID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Question updated", question)
}

// DeleteQuestion handles DELETE /questions/{questionID}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "questionID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Question archived", nil)
}
