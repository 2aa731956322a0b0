package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/utils"
)

// SubmittedAnswer is one response in a submission request.
type SubmittedAnswer struct {
	QuestionID     string `json:"questionId" validate:"required"`
	SelectedOption int    `json:"selectedOption"`
}

// ResultService grades submissions and reads back stored results. Results
// are append-only: there is no update or archive path.
type ResultService struct {
	results     ports.Repository[domain.Result]
	questions   *QuestionService
	events      ports.EventBus
	logger      *zap.Logger
	userIDIndex string
	assignIndex string
}

// NewResultService creates a result service.
func NewResultService(results ports.Repository[domain.Result], questions *QuestionService, events ports.EventBus, logger *zap.Logger, userIDIndex, assignmentIDIndex string) *ResultService {
	return &ResultService{
		results:     results,
		questions:   questions,
		events:      events,
		logger:      logger,
		userIDIndex: userIDIndex,
		assignIndex: assignmentIDIndex,
	}
}

// Submit grades a set of answers against the assignment's questions and
// stores the result. Unanswered questions count as skipped; a wrong answer
// subtracts the question's negative marks.
func (s *ResultService) Submit(ctx context.Context, userID, assignmentID string, answers []SubmittedAnswer) (domain.Result, error) {
	if userID == "" {
		return domain.Result{}, apperrors.NewUnauthorizedError("missing user identity")
	}

	questions, err := s.allQuestions(ctx, assignmentID)
	if err != nil {
		return domain.Result{}, err
	}
	if len(questions) == 0 {
		return domain.Result{}, apperrors.NewValidationError("assignment has no questions")
	}

	selected := make(map[string]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOption
	}

	result := domain.Result{
		UserID:       userID,
		AssignmentID: assignmentID,
		SubmittedAt:  utils.NowRFC3339(),
	}
	for _, q := range questions {
		marks := q.Marks
		if marks == 0 {
			marks = 1
		}
		result.TotalMarks += marks

		option, answered := selected[q.ID]
		answer := domain.Answer{QuestionID: q.ID, SelectedOption: -1}
		switch {
		case !answered || option < 0:
			result.SkippedCount++
		case option == q.CorrectOption:
			answer.SelectedOption = option
			answer.Correct = true
			result.CorrectCount++
			result.Score += marks
		default:
			answer.SelectedOption = option
			result.WrongCount++
			result.Score -= q.NegativeMarks
		}
		result.Answers = append(result.Answers, answer)
	}

	result.Record = newRecord(uuid.New().String())
	if err := s.results.Put(ctx, result); err != nil {
		return domain.Result{}, err
	}

	s.publishRecorded(ctx, result)
	return result, nil
}

// Get returns a stored result by id.
func (s *ResultService) Get(ctx context.Context, id string) (domain.Result, error) {
	return s.results.Get(ctx, id)
}

// List returns one page of results.
func (s *ResultService) List(ctx context.Context, p ports.Page) ([]domain.Result, string, error) {
	return s.results.List(ctx, p)
}

// ListByUser returns the results of one user.
func (s *ResultService) ListByUser(ctx context.Context, userID string, p ports.Page) ([]domain.Result, string, error) {
	return s.results.QueryIndex(ctx, s.userIDIndex, "userId", userID, p)
}

// ListByAssignment returns the results submitted for one assignment.
func (s *ResultService) ListByAssignment(ctx context.Context, assignmentID string, p ports.Page) ([]domain.Result, string, error) {
	return s.results.QueryIndex(ctx, s.assignIndex, "assignmentId", assignmentID, p)
}

// allQuestions pages through the assignment's questions until exhausted.
func (s *ResultService) allQuestions(ctx context.Context, assignmentID string) ([]domain.Question, error) {
	var all []domain.Question
	page := ports.Page{Limit: 100}
	for {
		items, next, err := s.questions.ListByAssignment(ctx, assignmentID, page)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if next == "" {
			return all, nil
		}
		page.NextToken = next
	}
}

func (s *ResultService) publishRecorded(ctx context.Context, result domain.Result) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, ports.Event{
		Type: "result.recorded",
		Detail: map[string]any{
			"id":           result.ID,
			"userId":       result.UserID,
			"assignmentId": result.AssignmentID,
			"score":        result.Score,
		},
		Time: time.Now(),
	})
	if err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("eventType", "result.recorded"),
			zap.Error(err),
		)
	}
}
