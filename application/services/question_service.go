package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// MaxBulkQuestions caps a single bulk-create request.
const MaxBulkQuestions = 100

// BulkResult reports the outcome of a bulk create. Writes are independent:
// a failed item does not roll back the ones already stored.
type BulkResult struct {
	CreatedCount int      `json:"createdCount"`
	CreatedIDs   []string `json:"createdIds"`
	FailedIDs    []string `json:"failedIds,omitempty"`
}

// QuestionService manages multiple-choice questions.
type QuestionService struct {
	crud[domain.Question]
	assignmentIDIndex string
}

// NewQuestionService creates a question service.
func NewQuestionService(repo ports.Repository[domain.Question], events ports.EventBus, logger *zap.Logger, assignmentIDIndex string) *QuestionService {
	return &QuestionService{
		crud:              newCrud(repo, events, logger, "question"),
		assignmentIDIndex: assignmentIDIndex,
	}
}

// Create stores a new question and returns it.
func (s *QuestionService) Create(ctx context.Context, question domain.Question) (domain.Question, error) {
	if err := validateQuestion(question); err != nil {
		return domain.Question{}, err
	}

	question.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, question); err != nil {
		return domain.Question{}, err
	}

	s.publish(ctx, "question.created", map[string]string{"id": question.ID, "assignmentId": question.AssignmentID})
	return question, nil
}

// BulkCreate stores up to MaxBulkQuestions questions in one call. Each write
// stands alone; the result names the ids that stuck and the ones that failed.
func (s *QuestionService) BulkCreate(ctx context.Context, questions []domain.Question) (*BulkResult, error) {
	if len(questions) == 0 {
		return nil, apperrors.NewValidationError("questions must not be empty")
	}
	if len(questions) > MaxBulkQuestions {
		return nil, apperrors.NewValidationError(fmt.Sprintf("at most %d questions per request", MaxBulkQuestions))
	}
	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("question %d: %s", i, apperrors.GetAppError(err).Message))
		}
	}

	result := &BulkResult{}
	for i := range questions {
		questions[i].Record = newRecord(uuid.New().String())
		if err := s.repo.Put(ctx, questions[i]); err != nil {
			s.logger.Warn("Bulk question write failed",
				zap.String("questionId", questions[i].ID),
				zap.Error(err),
			)
			result.FailedIDs = append(result.FailedIDs, questions[i].ID)
			continue
		}
		result.CreatedCount++
		result.CreatedIDs = append(result.CreatedIDs, questions[i].ID)
	}

	if result.CreatedCount > 0 {
		s.publish(ctx, "question.bulk_created", map[string]any{
			"createdCount": result.CreatedCount,
			"failedCount":  len(result.FailedIDs),
		})
	}
	return result, nil
}

// Update applies a partial update. The patched question must still satisfy
// the same rules Create enforces, or grading would break on it.
func (s *QuestionService) Update(ctx context.Context, id string, set map[string]any) (domain.Question, error) {
	merged, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	if v, ok := set["options"]; ok {
		merged.Options = patchStrings(v)
	}
	if v, ok := set["correctOption"]; ok {
		merged.CorrectOption = patchInt(v)
	}
	if v, ok := set["negativeMarks"]; ok {
		merged.NegativeMarks = patchFloat(v)
	}
	if err := validateQuestion(merged); err != nil {
		return domain.Question{}, err
	}
	return s.crud.Update(ctx, id, set)
}

// ListByAssignment returns the questions of an assignment.
func (s *QuestionService) ListByAssignment(ctx context.Context, assignmentID string, p ports.Page) ([]domain.Question, string, error) {
	return s.repo.QueryIndex(ctx, s.assignmentIDIndex, "assignmentId", assignmentID, p)
}

func validateQuestion(q domain.Question) error {
	if len(q.Options) < 2 {
		return apperrors.NewValidationError("options must contain at least two entries")
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return apperrors.NewValidationError("correctOption must index into options")
	}
	if q.NegativeMarks < 0 {
		return apperrors.NewValidationError("negativeMarks cannot be negative")
	}
	return nil
}
