package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// AssignmentService manages assignment records.
type AssignmentService struct {
	crud[domain.Assignment]
	courseIDIndex string
}

// NewAssignmentService creates an assignment service.
func NewAssignmentService(repo ports.Repository[domain.Assignment], events ports.EventBus, logger *zap.Logger, courseIDIndex string) *AssignmentService {
	return &AssignmentService{
		crud:          newCrud(repo, events, logger, "assignment"),
		courseIDIndex: courseIDIndex,
	}
}

// Create stores a new assignment and returns it.
func (s *AssignmentService) Create(ctx context.Context, assignment domain.Assignment) (domain.Assignment, error) {
	if assignment.PassMarks > assignment.TotalMarks {
		return domain.Assignment{}, apperrors.NewValidationError("passMarks cannot exceed totalMarks")
	}

	assignment.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, assignment); err != nil {
		return domain.Assignment{}, err
	}

	s.publish(ctx, "assignment.created", map[string]string{"id": assignment.ID, "courseId": assignment.CourseID})
	return assignment, nil
}

// Update applies a partial update, keeping passMarks within totalMarks even
// when only one of the two is patched.
func (s *AssignmentService) Update(ctx context.Context, id string, set map[string]any) (domain.Assignment, error) {
	merged, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Assignment{}, err
	}
	if v, ok := set["totalMarks"]; ok {
		merged.TotalMarks = patchFloat(v)
	}
	if v, ok := set["passMarks"]; ok {
		merged.PassMarks = patchFloat(v)
	}
	if merged.PassMarks > merged.TotalMarks {
		return domain.Assignment{}, apperrors.NewValidationError("passMarks cannot exceed totalMarks")
	}
	return s.crud.Update(ctx, id, set)
}

// ListByCourse returns the assignments of a course.
func (s *AssignmentService) ListByCourse(ctx context.Context, courseID string, p ports.Page) ([]domain.Assignment, string, error) {
	return s.repo.QueryIndex(ctx, s.courseIDIndex, "courseId", courseID, p)
}
