package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
)

// SubjectService manages subject records.
type SubjectService struct {
	crud[domain.Subject]
	courseIDIndex string
}

// NewSubjectService creates a subject service.
func NewSubjectService(repo ports.Repository[domain.Subject], events ports.EventBus, logger *zap.Logger, courseIDIndex string) *SubjectService {
	return &SubjectService{
		crud:          newCrud(repo, events, logger, "subject"),
		courseIDIndex: courseIDIndex,
	}
}

// Create stores a new subject and returns it.
func (s *SubjectService) Create(ctx context.Context, subject domain.Subject) (domain.Subject, error) {
	subject.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, subject); err != nil {
		return domain.Subject{}, err
	}

	s.publish(ctx, "subject.created", map[string]string{"id": subject.ID, "name": subject.Name})
	return subject, nil
}

// ListByCourse returns the subjects referencing a course.
func (s *SubjectService) ListByCourse(ctx context.Context, courseID string, p ports.Page) ([]domain.Subject, string, error) {
	return s.repo.QueryIndex(ctx, s.courseIDIndex, "courseId", courseID, p)
}
