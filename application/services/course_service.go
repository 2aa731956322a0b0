package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// CourseService manages course records.
type CourseService struct {
	crud[domain.Course]
}

// NewCourseService creates a course service.
func NewCourseService(repo ports.Repository[domain.Course], events ports.EventBus, logger *zap.Logger) *CourseService {
	return &CourseService{crud: newCrud(repo, events, logger, "course")}
}

// Create stores a new course and returns it.
func (s *CourseService) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	if course.Level != "" && !validLevel(course.Level) {
		return domain.Course{}, apperrors.NewValidationError("level must be one of: beginner, intermediate, advanced")
	}

	course.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, course); err != nil {
		return domain.Course{}, err
	}

	s.publish(ctx, "course.created", map[string]string{
		"id":    course.ID,
		"title": course.Title,
	})
	return course, nil
}

func validLevel(level string) bool {
	switch level {
	case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
		return true
	}
	return false
}
