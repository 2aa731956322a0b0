package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// AdaptiveContentService manages level-targeted supplementary content.
type AdaptiveContentService struct {
	crud[domain.AdaptiveContent]
	courseIDIndex string
}

// NewAdaptiveContentService creates an adaptive content service.
func NewAdaptiveContentService(repo ports.Repository[domain.AdaptiveContent], events ports.EventBus, logger *zap.Logger, courseIDIndex string) *AdaptiveContentService {
	return &AdaptiveContentService{
		crud:          newCrud(repo, events, logger, "adaptive_content"),
		courseIDIndex: courseIDIndex,
	}
}

// Create stores a new adaptive content record.
func (s *AdaptiveContentService) Create(ctx context.Context, content domain.AdaptiveContent) (domain.AdaptiveContent, error) {
	if !validLevel(content.Level) {
		return domain.AdaptiveContent{}, apperrors.NewValidationError("level must be one of: beginner, intermediate, advanced")
	}

	content.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, content); err != nil {
		return domain.AdaptiveContent{}, err
	}

	s.publish(ctx, "adaptive_content.created", map[string]string{"id": content.ID, "courseId": content.CourseID})
	return content, nil
}

// ListByCourse returns the adaptive content of a course. When level is set
// the page is filtered to that level after the index query.
func (s *AdaptiveContentService) ListByCourse(ctx context.Context, courseID, level string, p ports.Page) ([]domain.AdaptiveContent, string, error) {
	if level != "" && !validLevel(level) {
		return nil, "", apperrors.NewValidationError("level must be one of: beginner, intermediate, advanced")
	}

	items, next, err := s.repo.QueryIndex(ctx, s.courseIDIndex, "courseId", courseID, p)
	if err != nil {
		return nil, "", err
	}
	if level == "" {
		return items, next, nil
	}

	filtered := items[:0]
	for _, item := range items {
		if item.Level == level {
			filtered = append(filtered, item)
		}
	}
	return filtered, next, nil
}
