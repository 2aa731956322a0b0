package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
)

// ChapterService manages chapter records.
type ChapterService struct {
	crud[domain.Chapter]
	subjectIDIndex string
}

// NewChapterService creates a chapter service.
func NewChapterService(repo ports.Repository[domain.Chapter], events ports.EventBus, logger *zap.Logger, subjectIDIndex string) *ChapterService {
	return &ChapterService{
		crud:           newCrud(repo, events, logger, "chapter"),
		subjectIDIndex: subjectIDIndex,
	}
}

// Create stores a new chapter and returns it.
func (s *ChapterService) Create(ctx context.Context, chapter domain.Chapter) (domain.Chapter, error) {
	chapter.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, chapter); err != nil {
		return domain.Chapter{}, err
	}

	s.publish(ctx, "chapter.created", map[string]string{"id": chapter.ID, "subjectId": chapter.SubjectID})
	return chapter, nil
}

// ListBySubject returns the chapters of a subject.
func (s *ChapterService) ListBySubject(ctx context.Context, subjectID string, p ports.Page) ([]domain.Chapter, string, error) {
	return s.repo.QueryIndex(ctx, s.subjectIDIndex, "subjectId", subjectID, p)
}
