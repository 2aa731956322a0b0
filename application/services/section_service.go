package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// SectionService manages section records.
type SectionService struct {
	crud[domain.Section]
	chapterIDIndex string
}

// NewSectionService creates a section service.
func NewSectionService(repo ports.Repository[domain.Section], events ports.EventBus, logger *zap.Logger, chapterIDIndex string) *SectionService {
	return &SectionService{
		crud:           newCrud(repo, events, logger, "section"),
		chapterIDIndex: chapterIDIndex,
	}
}

// Create stores a new section and returns it.
func (s *SectionService) Create(ctx context.Context, section domain.Section) (domain.Section, error) {
	if section.ContentType != "" && !validContentType(section.ContentType) {
		return domain.Section{}, apperrors.NewValidationError("contentType must be one of: video, text, quiz, pdf")
	}

	section.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, section); err != nil {
		return domain.Section{}, err
	}

	s.publish(ctx, "section.created", map[string]string{"id": section.ID, "chapterId": section.ChapterID})
	return section, nil
}

// ListByChapter returns the sections of a chapter.
func (s *SectionService) ListByChapter(ctx context.Context, chapterID string, p ports.Page) ([]domain.Section, string, error) {
	return s.repo.QueryIndex(ctx, s.chapterIDIndex, "chapterId", chapterID, p)
}

func validContentType(ct string) bool {
	switch ct {
	case domain.ContentTypeVideo, domain.ContentTypeText, domain.ContentTypeQuiz, domain.ContentTypePDF:
		return true
	}
	return false
}
