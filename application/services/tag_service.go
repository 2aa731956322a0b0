package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// TagService manages tags.
type TagService struct {
	crud[domain.Tag]
}

// NewTagService creates a tag service.
func NewTagService(repo ports.Repository[domain.Tag], events ports.EventBus, logger *zap.Logger) *TagService {
	return &TagService{crud: newCrud(repo, events, logger, "tag")}
}

// Create stores a new tag. The slug is always derived from the name, never
// taken from the request.
func (s *TagService) Create(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	tag.Slug = domain.Slugify(tag.Name)
	if tag.Slug == "" {
		return domain.Tag{}, apperrors.NewValidationError("name must contain at least one word")
	}

	tag.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, tag); err != nil {
		return domain.Tag{}, err
	}

	s.publish(ctx, "tag.created", map[string]string{"id": tag.ID, "slug": tag.Slug})
	return tag, nil
}
