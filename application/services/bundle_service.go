package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// BundleService manages course bundles.
type BundleService struct {
	crud[domain.Bundle]
}

// NewBundleService creates a bundle service.
func NewBundleService(repo ports.Repository[domain.Bundle], events ports.EventBus, logger *zap.Logger) *BundleService {
	return &BundleService{crud: newCrud(repo, events, logger, "bundle")}
}

// Create stores a new bundle and returns it.
func (s *BundleService) Create(ctx context.Context, bundle domain.Bundle) (domain.Bundle, error) {
	if len(bundle.CourseIDs) == 0 {
		return domain.Bundle{}, apperrors.NewValidationError("courseIds must contain at least one course")
	}
	if bundle.DiscountPercent < 0 || bundle.DiscountPercent > 100 {
		return domain.Bundle{}, apperrors.NewValidationError("discountPercent must be between 0 and 100")
	}

	bundle.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, bundle); err != nil {
		return domain.Bundle{}, err
	}

	s.publish(ctx, "bundle.created", map[string]string{"id": bundle.ID, "name": bundle.Name})
	return bundle, nil
}

// Update applies a partial update under the same rules as Create.
func (s *BundleService) Update(ctx context.Context, id string, set map[string]any) (domain.Bundle, error) {
	if v, ok := set["courseIds"]; ok && len(patchStrings(v)) == 0 {
		return domain.Bundle{}, apperrors.NewValidationError("courseIds must contain at least one course")
	}
	if v, ok := set["discountPercent"]; ok {
		if d := patchFloat(v); d < 0 || d > 100 {
			return domain.Bundle{}, apperrors.NewValidationError("discountPercent must be between 0 and 100")
		}
	}
	return s.crud.Update(ctx, id, set)
}
