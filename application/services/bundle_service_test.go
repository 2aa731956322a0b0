package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

func TestBundleService_Create_Validation(t *testing.T) {
	svc := NewBundleService(&fakeRepo[domain.Bundle]{}, &fakeBus{}, zap.NewNop())
	ctx := context.Background()

	t.Run("empty courseIds", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.Bundle{Name: "JEE Pack"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("discount out of range", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.Bundle{Name: "JEE Pack", CourseIDs: []string{"c1"}, DiscountPercent: 120})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestBundleService_Update_Validation(t *testing.T) {
	t.Run("clearing courseIds", func(t *testing.T) {
		repo := &fakeRepo[domain.Bundle]{}
		svc := NewBundleService(repo, &fakeBus{}, zap.NewNop())

		_, err := svc.Update(context.Background(), "b1", map[string]any{"courseIds": []any{}})

		assert.True(t, apperrors.IsValidation(err))
		assert.Empty(t, repo.updates)
	})

	t.Run("discount out of range", func(t *testing.T) {
		repo := &fakeRepo[domain.Bundle]{}
		svc := NewBundleService(repo, &fakeBus{}, zap.NewNop())

		_, err := svc.Update(context.Background(), "b1", map[string]any{"discountPercent": float64(101)})

		assert.True(t, apperrors.IsValidation(err))
		assert.Empty(t, repo.updates)
	})

	t.Run("valid patch goes through", func(t *testing.T) {
		repo := &fakeRepo[domain.Bundle]{}
		svc := NewBundleService(repo, &fakeBus{}, zap.NewNop())

		_, err := svc.Update(context.Background(), "b1", map[string]any{"discountPercent": float64(25)})

		require.NoError(t, err)
		require.Len(t, repo.updates, 1)
	})
}
