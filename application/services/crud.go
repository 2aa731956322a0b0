package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/utils"
)

// crud carries the mechanics shared by every resource service: point reads,
// partial updates, soft deletes and lifecycle event publishing. Typed
// services embed it and add their own create and query operations.
type crud[T any] struct {
	repo   ports.Repository[T]
	events ports.EventBus
	logger *zap.Logger
	entity string
}

func newCrud[T any](repo ports.Repository[T], events ports.EventBus, logger *zap.Logger, entity string) crud[T] {
	return crud[T]{
		repo:   repo,
		events: events,
		logger: logger,
		entity: entity,
	}
}

// Get returns the item by id.
func (s *crud[T]) Get(ctx context.Context, id string) (T, error) {
	return s.repo.Get(ctx, id)
}

// List returns one page of items.
func (s *crud[T]) List(ctx context.Context, p ports.Page) ([]T, string, error) {
	return s.repo.List(ctx, p)
}

// Update applies a partial update. A status change must stay inside the enum.
func (s *crud[T]) Update(ctx context.Context, id string, set map[string]any) (T, error) {
	var zero T
	if status, ok := set["status"].(string); ok {
		if !domain.Status(status).IsValid() {
			return zero, apperrors.NewValidationError("status must be one of: active, inactive, archived")
		}
	}
	set["updatedAt"] = utils.NowRFC3339()

	item, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return zero, err
	}

	s.publish(ctx, s.entity+".updated", map[string]string{"id": id})
	return item, nil
}

// Archive soft-deletes the item by moving it to StatusArchived. The record
// stays readable by id.
func (s *crud[T]) Archive(ctx context.Context, id string) error {
	_, err := s.repo.Update(ctx, id, map[string]any{
		"status":    string(domain.StatusArchived),
		"updatedAt": utils.NowRFC3339(),
	})
	if err != nil {
		return err
	}

	s.publish(ctx, s.entity+".archived", map[string]string{"id": id})
	return nil
}

// publish emits a lifecycle event. Failures are logged and swallowed: the
// write has already committed.
func (s *crud[T]) publish(ctx context.Context, eventType string, detail any) {
	if s.events == nil {
		return
	}
	event := ports.Event{
		Type:   eventType,
		Detail: detail,
		Time:   time.Now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("eventType", eventType),
			zap.Error(err),
		)
	}
}

// patchFloat reads a numeric patch value. JSON bodies decode every number as
// float64; native ints show up when services call each other directly.
func patchFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func patchInt(v any) int {
	return int(patchFloat(v))
}

// patchStrings reads a string-slice patch value.
func patchStrings(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// newRecord stamps the shared fields of a freshly created item.
func newRecord(id string) domain.Record {
	now := utils.NowRFC3339()
	return domain.Record{
		ID:        id,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
