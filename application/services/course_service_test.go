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

func newCourseFixture() (*CourseService, *fakeRepo[domain.Course], *fakeBus) {
	repo := &fakeRepo[domain.Course]{}
	bus := &fakeBus{}
	return NewCourseService(repo, bus, zap.NewNop()), repo, bus
}

func TestCourseService_Create(t *testing.T) {
	svc, repo, bus := newCourseFixture()

	course, err := svc.Create(context.Background(), domain.Course{
		Title: "JEE Physics",
		Price: 4999,
		Level: domain.LevelIntermediate,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, domain.StatusActive, course.Status)
	assert.NotEmpty(t, course.CreatedAt)
	assert.Equal(t, course.CreatedAt, course.UpdatedAt)
	require.Len(t, repo.puts, 1)
	assert.Equal(t, []string{"course.created"}, bus.types())
}

func TestCourseService_Create_InvalidLevel(t *testing.T) {
	svc, repo, _ := newCourseFixture()

	_, err := svc.Create(context.Background(), domain.Course{Title: "X", Level: "expert"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.puts)
}

func TestCourseService_Create_RepoFailure(t *testing.T) {
	svc, repo, bus := newCourseFixture()
	repo.putErr = errFakeDown

	_, err := svc.Create(context.Background(), domain.Course{Title: "X"})

	require.Error(t, err)
	assert.Empty(t, bus.events)
}

func TestCrud_Update_RejectsBadStatus(t *testing.T) {
	svc, repo, _ := newCourseFixture()

	_, err := svc.Update(context.Background(), "id-1", map[string]any{"status": "gone"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.updates)
}

func TestCrud_Update_StampsUpdatedAt(t *testing.T) {
	svc, repo, bus := newCourseFixture()

	_, err := svc.Update(context.Background(), "id-1", map[string]any{"title": "New"})

	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
	assert.Contains(t, repo.updates[0], "updatedAt")
	assert.Equal(t, "New", repo.updates[0]["title"])
	assert.Equal(t, []string{"course.updated"}, bus.types())
}

func TestCrud_Archive(t *testing.T) {
	svc, repo, bus := newCourseFixture()

	require.NoError(t, svc.Archive(context.Background(), "id-1"))

	require.Len(t, repo.updates, 1)
	assert.Equal(t, string(domain.StatusArchived), repo.updates[0]["status"])
	assert.Equal(t, []string{"course.archived"}, bus.types())
}

func TestCrud_PublishFailureIsSwallowed(t *testing.T) {
	svc, _, bus := newCourseFixture()
	bus.err = apperrors.NewExternalError("eventbridge", nil)

	_, err := svc.Create(context.Background(), domain.Course{Title: "X"})

	assert.NoError(t, err)
}
