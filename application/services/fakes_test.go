package services

import (
	"context"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// fakeRepo is an in-memory ports.Repository used by the service tests. Error
// fields force failures; call records let tests assert on inputs.
type fakeRepo[T any] struct {
	puts    []T
	putErr  error
	putErrs map[int]error // per-call failures, keyed by call index

	getItem T
	getErr  error

	updates    []map[string]any
	updatedIDs []string
	updateErr  error
	updateItem T

	deletedIDs []string
	deleteErr  error

	listItems []T
	listNext  string
	listErr   error

	queryIndex string
	queryAttr  string
	queryValue string
	queryItems []T
	queryNext  string
	queryErr   error
}

func (f *fakeRepo[T]) Put(ctx context.Context, item T) error {
	call := len(f.puts)
	f.puts = append(f.puts, item)
	if err, ok := f.putErrs[call]; ok {
		return err
	}
	return f.putErr
}

func (f *fakeRepo[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if f.getErr != nil {
		return zero, f.getErr
	}
	return f.getItem, nil
}

func (f *fakeRepo[T]) Update(ctx context.Context, id string, set map[string]any) (T, error) {
	var zero T
	f.updatedIDs = append(f.updatedIDs, id)
	f.updates = append(f.updates, set)
	if f.updateErr != nil {
		return zero, f.updateErr
	}
	return f.updateItem, nil
}

func (f *fakeRepo[T]) Delete(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeRepo[T]) List(ctx context.Context, p ports.Page) ([]T, string, error) {
	if f.listErr != nil {
		return nil, "", f.listErr
	}
	return f.listItems, f.listNext, nil
}

func (f *fakeRepo[T]) QueryIndex(ctx context.Context, index, attr, value string, p ports.Page) ([]T, string, error) {
	f.queryIndex, f.queryAttr, f.queryValue = index, attr, value
	if f.queryErr != nil {
		return nil, "", f.queryErr
	}
	return f.queryItems, f.queryNext, nil
}

var errFakeDown = apperrors.NewDatabaseError("put", nil)

func pageOf(limit int32) ports.Page {
	return ports.Page{Limit: limit}
}

// fakeBus records published events.
type fakeBus struct {
	events []ports.Event
	err    error
}

func (f *fakeBus) Publish(ctx context.Context, event ports.Event) error {
	f.events = append(f.events, event)
	return f.err
}

func (f *fakeBus) PublishBatch(ctx context.Context, events []ports.Event) error {
	f.events = append(f.events, events...)
	return f.err
}

func (f *fakeBus) types() []string {
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Type
	}
	return out
}
