package eventbridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
)

type fakeEventBridge struct {
	calls [][]types.PutEventsRequestEntry
	out   *eventbridge.PutEventsOutput
	err   error
}

func (f *fakeEventBridge) PutEvents(ctx context.Context, in *eventbridge.PutEventsInput, _ ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	f.calls = append(f.calls, in.Entries)
	if f.err != nil {
		return nil, f.err
	}
	if f.out != nil {
		return f.out, nil
	}
	return &eventbridge.PutEventsOutput{}, nil
}

func TestPublisher_Publish(t *testing.T) {
	api := &fakeEventBridge{}
	p := NewPublisher(api, "lms-bus", zap.NewNop())

	err := p.Publish(context.Background(), ports.Event{
		Type:   "course.created",
		Detail: map[string]string{"id": "c1"},
	})

	require.NoError(t, err)
	require.Len(t, api.calls, 1)
	require.Len(t, api.calls[0], 1)
	entry := api.calls[0][0]
	assert.Equal(t, "lms-bus", aws.ToString(entry.EventBusName))
	assert.Equal(t, Source, aws.ToString(entry.Source))
	assert.Equal(t, "course.created", aws.ToString(entry.DetailType))
	assert.JSONEq(t, `{"id":"c1"}`, aws.ToString(entry.Detail))
}

func TestPublisher_PublishBatch_Chunks(t *testing.T) {
	api := &fakeEventBridge{}
	p := NewPublisher(api, "lms-bus", zap.NewNop())

	events := make([]ports.Event, 23)
	for i := range events {
		events[i] = ports.Event{Type: fmt.Sprintf("event.%d", i), Detail: map[string]int{"n": i}}
	}

	require.NoError(t, p.PublishBatch(context.Background(), events))

	// PutEvents accepts at most 10 entries per call.
	require.Len(t, api.calls, 3)
	assert.Len(t, api.calls[0], 10)
	assert.Len(t, api.calls[1], 10)
	assert.Len(t, api.calls[2], 3)
}

func TestPublisher_PublishBatch_Empty(t *testing.T) {
	api := &fakeEventBridge{}
	p := NewPublisher(api, "lms-bus", zap.NewNop())

	require.NoError(t, p.PublishBatch(context.Background(), nil))
	assert.Empty(t, api.calls)
}

func TestPublisher_FailedEntries(t *testing.T) {
	api := &fakeEventBridge{out: &eventbridge.PutEventsOutput{
		FailedEntryCount: 1,
		Entries: []types.PutEventsResultEntry{
			{ErrorCode: aws.String("ThrottlingException"), ErrorMessage: aws.String("slow down")},
		},
	}}
	p := NewPublisher(api, "lms-bus", zap.NewNop())

	err := p.Publish(context.Background(), ports.Event{Type: "course.created", Detail: nil})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 event entries failed")
}

func TestPublisher_UnmarshalableDetailSkipped(t *testing.T) {
	api := &fakeEventBridge{}
	p := NewPublisher(api, "lms-bus", zap.NewNop())

	err := p.Publish(context.Background(), ports.Event{
		Type:   "bad.event",
		Detail: make(chan int),
	})

	// The entry is dropped, nothing reaches the bus.
	require.NoError(t, err)
	assert.Empty(t, api.calls)
}
