package ports

import (
	"context"
	"time"
)

// Event is a lifecycle notification published after a successful write, e.g.
// "course.created" or "result.recorded". Detail must be JSON-serializable.
type Event struct {
	Type   string
	Detail any
	Time   time.Time
}

// EventBus publishes lifecycle events. Publishing is best-effort: services
// log failures and carry on, the write has already committed.
type EventBus interface {
	Publish(ctx context.Context, event Event) error
	PublishBatch(ctx context.Context, events []Event) error
}
