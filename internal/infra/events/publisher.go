package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/hibiken/asynq"
)

const TaskStatusChanged = "status:changed"

// StatusChangedPayload is the task body consumed by the messaging system's status view.
type StatusChangedPayload struct {
	Event shared.StatusEvent `json:"event"`
}

// Enqueuer is the subset of *asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type AsynqPublisher struct {
	client Enqueuer
	queue  string
}

func NewAsynqPublisher(client Enqueuer, queue string) *AsynqPublisher {
	return &AsynqPublisher{client: client, queue: queue}
}

// Publish enqueues one task per event. The event id doubles as the task id so a retried
// publish of the same batch is deduplicated by asynq.
func (p *AsynqPublisher) Publish(ctx context.Context, events []shared.StatusEvent) error {
	for _, ev := range events {
		body, err := json.Marshal(StatusChangedPayload{Event: ev})
		if err != nil {
			return errs.Wrap(err, "failed to encode status event")
		}
		task := asynq.NewTask(TaskStatusChanged, body)
		_, err = p.client.EnqueueContext(ctx, task,
			asynq.Queue(p.queue),
			asynq.TaskID(ev.ID.String()),
			asynq.MaxRetry(5),
		)
		if err != nil && !errs.Is(err, asynq.ErrTaskIDConflict) {
			return errs.Wrapf(err, "failed to enqueue %s %s event", ev.Entity, ev.EntityID)
		}
	}
	return nil
}

// NoopPublisher is used when event publishing is disabled; the status_events table stays the source of truth.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, events []shared.StatusEvent) error {
	if len(events) > 0 {
		slog.Debug("status events not published", slog.Int("count", len(events)))
	}
	return nil
}
