package notify

import (
	"context"
	"encoding/json"

	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"
)

// Publisher is the slice of the broker client the queue dispatcher needs.
type Publisher interface {
	Publish(ctx context.Context, body []byte, attempt int) error
}

// QueueDispatcher hands messages to the email worker instead of calling the provider inline.
type QueueDispatcher struct {
	publisher Publisher
}

func NewQueueDispatcher(publisher Publisher) *QueueDispatcher {
	return &QueueDispatcher{publisher: publisher}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, email shared.Email) error {
	body, err := json.Marshal(email)
	if err != nil {
		return errs.Wrap(err, "failed to encode queued email")
	}
	if err := d.publisher.Publish(ctx, body, 1); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to enqueue email"), errs.ErrUpstream)
	}
	return nil
}
