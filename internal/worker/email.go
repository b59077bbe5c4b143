package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"macondo-backend/internal/infra/rabbit"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Broker interface {
	Consume(prefetch int) (<-chan amqp.Delivery, error)
	Publish(ctx context.Context, body []byte, attempt int) error
}

// EmailWorker drains the email queue into a real Dispatcher.
// A failed send is republished with the attempt counter bumped until MaxAttempts, then dropped.
type EmailWorker struct {
	broker      Broker
	sender      shared.Dispatcher
	maxAttempts int
	prefetch    int
	logger      *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewEmailWorker(broker Broker, sender shared.Dispatcher, cfg config.RabbitConfig, logger *slog.Logger) *EmailWorker {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &EmailWorker{
		broker:      broker,
		sender:      sender,
		maxAttempts: maxAttempts,
		prefetch:    cfg.Prefetch,
		logger:      logger,
	}
}

func (w *EmailWorker) Start(ctx context.Context) error {
	msgs, err := w.broker.Consume(w.prefetch)
	if err != nil {
		return err
	}

	ctx, w.cancel = context.WithCancel(context.WithoutCancel(ctx))
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					w.logger.Warn("email queue closed")
					return
				}
				w.Handle(ctx, d.Body, rabbit.Attempt(d.Headers))
				_ = d.Ack(false)
			}
		}
	}()

	w.logger.Info("email worker started", "max_attempts", w.maxAttempts)
	return nil
}

func (w *EmailWorker) Stop(_ context.Context) error {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	return nil
}

// Handle processes one message. It never fails: undecodable and exhausted messages are logged and dropped.
func (w *EmailWorker) Handle(ctx context.Context, body []byte, attempt int) {
	var email shared.Email
	if err := json.Unmarshal(body, &email); err != nil {
		w.logger.Error("dropping undecodable email message", "error", err.Error())
		return
	}

	err := w.sender.Dispatch(ctx, email)
	if err == nil {
		return
	}

	if attempt >= w.maxAttempts {
		w.logger.Error("email dropped after max attempts",
			"to", email.ToAddress,
			"subject", email.Subject,
			"attempts", attempt,
			"error", err.Error())
		return
	}

	w.logger.Warn("email send failed, requeueing",
		"to", email.ToAddress,
		"attempt", attempt,
		"error", err.Error())
	if pubErr := w.broker.Publish(ctx, body, attempt+1); pubErr != nil {
		w.logger.Error("failed to requeue email", "to", email.ToAddress, "error", pubErr.Error())
	}
}
