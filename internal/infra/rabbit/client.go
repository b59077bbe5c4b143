package rabbit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AttemptHeader counts deliveries of one message across republishes.
const AttemptHeader = "x-attempt"

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewClient(cfg config.RabbitConfig, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open RabbitMQ channel")
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare queue")
	}

	logger.Info("RabbitMQ initialized", "queue", cfg.Queue)
	return &Client{conn: conn, channel: ch, queue: cfg.Queue, logger: logger}, nil
}

func (c *Client) Close() error {
	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.logger.Info("RabbitMQ connection closed")
	return firstErr
}

func (c *Client) Publish(ctx context.Context, body []byte, attempt int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.PublishWithContext(ctx,
		"",      // default exchange
		c.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Headers:      amqp.Table{AttemptHeader: int32(attempt)},
			Body:         body,
		},
	)
	if err != nil {
		c.logger.Error("failed to publish message", "queue", c.queue, "error", err.Error())
		return errs.Wrap(err, "failed to publish message")
	}
	return nil
}

// Consume opens a delivery stream with the given prefetch.
func (c *Client) Consume(prefetch int) (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prefetch > 0 {
		if err := c.channel.Qos(prefetch, 0, false); err != nil {
			c.logger.Warn("set QoS failed", "error", err.Error())
		}
	}
	msgs, err := c.channel.Consume(
		c.queue,
		"",
		false, // autoAck
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to start consuming messages")
	}
	return msgs, nil
}

// Attempt reads AttemptHeader, defaulting to 1.
func Attempt(headers amqp.Table) int {
	switch v := headers[AttemptHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 1
}
