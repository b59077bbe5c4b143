package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"macondo-backend/internal/infra/notify"
	"macondo-backend/internal/infra/rabbit"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/usecase/shared"
	"macondo-backend/internal/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewRedisClient,
		NewRabbitClient,
		NewDispatcher,
	),
)

// NewRedisClient returns nil when Redis is not configured or unreachable; rate limiting is then skipped.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis not configured; rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable; rate limiting disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

// NewRabbitClient returns nil when no broker URL is set; mail is then sent inline.
func NewRabbitClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*rabbit.Client, error) {
	if cfg.Rabbit.URL == "" {
		return nil, nil
	}

	client, err := rabbit.NewClient(cfg.Rabbit, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// NewDispatcher chooses how mail leaves the process:
// without a ZeptoMail token it is only logged, with a broker it is queued for the worker, otherwise sent inline.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config, broker *rabbit.Client, logger *slog.Logger) shared.Dispatcher {
	if cfg.Mail.Token == "" {
		logger.Warn("ZEPTOMAIL_TOKEN not set; emails will only be logged")
		return notify.NewLogDispatcher(logger)
	}

	sender := notify.NewZeptoMail(cfg.Mail, &http.Client{Timeout: cfg.Mail.Timeout}, logger)
	if broker == nil {
		return sender
	}

	w := worker.NewEmailWorker(broker, sender, cfg.Rabbit, logger)
	lc.Append(fx.Hook{
		OnStart: w.Start,
		OnStop:  w.Stop,
	})
	return notify.NewQueueDispatcher(broker)
}
