package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction failed after max retries")
)

// serialization_failure and deadlock_detected; both are safe to replay from the start.
var retryableCodes = map[string]bool{
	"40001": true,
	"40P01": true,
}

type PostgresUoW struct {
	pool    *pgxpool.Pool
	clock   clock.Clock
	logger  *slog.Logger
	retries int
	backoff time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:    pool,
		clock:   clk,
		logger:  logger,
		retries: 3,
		backoff: 100 * time.Millisecond,
	}
}

// Within runs fn in a READ COMMITTED transaction. The redemption gate and intent
// fulfillment rely on conditional updates rather than isolation level, so this is enough.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, opts, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == u.retries {
			break
		}

		wait := u.wait(attempt)
		u.logger.Warn("retrying unit of work",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	u.logger.Error("unit of work gave up", "attempts", u.retries+1, "error", err.Error())
	return errs.Mark(err, errRetriesExhausted)
}

// Direct runs each repository call on the pool, outside any transaction.
func (u *PostgresUoW) Direct() shared.Tx {
	return newStoreTx(store.NewPostgres(u.pool), u.clock, u.logger)
}

// attempt owns exactly one pgx transaction so nothing is deferred across retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, newStoreTx(store.NewPostgres(pgxTx), u.clock, u.logger))
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

// wait doubles per attempt and adds up to 20% jitter.
func (u *PostgresUoW) wait(attempt int) time.Duration {
	d := u.backoff << attempt
	if j := int64(d / 5); j > 0 {
		d += time.Duration(rand.Int64N(j))
	}
	return d
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && retryableCodes[pgErr.Code]
}
