package repository

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"scheme-console/internal/pkg/errs"
	"scheme-console/internal/pkg/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeUniqueViolation      = "23505"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

var (
	// writes of a whole scheme aggregate
	writeTx = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	// reads of schemes with their entries and overrides
	snapshotTx = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txRunner struct {
	pool       *pgxpool.Pool
	maxRetries int
	base       time.Duration
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func newTxRunner(pool *pgxpool.Pool, m *metrics.Metrics, logger *slog.Logger) *txRunner {
	return &txRunner{pool: pool, maxRetries: 3, base: 100 * time.Millisecond, metrics: m, logger: logger}
}

// Within runs fn in a transaction and retries the whole attempt on
// serialization failures and deadlocks. fn must be safe to run again.
func (r *txRunner) Within(ctx context.Context, op string, opts pgx.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	var err error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			wait := calculateBackoff(attempt-1, r.base)
			r.metrics.RecordDBRetry(op)
			r.logger.Warn("retrying transaction",
				"operation", op,
				"attempt", attempt+1,
				"wait_ms", wait.Milliseconds(),
				"error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err = r.attempt(ctx, opts, fn)
		if !shouldRetry(err, attempt, r.maxRetries) {
			break
		}
	}

	if isRetryableError(err) {
		r.logger.Error("transaction failed after max retries", "operation", op, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// attempt runs one transaction; the rollback is a no-op after a commit.
func (r *txRunner) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isRetryableError(err error) bool {
	switch pgCode(err) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgErrCodeUniqueViolation
}
