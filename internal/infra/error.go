package infra

import (
	"context"
	"errors"
	"log/slog"

	"scheme-console/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindCanceled     RepositoryErrorKind = "CANCELED"
)

// RepositoryError is returned by every scheme store, Postgres or in-memory,
// so callers can branch on Kind without knowing the backend.
type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs and wraps a store failure. A DB failure caused by the
// caller's context is reported as KindCanceled and logged at warn.
func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	if logger == nil {
		logger = slog.Default()
	}
	if kind == KindDBFailure && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		kind = KindCanceled
	}

	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}

	switch kind {
	case KindNotFound, KindDuplicateKey:
		logger.Debug("Repository error: "+msg, attrs...)
	case KindCanceled:
		logger.Warn("Repository error: "+msg, attrs...)
	default:
		logger.Error("Repository error: "+msg, attrs...)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ToSchemeErr marks a store error with the sentinel the handlers map to a
// status: not found, duplicate code, or a generic repository failure.
func ToSchemeErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case IsKind(err, KindNotFound):
		return errs.Mark(err, errs.ErrSchemeNotFound)
	case IsKind(err, KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateSchemeCode)
	default:
		return errs.Mark(errs.Wrap(err, msg), errs.ErrRepositoryFailure)
	}
}
