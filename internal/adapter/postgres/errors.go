package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// PostgreSQL error codes the repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgLockNotAvailable    = "55P03"
)

// MapError translates driver errors into domain errors so services never see
// pgx types. Context cancellation and deadline errors are wrapped but keep
// their identity.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	wrap := func(cause error) error {
		return fmt.Errorf("%s %s: %w", entity, id, cause)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return wrap(domain.ErrAlreadyExists)
		case pgForeignKeyViolation:
			// A broken reference means the referenced row is gone.
			return wrap(domain.ErrNotFound)
		case pgCheckViolation:
			return wrap(domain.ErrValidation)
		case pgLockNotAvailable:
			return wrap(domain.ErrConflict)
		}
	}

	return wrap(err)
}
