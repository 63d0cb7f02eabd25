// Package term implements the Term repository using PostgreSQL.
// Terms are append-only vocabulary rows; deletion is a soft-delete that
// preserves history.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glosshub/glossary-backend/internal/adapter/postgres"
	"github.com/glosshub/glossary-backend/internal/domain"
)

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const termColumns = `id, text, sort_key, official, created_at, deleted_at`

const getByIDSQL = `
SELECT ` + termColumns + `
FROM terms
WHERE id = $1`

const getBySortKeySQL = `
SELECT ` + termColumns + `
FROM terms
WHERE sort_key = $1 AND deleted_at IS NULL`

const getByIDsSQL = `
SELECT ` + termColumns + `
FROM terms
WHERE id = ANY($1::uuid[])`

const searchSQL = `
SELECT ` + termColumns + `
FROM terms
WHERE sort_key LIKE $1 || '%' AND deleted_at IS NULL
ORDER BY sort_key
LIMIT $2`

const createSQL = `
INSERT INTO terms (text, sort_key, official)
VALUES ($1, $2, $3)
RETURNING ` + termColumns

const setOfficialSQL = `
UPDATE terms SET official = $2 WHERE id = $1`

const softDeleteSQL = `
UPDATE terms SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

// GetByID returns a term by primary key, including soft-deleted ones.
// Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTerm(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "term", id)
	}

	return t, nil
}

// GetBySortKey returns the live term matching the given sort key.
// Sort keys fold case and diacritics, so this is the dedupe lookup.
// Returns domain.ErrNotFound when no live term matches.
func (r *Repo) GetBySortKey(ctx context.Context, sortKey string) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTerm(q.QueryRow(ctx, getBySortKeySQL, sortKey))
	if err != nil {
		return nil, postgres.MapError(err, "term", uuid.Nil)
	}

	return t, nil
}

// GetByIDs returns terms for multiple IDs (batch for DataLoader).
// Missing IDs are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Term, error) {
	if len(ids) == 0 {
		return []*domain.Term{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get terms by ids: %w", err)
	}
	defer rows.Close()

	return scanTerms(rows)
}

// Search returns live terms whose sort key starts with the given prefix,
// ordered alphabetically. The prefix must already be sort-key folded.
func (r *Repo) Search(ctx context.Context, prefix string, limit int) ([]*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, searchSQL, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("search terms: %w", err)
	}
	defer rows.Close()

	return scanTerms(rows)
}

// Create inserts a new term and returns the persisted row.
// Returns domain.ErrAlreadyExists when a live term with the same sort key exists.
func (r *Repo) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTerm(q.QueryRow(ctx, createSQL, t.Text, t.SortKey, t.Official))
	if err != nil {
		return nil, postgres.MapError(err, "term", uuid.Nil)
	}

	return created, nil
}

// SetOfficial updates the official flag.
// Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) SetOfficial(ctx context.Context, id uuid.UUID, official bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setOfficialSQL, id, official)
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SoftDelete marks a term as deleted without removing the row.
// Returns domain.ErrNotFound if the term does not exist or is already deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanTerm(row pgx.Row) (*domain.Term, error) {
	var (
		t         domain.Term
		deletedAt *time.Time
	)

	if err := row.Scan(&t.ID, &t.Text, &t.SortKey, &t.Official, &t.CreatedAt, &deletedAt); err != nil {
		return nil, err
	}

	t.DeletedAt = deletedAt
	return &t, nil
}

func scanTerms(rows pgx.Rows) ([]*domain.Term, error) {
	var result []*domain.Term
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Term{}
	}

	return result, nil
}
