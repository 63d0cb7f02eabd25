// Package entry implements the Entry repository using PostgreSQL.
// An entry is the unique (term, perspective) pair drafts hang off. The
// publication invariant (at most one published draft per entry) is enforced
// here with row locks plus a partial unique index as a backstop.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glosshub/glossary-backend/internal/adapter/postgres"
	"github.com/glosshub/glossary-backend/internal/domain"
)

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, term_id, perspective_id, published_draft_id, official, created_at`

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE id = $1`

const getByIDsSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE id = ANY($1::uuid[])`

const getByPairSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE term_id = $1 AND perspective_id = $2`

const listByTermSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE term_id = $1
ORDER BY created_at`

const listByPerspectiveSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE perspective_id = $1
ORDER BY created_at
LIMIT $2 OFFSET $3`

const createSQL = `
INSERT INTO entries (term_id, perspective_id, official)
VALUES ($1, $2, $3)
RETURNING ` + entryColumns

const lockForPublishSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE id = $1
FOR UPDATE`

const setPublishedDraftSQL = `
UPDATE entries SET published_draft_id = $2 WHERE id = $1`

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// GetByIDs returns entries for multiple IDs (batch for DataLoader).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Entry, error) {
	if len(ids) == 0 {
		return []*domain.Entry{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get entries by ids: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetByPair returns the entry for a (term, perspective) pair.
// Returns domain.ErrNotFound if no entry exists for the pair.
func (r *Repo) GetByPair(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByPairSQL, termID, perspectiveID))
	if err != nil {
		return nil, postgres.MapError(err, "entry", uuid.Nil)
	}

	return e, nil
}

// ListByTerm returns all entries for a term, oldest first.
func (r *Repo) ListByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByTermSQL, termID)
	if err != nil {
		return nil, fmt.Errorf("list entries by term: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListByPerspective returns entries for a perspective, oldest first, paginated.
func (r *Repo) ListByPerspective(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByPerspectiveSQL, perspectiveID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entries by perspective: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Create inserts a new entry for a (term, perspective) pair.
// Returns domain.ErrAlreadyExists when the pair already has an entry.
func (r *Repo) Create(ctx context.Context, termID, perspectiveID uuid.UUID, official bool) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, createSQL, termID, perspectiveID, official))
	if err != nil {
		return nil, postgres.MapError(err, "entry", uuid.Nil)
	}

	return e, nil
}

// LockForPublish loads the entry with a row lock (SELECT ... FOR UPDATE).
// Must be called inside a transaction; it serializes concurrent publishes on
// the same entry so quorum re-checks after the lock see committed state.
func (r *Repo) LockForPublish(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, lockForPublishSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// SetPublishedDraft points the entry at its published draft (nil clears it).
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) SetPublishedDraft(ctx context.Context, id uuid.UUID, draftID *uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setPublishedDraftSQL, id, draftID)
	if err != nil {
		return postgres.MapError(err, "entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	if err := row.Scan(&e.ID, &e.TermID, &e.PerspectiveID, &e.PublishedDraftID, &e.Official, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	var result []*domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Entry{}
	}

	return result, nil
}
