// Package perspective implements the Perspective repository using PostgreSQL.
// Perspectives are admin-managed reference data; curator membership lives in
// the perspective_curators join table.
package perspective

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glosshub/glossary-backend/internal/adapter/postgres"
	"github.com/glosshub/glossary-backend/internal/domain"
)

// Repo provides perspective persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new perspective repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, name, created_at
FROM perspectives
WHERE id = $1`

const getByIDsSQL = `
SELECT id, name, created_at
FROM perspectives
WHERE id = ANY($1::uuid[])`

const listSQL = `
SELECT id, name, created_at
FROM perspectives
ORDER BY name`

const createSQL = `
INSERT INTO perspectives (name)
VALUES ($1)
RETURNING id, name, created_at`

const curatorsSQL = `
SELECT user_id
FROM perspective_curators
WHERE perspective_id = $1
ORDER BY user_id`

const curatorsByPerspectiveIDsSQL = `
SELECT perspective_id, user_id
FROM perspective_curators
WHERE perspective_id = ANY($1::uuid[])
ORDER BY perspective_id, user_id`

const curatedByUserSQL = `
SELECT perspective_id
FROM perspective_curators
WHERE user_id = $1`

const addCuratorSQL = `
INSERT INTO perspective_curators (perspective_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const removeCuratorSQL = `
DELETE FROM perspective_curators
WHERE perspective_id = $1 AND user_id = $2`

// GetByID returns a perspective with its curator IDs loaded.
// Returns domain.ErrNotFound if the perspective does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Perspective, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Perspective
	if err := q.QueryRow(ctx, getByIDSQL, id).Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "perspective", id)
	}

	curators, err := r.curators(ctx, id)
	if err != nil {
		return nil, err
	}
	p.CuratorIDs = curators

	return &p, nil
}

// GetByIDs returns perspectives for multiple IDs with curators loaded in one
// extra round trip (batch for DataLoader).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Perspective, error) {
	if len(ids) == 0 {
		return []*domain.Perspective{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get perspectives by ids: %w", err)
	}
	defer rows.Close()

	perspectives, err := scanPerspectives(rows)
	if err != nil {
		return nil, fmt.Errorf("get perspectives by ids: %w", err)
	}

	if err := r.attachCurators(ctx, perspectives, ids); err != nil {
		return nil, err
	}

	return perspectives, nil
}

// List returns all perspectives ordered by name, with curators loaded.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Perspective, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list perspectives: %w", err)
	}
	defer rows.Close()

	perspectives, err := scanPerspectives(rows)
	if err != nil {
		return nil, fmt.Errorf("list perspectives: %w", err)
	}

	ids := make([]uuid.UUID, len(perspectives))
	for i, p := range perspectives {
		ids[i] = p.ID
	}
	if err := r.attachCurators(ctx, perspectives, ids); err != nil {
		return nil, err
	}

	return perspectives, nil
}

// Create inserts a new perspective.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Perspective, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Perspective
	if err := q.QueryRow(ctx, createSQL, name).Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "perspective", uuid.Nil)
	}

	p.CuratorIDs = []uuid.UUID{}
	return &p, nil
}

// CuratedPerspectiveIDs returns the IDs of perspectives the user curates.
// Returns an empty slice (not nil) when the user curates nothing.
func (r *Repo) CuratedPerspectiveIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, curatedByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("curated perspectives: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

// AddCurator grants curatorship. Idempotent: adding the same pair twice is
// not an error (ON CONFLICT DO NOTHING).
// Returns domain.ErrNotFound when the perspective or user does not exist.
func (r *Repo) AddCurator(ctx context.Context, perspectiveID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, addCuratorSQL, perspectiveID, userID); err != nil {
		return postgres.MapError(err, "perspective_curator", perspectiveID)
	}

	return nil
}

// RemoveCurator revokes curatorship. Not an error if the link does not exist.
func (r *Repo) RemoveCurator(ctx context.Context, perspectiveID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeCuratorSQL, perspectiveID, userID); err != nil {
		return postgres.MapError(err, "perspective_curator", perspectiveID)
	}

	return nil
}

func (r *Repo) curators(ctx context.Context, perspectiveID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, curatorsSQL, perspectiveID)
	if err != nil {
		return nil, fmt.Errorf("perspective curators: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

// attachCurators loads curators for the given perspective IDs and assigns
// them to the matching perspectives in place.
func (r *Repo) attachCurators(ctx context.Context, perspectives []*domain.Perspective, ids []uuid.UUID) error {
	if len(perspectives) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, curatorsByPerspectiveIDsSQL, ids)
	if err != nil {
		return fmt.Errorf("perspective curators: %w", err)
	}
	defer rows.Close()

	byPerspective := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var pid, uid uuid.UUID
		if err := rows.Scan(&pid, &uid); err != nil {
			return fmt.Errorf("perspective curators: %w", err)
		}
		byPerspective[pid] = append(byPerspective[pid], uid)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("perspective curators: %w", err)
	}

	for _, p := range perspectives {
		if curators, ok := byPerspective[p.ID]; ok {
			p.CuratorIDs = curators
		} else {
			p.CuratorIDs = []uuid.UUID{}
		}
	}

	return nil
}

func scanPerspectives(rows pgx.Rows) ([]*domain.Perspective, error) {
	var result []*domain.Perspective
	for rows.Next() {
		var p domain.Perspective
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Perspective{}
	}

	return result, nil
}

func scanUUIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	var result []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []uuid.UUID{}
	}

	return result, nil
}
