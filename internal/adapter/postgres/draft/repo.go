// Package draft implements the Draft repository using PostgreSQL.
// Draft rows are append-only; the mutable parts are publication state,
// discard state, endorsement, and the approval/reviewer join tables.
package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glosshub/glossary-backend/internal/adapter/postgres"
	"github.com/glosshub/glossary-backend/internal/domain"
)

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new draft repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// builder is the squirrel statement builder for dynamic queries ($1-style).
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const draftColumns = `id, entry_id, author_id, content, replaces_draft_id, published, published_at,
	endorsed_by, endorsed_at, discarded_at, comment_count, created_at`

const getByIDSQL = `
SELECT ` + draftColumns + `
FROM drafts
WHERE id = $1`

const getByIDsSQL = `
SELECT ` + draftColumns + `
FROM drafts
WHERE id = ANY($1::uuid[])`

const listByEntrySQL = `
SELECT ` + draftColumns + `
FROM drafts
WHERE entry_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

const listByEntryIDsSQL = `
SELECT ` + draftColumns + `
FROM drafts
WHERE entry_id = ANY($1::uuid[]) AND discarded_at IS NULL
ORDER BY created_at DESC, id DESC`

const createSQL = `
INSERT INTO drafts (entry_id, author_id, content, replaces_draft_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + draftColumns

const addApprovalSQL = `
INSERT INTO draft_approvals (draft_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const addReviewerSQL = `
INSERT INTO draft_reviewers (draft_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const markPublishedSQL = `
UPDATE drafts
SET published = true, published_at = now()
WHERE id = $1 AND discarded_at IS NULL`

const retirePublishedSQL = `
UPDATE drafts
SET published = false
WHERE entry_id = $1 AND published AND id <> $2`

const endorseSQL = `
UPDATE drafts
SET endorsed_by = $2, endorsed_at = now()
WHERE id = $1 AND discarded_at IS NULL`

const discardSQL = `
UPDATE drafts
SET discarded_at = now()
WHERE id = $1 AND discarded_at IS NULL AND NOT published`

const deleteDiscardedSQL = `
DELETE FROM drafts
WHERE discarded_at IS NOT NULL AND discarded_at < $1`

const approversByDraftIDsSQL = `
SELECT draft_id, user_id
FROM draft_approvals
WHERE draft_id = ANY($1::uuid[])
ORDER BY draft_id, created_at`

const reviewersByDraftIDsSQL = `
SELECT draft_id, user_id
FROM draft_reviewers
WHERE draft_id = ANY($1::uuid[])
ORDER BY draft_id, created_at`

// GetByID returns a draft with approvers and requested reviewers attached.
// Returns domain.ErrNotFound if the draft does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDraft(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "draft", id)
	}

	if err := r.attachParticipants(ctx, []*domain.Draft{d}); err != nil {
		return nil, err
	}

	return d, nil
}

// GetByIDs returns drafts for multiple IDs with participants attached
// (batch for DataLoader).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Draft, error) {
	if len(ids) == 0 {
		return []*domain.Draft{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get drafts by ids: %w", err)
	}
	defer rows.Close()

	drafts, err := scanDrafts(rows)
	if err != nil {
		return nil, fmt.Errorf("get drafts by ids: %w", err)
	}

	if err := r.attachParticipants(ctx, drafts); err != nil {
		return nil, err
	}

	return drafts, nil
}

// ListByEntry returns the draft history of an entry, newest first, including
// discarded drafts. Participants are attached.
func (r *Repo) ListByEntry(ctx context.Context, entryID uuid.UUID, limit, offset int) ([]*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByEntrySQL, entryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drafts by entry: %w", err)
	}
	defer rows.Close()

	drafts, err := scanDrafts(rows)
	if err != nil {
		return nil, fmt.Errorf("list drafts by entry: %w", err)
	}

	if err := r.attachParticipants(ctx, drafts); err != nil {
		return nil, err
	}

	return drafts, nil
}

// ListByEntryIDs returns all active drafts for the given entries, newest
// first, with participants attached (batch for DataLoader and panel reducers).
func (r *Repo) ListByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.Draft, error) {
	if len(entryIDs) == 0 {
		return []*domain.Draft{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByEntryIDsSQL, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("list drafts by entries: %w", err)
	}
	defer rows.Close()

	drafts, err := scanDrafts(rows)
	if err != nil {
		return nil, fmt.Errorf("list drafts by entries: %w", err)
	}

	if err := r.attachParticipants(ctx, drafts); err != nil {
		return nil, err
	}

	return drafts, nil
}

// Create inserts a new draft and returns the persisted row.
// Returns domain.ErrNotFound when the entry or author does not exist.
func (r *Repo) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanDraft(q.QueryRow(ctx, createSQL, d.EntryID, d.AuthorID, d.Content, d.ReplacesDraftID))
	if err != nil {
		return nil, postgres.MapError(err, "draft", uuid.Nil)
	}

	created.ApproverIDs = []uuid.UUID{}
	created.RequestedReviewerIDs = []uuid.UUID{}
	return created, nil
}

// AddApproval records an approval. Idempotent at the storage level:
// re-approving returns added=false without error, so callers can
// distinguish a first approval from a repeat.
// Returns domain.ErrNotFound when the draft or user does not exist.
func (r *Repo) AddApproval(ctx context.Context, draftID, userID uuid.UUID) (added bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addApprovalSQL, draftID, userID)
	if err != nil {
		return false, postgres.MapError(err, "draft_approval", draftID)
	}

	return tag.RowsAffected() > 0, nil
}

// AddReviewers unions the given users into the draft's requested reviewer
// set. Existing requests are kept (ON CONFLICT DO NOTHING).
func (r *Repo) AddReviewers(ctx context.Context, draftID uuid.UUID, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, userID := range userIDs {
		batch.Queue(addReviewerSQL, draftID, userID)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range userIDs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "draft_reviewer", draftID)
		}
	}

	return nil
}

// MarkPublished flips the draft to published. Fails with domain.ErrNotFound
// when the draft does not exist or is discarded. The partial unique index on
// (entry_id) WHERE published rejects a second published draft per entry with
// domain.ErrAlreadyExists.
func (r *Repo) MarkPublished(ctx context.Context, draftID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markPublishedSQL, draftID)
	if err != nil {
		return postgres.MapError(err, "draft", draftID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", draftID, domain.ErrNotFound)
	}

	return nil
}

// RetirePublished unpublishes every published draft of the entry except the
// given one. Returns the number of drafts retired.
func (r *Repo) RetirePublished(ctx context.Context, entryID, exceptDraftID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, retirePublishedSQL, entryID, exceptDraftID)
	if err != nil {
		return 0, postgres.MapError(err, "draft", exceptDraftID)
	}

	return int(tag.RowsAffected()), nil
}

// Endorse stamps the draft with the endorsing curator. Re-endorsing
// overwrites the previous endorsement.
// Returns domain.ErrNotFound when the draft does not exist or is discarded.
func (r *Repo) Endorse(ctx context.Context, draftID, curatorID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, endorseSQL, draftID, curatorID)
	if err != nil {
		return postgres.MapError(err, "draft", draftID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", draftID, domain.ErrNotFound)
	}

	return nil
}

// Discard soft-deletes the draft. The WHERE guard refuses published or
// already-discarded drafts; callers see domain.ErrConflict in that case so
// a racing publish surfaces as a state conflict rather than a silent no-op.
func (r *Repo) Discard(ctx context.Context, draftID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, discardSQL, draftID)
	if err != nil {
		return postgres.MapError(err, "draft", draftID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", draftID, domain.ErrConflict)
	}

	return nil
}

// DeleteDiscardedOlderThan physically removes drafts discarded before the
// threshold. Used by the retention cleanup job.
func (r *Repo) DeleteDiscardedOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteDiscardedSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete discarded drafts: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountApprovals returns the current number of distinct approvals for a
// draft. Used inside the publish transaction for the post-lock re-check.
func (r *Repo) CountApprovals(ctx context.Context, draftID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM draft_approvals WHERE draft_id = $1`, draftID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count approvals: %w", err)
	}

	return count, nil
}

// ListForActor returns active drafts scoped by the actor's relation to them,
// newest first. The relation is one of:
//
//   - own: drafts the actor authored
//   - can-approve: drafts in perspectives the actor curates, excluding own
//     drafts and drafts the actor already approved
//   - approved: drafts the actor has approved
//
// An optional search narrows results by term sort-key prefix. Participants
// are attached.
func (r *Repo) ListForActor(ctx context.Context, actor domain.Actor, filter domain.DraftFilter) ([]*domain.Draft, error) {
	query := builder.
		Select(
			"d.id", "d.entry_id", "d.author_id", "d.content", "d.replaces_draft_id",
			"d.published", "d.published_at", "d.endorsed_by", "d.endorsed_at",
			"d.discarded_at", "d.comment_count", "d.created_at",
		).
		From("drafts d").
		Join("entries e ON e.id = d.entry_id").
		Join("terms t ON t.id = e.term_id").
		Where("d.discarded_at IS NULL").
		OrderBy("d.created_at DESC", "d.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	switch filter.Filter {
	case domain.DraftFilterOwn:
		query = query.Where(squirrel.Eq{"d.author_id": actor.ID})

	case domain.DraftFilterCanApprove:
		if actor.Role.IsAdmin() {
			query = query.Where("NOT d.published")
		} else {
			query = query.
				Where(squirrel.Eq{"e.perspective_id": actor.CuratedPerspectiveIDs}).
				Where("NOT d.published")
		}
		query = query.
			Where(squirrel.NotEq{"d.author_id": actor.ID}).
			Where("NOT EXISTS (SELECT 1 FROM draft_approvals da WHERE da.draft_id = d.id AND da.user_id = ?)", actor.ID)

	case domain.DraftFilterAlreadyApproved:
		query = query.
			Where("EXISTS (SELECT 1 FROM draft_approvals da WHERE da.draft_id = d.id AND da.user_id = ?)", actor.ID)

	default:
		return nil, fmt.Errorf("draft filter %q: %w", filter.Filter, domain.ErrValidation)
	}

	if filter.Search != nil && *filter.Search != "" {
		query = query.Where("t.sort_key LIKE ?", *filter.Search+"%")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build draft list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list drafts for actor: %w", err)
	}
	defer rows.Close()

	drafts, err := scanDrafts(rows)
	if err != nil {
		return nil, fmt.Errorf("list drafts for actor: %w", err)
	}

	if err := r.attachParticipants(ctx, drafts); err != nil {
		return nil, err
	}

	return drafts, nil
}

// attachParticipants loads approver and requested-reviewer sets for the
// drafts in two batched queries and assigns them in place.
func (r *Repo) attachParticipants(ctx context.Context, drafts []*domain.Draft) error {
	if len(drafts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(drafts))
	byID := make(map[uuid.UUID]*domain.Draft, len(drafts))
	for i, d := range drafts {
		ids[i] = d.ID
		byID[d.ID] = d
		d.ApproverIDs = []uuid.UUID{}
		d.RequestedReviewerIDs = []uuid.UUID{}
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := collectMembers(ctx, q, approversByDraftIDsSQL, ids, func(d *domain.Draft, userID uuid.UUID) {
		d.ApproverIDs = append(d.ApproverIDs, userID)
	}, byID); err != nil {
		return fmt.Errorf("attach approvers: %w", err)
	}

	if err := collectMembers(ctx, q, reviewersByDraftIDsSQL, ids, func(d *domain.Draft, userID uuid.UUID) {
		d.RequestedReviewerIDs = append(d.RequestedReviewerIDs, userID)
	}, byID); err != nil {
		return fmt.Errorf("attach reviewers: %w", err)
	}

	return nil
}

func collectMembers(ctx context.Context, q postgres.Querier, sql string, ids []uuid.UUID, assign func(*domain.Draft, uuid.UUID), byID map[uuid.UUID]*domain.Draft) error {
	rows, err := q.Query(ctx, sql, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var draftID, userID uuid.UUID
		if err := rows.Scan(&draftID, &userID); err != nil {
			return err
		}
		if d, ok := byID[draftID]; ok {
			assign(d, userID)
		}
	}

	return rows.Err()
}

func scanDraft(row pgx.Row) (*domain.Draft, error) {
	var d domain.Draft
	if err := row.Scan(
		&d.ID, &d.EntryID, &d.AuthorID, &d.Content, &d.ReplacesDraftID,
		&d.Published, &d.PublishedAt, &d.EndorsedBy, &d.EndorsedAt,
		&d.DiscardedAt, &d.CommentCount, &d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDrafts(rows pgx.Rows) ([]*domain.Draft, error) {
	var result []*domain.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Draft{}
	}

	return result, nil
}
