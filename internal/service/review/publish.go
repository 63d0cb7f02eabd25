package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// PublishResult reports the outcome of a publish attempt.
type PublishResult struct {
	Draft *domain.Draft
	Entry *domain.Entry

	// AlreadyPublished is true when the draft was the entry's published
	// draft before the call; the call is then an acknowledged no-op.
	AlreadyPublished bool

	// Retired is the number of previously published drafts that were
	// unpublished by this call (0 or 1 under the invariant).
	Retired int
}

// Publish makes the draft the entry's single published definition.
//
// The transition runs inside one transaction with the entry row locked, so
// two concurrent publishes on the same entry serialize: the first wins, the
// second re-checks state after the lock and either no-ops (same draft) or
// fails with a conflict (a different draft became published in between, the
// caller decided against state that no longer exists). A draft that was
// discarded or fell below quorum between the pre-check and the lock fails
// with a specific eligibility or conflict error, never a corrupted state.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*PublishResult, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, e, err := s.draftWithEntry(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if !actor.Curates(e.PerspectiveID) {
		return nil, fmt.Errorf("publish draft %s: %w", d.ID, domain.ErrForbidden)
	}

	result := &PublishResult{Draft: d, Entry: e}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, lockErr := s.entries.LockForPublish(txCtx, e.ID)
		if lockErr != nil {
			return fmt.Errorf("lock entry: %w", lockErr)
		}

		// Re-check under the lock: approvals or discard state may have
		// changed since the unlocked read.
		fresh, freshErr := s.drafts.GetByID(txCtx, d.ID)
		if freshErr != nil {
			return fmt.Errorf("reload draft: %w", freshErr)
		}

		if fresh.IsDiscarded() {
			return fmt.Errorf("publish draft %s: draft was discarded: %w", d.ID, domain.ErrConflict)
		}

		if locked.PublishedDraftID != nil && *locked.PublishedDraftID == d.ID {
			result.Draft = fresh
			result.Entry = locked
			result.AlreadyPublished = true
			return nil
		}

		// A publish that raced ahead changed which draft is live; the
		// caller acted on stale state and must re-read, not silently
		// unpublish the winner.
		if !samePublishedDraft(e.PublishedDraftID, locked.PublishedDraftID) {
			return fmt.Errorf("publish draft %s: published draft changed concurrently: %w", d.ID, domain.ErrConflict)
		}

		if !fresh.IsApproved(s.quorum) {
			assessment := s.assessFor(fresh, locked, actor)
			return domain.NewEligibilityError(assessment.Status,
				fmt.Sprintf("draft has %d of %d required approvals", fresh.ApprovalCount(), s.quorum))
		}

		retired, retireErr := s.drafts.RetirePublished(txCtx, e.ID, d.ID)
		if retireErr != nil {
			return fmt.Errorf("retire published draft: %w", retireErr)
		}

		if markErr := s.drafts.MarkPublished(txCtx, d.ID); markErr != nil {
			return fmt.Errorf("mark published: %w", markErr)
		}

		if setErr := s.entries.SetPublishedDraft(txCtx, e.ID, &d.ID); setErr != nil {
			return fmt.Errorf("set published draft: %w", setErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeDraft,
			EntityID:   &d.ID,
			Action:     domain.AuditActionPublish,
			Changes: map[string]any{
				"entry_id": e.ID.String(),
				"retired":  retired,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		result.Draft = fresh
		result.Entry = locked
		result.Retired = retired
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyPublished {
		result.Draft.Published = true
		result.Entry.PublishedDraftID = &result.Draft.ID
		s.notify.DraftChanged(ctx, domain.DraftEvent{
			Action:       domain.AuditActionPublish,
			DraftID:      d.ID,
			EntryID:      e.ID,
			ActorID:      actor.ID,
			RecipientIDs: []uuid.UUID{result.Draft.AuthorID},
		})
	}

	s.log.InfoContext(ctx, "draft published",
		slog.String("draft_id", d.ID.String()),
		slog.String("entry_id", e.ID.String()),
		slog.String("user_id", actor.ID.String()),
		slog.Bool("already_published", result.AlreadyPublished),
		slog.Int("retired", result.Retired),
	)

	return result, nil
}

func samePublishedDraft(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
