package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// Discard soft-deletes a draft. Only the author or an admin may discard,
// and only while the draft has no approvals and is neither published nor
// already discarded. Discarded drafts stay readable in history until the
// retention job removes them.
func (s *Service) Discard(ctx context.Context, input DiscardInput) (*domain.Draft, error) {
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

	assessment := s.assessFor(d, e, actor)
	if !assessment.CanDiscard {
		if d.AuthorID != actor.ID && !actor.Role.IsAdmin() {
			return nil, fmt.Errorf("discard draft %s: %w", d.ID, domain.ErrForbidden)
		}
		if d.ApprovalCount() > 0 {
			return nil, domain.NewEligibilityError(assessment.Status, "drafts with approvals cannot be discarded")
		}
		return nil, fmt.Errorf("discard draft %s: %w", d.ID, domain.ErrConflict)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if discardErr := s.drafts.Discard(txCtx, d.ID); discardErr != nil {
			return fmt.Errorf("discard draft: %w", discardErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeDraft,
			EntityID:   &d.ID,
			Action:     domain.AuditActionDiscard,
			Changes: map[string]any{
				"entry_id": d.EntryID.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.DraftChanged(ctx, domain.DraftEvent{
		Action:       domain.AuditActionDiscard,
		DraftID:      d.ID,
		EntryID:      d.EntryID,
		ActorID:      actor.ID,
		RecipientIDs: []uuid.UUID{d.AuthorID},
	})

	s.log.InfoContext(ctx, "draft discarded",
		slog.String("draft_id", d.ID.String()),
		slog.String("user_id", actor.ID.String()),
	)

	return d, nil
}
