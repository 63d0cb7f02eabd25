package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// ApproveResult reports the outcome of an approval attempt.
type ApproveResult struct {
	Draft *domain.Draft

	// Added is false when the actor had already approved the draft; the
	// call is then an acknowledged no-op, not an error.
	Added bool

	Assessment domain.Assessment
}

// Approve records the actor's approval on a draft. Approvals bind to the
// exact draft, never to the entry; a new draft starts from zero.
//
// The insert is idempotent at the storage level, so two concurrent approvals
// by the same user yield exactly one row and the loser observes Added=false.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*ApproveResult, error) {
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
	switch assessment.Status {
	case domain.EligibilityCanApprove:
		// proceed
	case domain.EligibilityAlreadyApproved:
		// Idempotent repeat: acknowledged, no state change.
		return &ApproveResult{Draft: d, Added: false, Assessment: assessment}, nil
	default:
		return nil, domain.NewEligibilityError(assessment.Status, assessment.Reason)
	}
	if !assessment.CanApprove {
		return nil, domain.NewEligibilityError(assessment.Status, "draft is not open for approval")
	}

	var added bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var approveErr error
		added, approveErr = s.drafts.AddApproval(txCtx, d.ID, actor.ID)
		if approveErr != nil {
			return fmt.Errorf("add approval: %w", approveErr)
		}

		if !added {
			// Lost a self-race; nothing to audit.
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeDraft,
			EntityID:   &d.ID,
			Action:     domain.AuditActionApprove,
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

	if added {
		d.ApproverIDs = append(d.ApproverIDs, actor.ID)
		s.notify.DraftChanged(ctx, domain.DraftEvent{
			Action:       domain.AuditActionApprove,
			DraftID:      d.ID,
			EntryID:      d.EntryID,
			ActorID:      actor.ID,
			RecipientIDs: []uuid.UUID{d.AuthorID},
		})
	}

	s.log.InfoContext(ctx, "draft approved",
		slog.String("draft_id", d.ID.String()),
		slog.String("user_id", actor.ID.String()),
		slog.Bool("added", added),
		slog.Int("approvals", d.ApprovalCount()),
	)

	return &ApproveResult{
		Draft:      d,
		Added:      added,
		Assessment: s.assessFor(d, e, actor),
	}, nil
}
