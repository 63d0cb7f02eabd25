package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// RequestReview asks specific users to look at a draft. The reviewer set is
// advisory: it does not gate approval or publication, and repeated requests
// union with the existing set instead of replacing it.
func (s *Service) RequestReview(ctx context.Context, input RequestReviewInput) (*domain.Draft, error) {
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
	if !assessment.CanRequestReview {
		return nil, domain.NewEligibilityError(assessment.Status, "draft is not open for review requests")
	}

	// Validate the reviewers exist before mutating anything.
	for _, reviewerID := range input.ReviewerIDs {
		if _, userErr := s.users.GetByID(ctx, reviewerID); userErr != nil {
			return nil, fmt.Errorf("reviewer %s: %w", reviewerID, userErr)
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if addErr := s.drafts.AddReviewers(txCtx, d.ID, input.ReviewerIDs); addErr != nil {
			return fmt.Errorf("add reviewers: %w", addErr)
		}

		reviewerIDs := make([]string, len(input.ReviewerIDs))
		for i, id := range input.ReviewerIDs {
			reviewerIDs[i] = id.String()
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeDraft,
			EntityID:   &d.ID,
			Action:     domain.AuditActionRequestReview,
			Changes: map[string]any{
				"reviewer_ids": reviewerIDs,
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

	for _, reviewerID := range input.ReviewerIDs {
		if !d.HasRequestedReviewer(reviewerID) {
			d.RequestedReviewerIDs = append(d.RequestedReviewerIDs, reviewerID)
		}
	}

	s.notify.DraftChanged(ctx, domain.DraftEvent{
		Action:       domain.AuditActionRequestReview,
		DraftID:      d.ID,
		EntryID:      d.EntryID,
		ActorID:      actor.ID,
		RecipientIDs: input.ReviewerIDs,
	})

	s.log.InfoContext(ctx, "review requested",
		slog.String("draft_id", d.ID.String()),
		slog.String("user_id", actor.ID.String()),
		slog.Int("reviewers", len(input.ReviewerIDs)),
	)

	return d, nil
}
