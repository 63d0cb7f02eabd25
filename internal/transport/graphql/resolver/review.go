package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/review"
)

// ApproveDraft resolves the approveDraft mutation. Repeated approvals by the
// same curator are acknowledged no-ops, surfaced via ApproveResult.Added.
func (r *Resolver) ApproveDraft(ctx context.Context, draftID uuid.UUID) (*review.ApproveResult, error) {
	return r.review.Approve(ctx, review.ApproveInput{DraftID: draftID})
}

// RequestReview resolves the requestReview mutation.
func (r *Resolver) RequestReview(ctx context.Context, draftID uuid.UUID, reviewerIDs []uuid.UUID) (*domain.Draft, error) {
	return r.review.RequestReview(ctx, review.RequestReviewInput{
		DraftID:     draftID,
		ReviewerIDs: reviewerIDs,
	})
}

// PublishDraft resolves the publishDraft mutation.
func (r *Resolver) PublishDraft(ctx context.Context, draftID uuid.UUID) (*review.PublishResult, error) {
	return r.review.Publish(ctx, review.PublishInput{DraftID: draftID})
}

// EndorseDraft resolves the endorseDraft mutation.
func (r *Resolver) EndorseDraft(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	return r.review.Endorse(ctx, review.EndorseInput{DraftID: draftID})
}

// EndorseEntry resolves the endorseEntry mutation, targeting the entry's
// published draft or, before first publication, its latest draft.
func (r *Resolver) EndorseEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error) {
	return r.review.EndorseEntry(ctx, entryID)
}

// DiscardDraft resolves the discardDraft mutation.
func (r *Resolver) DiscardDraft(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	return r.review.Discard(ctx, review.DiscardInput{DraftID: draftID})
}

// DraftEligibility resolves the draftEligibility query. Anonymous callers
// get an UNKNOWN assessment, never an error.
func (r *Resolver) DraftEligibility(ctx context.Context, draftID uuid.UUID) (domain.Assessment, error) {
	return r.review.Assess(ctx, draftID)
}

// MyDrafts resolves the myDrafts query.
func (r *Resolver) MyDrafts(ctx context.Context, search *string, limit, offset *int) ([]review.PanelItem, error) {
	return r.review.MyDrafts(ctx, panelInput(search, limit, offset))
}

// ReviewQueue resolves the reviewQueue query.
func (r *Resolver) ReviewQueue(ctx context.Context, search *string, limit, offset *int) ([]review.PanelItem, error) {
	return r.review.ReviewQueue(ctx, panelInput(search, limit, offset))
}

// ReviewedDrafts resolves the reviewedDrafts query.
func (r *Resolver) ReviewedDrafts(ctx context.Context, search *string, limit, offset *int) ([]review.PanelItem, error) {
	return r.review.Reviewed(ctx, panelInput(search, limit, offset))
}

func panelInput(search *string, limit, offset *int) review.PanelInput {
	input := review.PanelInput{Search: search}
	if limit != nil {
		input.Limit = *limit
	}
	if offset != nil {
		input.Offset = *offset
	}
	return input
}
