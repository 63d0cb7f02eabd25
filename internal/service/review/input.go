package review

import (
	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// ApproveInput holds the parameters for approving a draft.
type ApproveInput struct {
	DraftID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate() error {
	if i.DraftID == uuid.Nil {
		return domain.NewValidationError("draft_id", "required")
	}
	return nil
}

// RequestReviewInput holds the parameters for requesting reviews on a draft.
type RequestReviewInput struct {
	DraftID     uuid.UUID
	ReviewerIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RequestReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if len(i.ReviewerIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "reviewer_ids", Message: "at least one reviewer required"})
	}
	if len(i.ReviewerIDs) > 20 {
		errs = append(errs, domain.FieldError{Field: "reviewer_ids", Message: "max 20 reviewers per request"})
	}
	for _, id := range i.ReviewerIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "reviewer_ids", Message: "reviewer id must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PublishInput holds the parameters for publishing a draft.
type PublishInput struct {
	DraftID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i PublishInput) Validate() error {
	if i.DraftID == uuid.Nil {
		return domain.NewValidationError("draft_id", "required")
	}
	return nil
}

// EndorseInput holds the parameters for endorsing a draft.
type EndorseInput struct {
	DraftID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i EndorseInput) Validate() error {
	if i.DraftID == uuid.Nil {
		return domain.NewValidationError("draft_id", "required")
	}
	return nil
}

// DiscardInput holds the parameters for discarding a draft.
type DiscardInput struct {
	DraftID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DiscardInput) Validate() error {
	if i.DraftID == uuid.Nil {
		return domain.NewValidationError("draft_id", "required")
	}
	return nil
}

// PanelInput holds the parameters for the eligibility-scoped panel queries.
type PanelInput struct {
	Search *string
	Limit  int
	Offset int
}
