package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is the unique pairing of (Term, Perspective), the thing a
// definition is about. At most one of its drafts is published at any time.
type Entry struct {
	ID               uuid.UUID
	TermID           uuid.UUID
	PerspectiveID    uuid.UUID
	PublishedDraftID *uuid.UUID
	Official         bool
	CreatedAt        time.Time

	// Loaded on demand, not always populated.
	Term        *Term
	Perspective *Perspective
}

// HasPublished reports whether the entry has a published draft.
func (e *Entry) HasPublished() bool {
	return e.PublishedDraftID != nil
}

// Draft is one proposed body of definition text for an Entry. Drafts form a
// strictly append-only log per entry: edits create new drafts, content is
// never mutated in place.
type Draft struct {
	ID              uuid.UUID
	EntryID         uuid.UUID
	AuthorID        uuid.UUID
	Content         string
	ReplacesDraftID *uuid.UUID
	CreatedAt       time.Time

	// ApproverIDs is the set of distinct users who approved this exact
	// draft. Approvals never carry over to newer drafts of the same entry.
	ApproverIDs []uuid.UUID

	// RequestedReviewerIDs is advisory only and does not gate approval.
	RequestedReviewerIDs []uuid.UUID

	Published   bool
	PublishedAt *time.Time

	EndorsedBy *uuid.UUID
	EndorsedAt *time.Time

	DiscardedAt *time.Time

	// CommentCount is surfaced by the store; comment threading itself is a
	// separate collaborator.
	CommentCount int
}

// ApprovalCount returns the number of distinct approvers.
func (d *Draft) ApprovalCount() int {
	return len(d.ApproverIDs)
}

// HasApprover reports whether userID has approved this draft.
func (d *Draft) HasApprover(userID uuid.UUID) bool {
	for _, id := range d.ApproverIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasRequestedReviewer reports whether userID was asked to review this draft.
func (d *Draft) HasRequestedReviewer(userID uuid.UUID) bool {
	for _, id := range d.RequestedReviewerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsApproved reports whether the draft has reached the approval quorum.
// Always computed live against the current quorum, never cached: drafts that
// exceeded an older, higher threshold stay eligible under a lower one.
func (d *Draft) IsApproved(quorum int) bool {
	return d.ApprovalCount() >= quorum
}

// IsEndorsed reports whether a curator has endorsed this draft.
func (d *Draft) IsEndorsed() bool {
	return d.EndorsedBy != nil
}

// IsDiscarded reports whether the draft has been discarded.
func (d *Draft) IsDiscarded() bool {
	return d.DiscardedAt != nil
}

// State derives the lifecycle state of the draft under the given quorum.
func (d *Draft) State(quorum int) DraftState {
	switch {
	case d.IsDiscarded():
		return DraftStateDiscarded
	case d.Published:
		return DraftStatePublished
	case d.IsApproved(quorum):
		return DraftStateApproved
	default:
		return DraftStatePending
	}
}
