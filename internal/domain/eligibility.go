package domain

import "github.com/google/uuid"

// Assessment is the full eligibility verdict for one (draft, actor) pair.
// It is the single authoritative source for review status: display layers
// format it, they never recompute it.
type Assessment struct {
	Status EligibilityStatus
	// Reason is the user-facing explanation for the status.
	Reason string

	ApprovalCount      int
	RemainingApprovals int
	// ApprovalPercentage is approval count over quorum, clamped to 100.
	ApprovalPercentage int

	CanApprove       bool
	CanPublish       bool
	CanRequestReview bool
	CanDiscard       bool
	CanEndorse       bool
}

// Eligibility reasons shown to users. Denials must be specific, never a
// blanket "forbidden".
const (
	ReasonOwnDraft         = "you cannot approve your own draft"
	ReasonAlreadyApproved  = "you have already approved this draft"
	ReasonApprovedByOthers = "this draft already has enough approvals"
	ReasonCanApprove       = "you may approve this draft"
	ReasonNotAuthenticated = "sign in to review drafts"
	ReasonNotCurator       = "only curators of this perspective may approve"
)

// Classify determines what the actor may do with the draft. Pure and
// side-effect free; the quorum is passed in live so threshold changes take
// effect immediately. perspectiveID is the perspective of the draft's entry.
//
// Exactly one status is returned for every input:
//
//	own draft        → OWN_DRAFT
//	actor approved   → ALREADY_APPROVED
//	quorum met       → ALREADY_APPROVED_BY_OTHERS
//	actor curates    → CAN_APPROVE
//	otherwise        → UNKNOWN (fail-safe denial)
func Classify(d *Draft, perspectiveID uuid.UUID, actor Actor, quorum int) Assessment {
	a := Assessment{
		ApprovalCount:      d.ApprovalCount(),
		RemainingApprovals: remaining(d.ApprovalCount(), quorum),
		ApprovalPercentage: percentage(d.ApprovalCount(), quorum),
	}

	curator := actor.Curates(perspectiveID)

	switch {
	case actor.IsAnonymous():
		a.Status = EligibilityUnknown
		a.Reason = ReasonNotAuthenticated

	case d.AuthorID == actor.ID:
		a.Status = EligibilityOwnDraft
		a.Reason = ReasonOwnDraft

	case d.HasApprover(actor.ID):
		a.Status = EligibilityAlreadyApproved
		a.Reason = ReasonAlreadyApproved

	case d.IsApproved(quorum):
		a.Status = EligibilityApprovedByOthers
		a.Reason = ReasonApprovedByOthers

	case curator:
		a.Status = EligibilityCanApprove
		a.Reason = ReasonCanApprove

	default:
		a.Status = EligibilityUnknown
		a.Reason = ReasonNotCurator
	}

	active := !d.Published && !d.IsDiscarded()

	a.CanApprove = a.Status == EligibilityCanApprove && active
	a.CanPublish = curator && d.IsApproved(quorum) && active
	a.CanRequestReview = !actor.IsAnonymous() && active
	a.CanDiscard = (d.AuthorID == actor.ID || actor.Role.IsAdmin()) &&
		d.ApprovalCount() == 0 && active
	a.CanEndorse = curator && !d.IsDiscarded()

	return a
}

func remaining(count, quorum int) int {
	if count >= quorum {
		return 0
	}
	return quorum - count
}

func percentage(count, quorum int) int {
	if quorum <= 0 || count >= quorum {
		return 100
	}
	return count * 100 / quorum
}
