package domain

// EligibilityStatus classifies what an actor may do with a draft.
// Exactly one status applies to any (draft, actor) pair.
type EligibilityStatus string

const (
	// EligibilityOwnDraft: the actor authored the draft. Self-approval is forbidden.
	EligibilityOwnDraft EligibilityStatus = "OWN_DRAFT"
	// EligibilityAlreadyApproved: the actor already approved this exact draft.
	EligibilityAlreadyApproved EligibilityStatus = "ALREADY_APPROVED"
	// EligibilityApprovedByOthers: the quorum is already met without the actor.
	EligibilityApprovedByOthers EligibilityStatus = "ALREADY_APPROVED_BY_OTHERS"
	// EligibilityCanApprove: the actor holds curation rights and may approve.
	EligibilityCanApprove EligibilityStatus = "CAN_APPROVE"
	// EligibilityUnknown: anonymous actor or no curation rights; approval denied.
	EligibilityUnknown EligibilityStatus = "UNKNOWN"
)

func (s EligibilityStatus) String() string { return string(s) }

func (s EligibilityStatus) IsValid() bool {
	switch s {
	case EligibilityOwnDraft, EligibilityAlreadyApproved, EligibilityApprovedByOthers,
		EligibilityCanApprove, EligibilityUnknown:
		return true
	}
	return false
}

// DraftState is the lifecycle state of a single draft.
type DraftState string

const (
	DraftStatePending   DraftState = "PENDING"
	DraftStateApproved  DraftState = "APPROVED"
	DraftStatePublished DraftState = "PUBLISHED"
	DraftStateDiscarded DraftState = "DISCARDED"
)

func (s DraftState) String() string { return string(s) }

func (s DraftState) IsValid() bool {
	switch s {
	case DraftStatePending, DraftStateApproved, DraftStatePublished, DraftStateDiscarded:
		return true
	}
	return false
}

// DraftListFilter selects which relation between actor and drafts a panel
// query returns.
type DraftListFilter string

const (
	// DraftFilterOwn: drafts authored by the actor (My Drafts).
	DraftFilterOwn DraftListFilter = "OWN"
	// DraftFilterCanApprove: drafts awaiting the actor's approval (Review Dashboard).
	DraftFilterCanApprove DraftListFilter = "CAN_APPROVE"
	// DraftFilterAlreadyApproved: drafts the actor has approved.
	DraftFilterAlreadyApproved DraftListFilter = "ALREADY_APPROVED"
)

func (f DraftListFilter) String() string { return string(f) }

func (f DraftListFilter) IsValid() bool {
	switch f {
	case DraftFilterOwn, DraftFilterCanApprove, DraftFilterAlreadyApproved:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTerm        EntityType = "TERM"
	EntityTypePerspective EntityType = "PERSPECTIVE"
	EntityTypeEntry       EntityType = "ENTRY"
	EntityTypeDraft       EntityType = "DRAFT"
	EntityTypeUser        EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTerm, EntityTypePerspective, EntityTypeEntry, EntityTypeDraft, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate        AuditAction = "CREATE"
	AuditActionApprove       AuditAction = "APPROVE"
	AuditActionRequestReview AuditAction = "REQUEST_REVIEW"
	AuditActionPublish       AuditAction = "PUBLISH"
	AuditActionEndorse       AuditAction = "ENDORSE"
	AuditActionDiscard       AuditAction = "DISCARD"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionApprove, AuditActionRequestReview,
		AuditActionPublish, AuditActionEndorse, AuditActionDiscard:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
