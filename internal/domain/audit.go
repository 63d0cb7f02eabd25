package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord captures one state-machine mutation for the audit log.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// DraftEvent describes a review-workflow transition for notification fanout.
// RecipientIDs lists the users who should hear about it.
type DraftEvent struct {
	Action       AuditAction
	DraftID      uuid.UUID
	EntryID      uuid.UUID
	ActorID      uuid.UUID
	RecipientIDs []uuid.UUID
}
