package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor is the identity and permission context a request acts under. It is
// threaded explicitly into every eligibility and state-machine call; there
// is no ambient session state.
type Actor struct {
	ID   uuid.UUID
	Role UserRole

	// CuratedPerspectiveIDs are the perspectives the actor curates.
	CuratedPerspectiveIDs []uuid.UUID
}

// IsAnonymous reports whether the actor is unauthenticated.
func (a Actor) IsAnonymous() bool {
	return a.ID == uuid.Nil
}

// Curates reports whether the actor curates the given perspective.
// Admins curate every perspective.
func (a Actor) Curates(perspectiveID uuid.UUID) bool {
	if a.Role.IsAdmin() {
		return true
	}
	for _, id := range a.CuratedPerspectiveIDs {
		if id == perspectiveID {
			return true
		}
	}
	return false
}
