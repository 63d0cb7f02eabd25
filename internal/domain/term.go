package domain

import (
	"time"

	"github.com/google/uuid"
)

// Term is a normalized vocabulary word. Immutable once created except for
// the official flag; never hard-deleted.
type Term struct {
	ID        uuid.UUID
	Text      string
	SortKey   string
	Official  bool
	CreatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted returns true if the term has been soft-deleted.
func (t *Term) IsDeleted() bool {
	return t.DeletedAt != nil
}

// Perspective is a named curation scope ("Physics", "Law"). Reference data:
// created by administrators, immutable afterwards.
type Perspective struct {
	ID         uuid.UUID
	Name       string
	CuratorIDs []uuid.UUID
	CreatedAt  time.Time
}

// HasCurator reports whether userID curates this perspective.
func (p *Perspective) HasCurator(userID uuid.UUID) bool {
	for _, id := range p.CuratorIDs {
		if id == userID {
			return true
		}
	}
	return false
}
