package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// Assess classifies what the current actor may do with the draft. It never
// fails for anonymous users; they receive the UNKNOWN status with a
// sign-in reason.
func (s *Service) Assess(ctx context.Context, draftID uuid.UUID) (domain.Assessment, error) {
	if draftID == uuid.Nil {
		return domain.Assessment{}, domain.NewValidationError("draft_id", "required")
	}

	actor, err := s.actor(ctx)
	if err != nil {
		return domain.Assessment{}, err
	}

	d, e, err := s.draftWithEntry(ctx, draftID)
	if err != nil {
		return domain.Assessment{}, err
	}

	return domain.Classify(d, e.PerspectiveID, actor, s.quorum), nil
}

// assessFor classifies a loaded draft for an already-built actor. Used by
// mutations to gate transitions without re-reading the draft.
func (s *Service) assessFor(d *domain.Draft, e *domain.Entry, actor domain.Actor) domain.Assessment {
	return domain.Classify(d, e.PerspectiveID, actor, s.quorum)
}

// requireActor returns the authenticated actor or domain.ErrUnauthorized.
func (s *Service) requireActor(ctx context.Context) (domain.Actor, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if actor.IsAnonymous() {
		return domain.Actor{}, fmt.Errorf("review: %w", domain.ErrUnauthorized)
	}
	return actor, nil
}
