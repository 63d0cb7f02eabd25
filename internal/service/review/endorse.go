package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// Endorse stamps a draft with a curator's endorsement. Endorsement is a
// quality signal layered on top of publication; it does not change the
// draft's lifecycle state. Re-endorsing replaces the previous stamp.
func (s *Service) Endorse(ctx context.Context, input EndorseInput) (*domain.Draft, error) {
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
	if !assessment.CanEndorse {
		if !actor.Curates(e.PerspectiveID) {
			return nil, fmt.Errorf("endorse draft %s: %w", d.ID, domain.ErrForbidden)
		}
		return nil, domain.NewEligibilityError(assessment.Status, "discarded drafts cannot be endorsed")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if endorseErr := s.drafts.Endorse(txCtx, d.ID, actor.ID); endorseErr != nil {
			return fmt.Errorf("endorse draft: %w", endorseErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeDraft,
			EntityID:   &d.ID,
			Action:     domain.AuditActionEndorse,
			Changes: map[string]any{
				"entry_id": d.EntryID.String(),
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

	d.EndorsedBy = &actor.ID

	s.notify.DraftChanged(ctx, domain.DraftEvent{
		Action:       domain.AuditActionEndorse,
		DraftID:      d.ID,
		EntryID:      d.EntryID,
		ActorID:      actor.ID,
		RecipientIDs: []uuid.UUID{d.AuthorID},
	})

	s.log.InfoContext(ctx, "draft endorsed",
		slog.String("draft_id", d.ID.String()),
		slog.String("user_id", actor.ID.String()),
	)

	return d, nil
}

// EndorseEntry endorses the entry's published draft, falling back to the
// latest draft when nothing has been published yet.
func (s *Service) EndorseEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error) {
	e, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	if e.PublishedDraftID != nil {
		return s.Endorse(ctx, EndorseInput{DraftID: *e.PublishedDraftID})
	}

	drafts, err := s.drafts.ListByEntryIDs(ctx, []uuid.UUID{entryID})
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	latest := domain.LatestPerEntry(drafts)
	if len(latest) == 0 {
		return nil, fmt.Errorf("entry %s has no drafts: %w", entryID, domain.ErrNotFound)
	}

	return s.Endorse(ctx, EndorseInput{DraftID: latest[0].ID})
}
