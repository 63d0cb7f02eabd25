package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// PanelItem pairs a draft with the actor's assessment of it, ready for
// dashboard rendering without further permission checks.
type PanelItem struct {
	Draft      *domain.Draft
	Entry      *domain.Entry
	Assessment domain.Assessment
}

// MyDrafts returns the latest draft per entry among drafts the actor
// authored, newest first.
func (s *Service) MyDrafts(ctx context.Context, input PanelInput) ([]PanelItem, error) {
	return s.panel(ctx, domain.DraftFilterOwn, input)
}

// ReviewQueue returns the latest draft per entry among drafts awaiting the
// actor's approval, newest first. Own drafts and drafts the actor already
// approved are excluded by the store query.
func (s *Service) ReviewQueue(ctx context.Context, input PanelInput) ([]PanelItem, error) {
	return s.panel(ctx, domain.DraftFilterCanApprove, input)
}

// Reviewed returns the latest draft per entry among drafts the actor has
// approved, newest first.
func (s *Service) Reviewed(ctx context.Context, input PanelInput) ([]PanelItem, error) {
	return s.panel(ctx, domain.DraftFilterAlreadyApproved, input)
}

func (s *Service) panel(ctx context.Context, relation domain.DraftListFilter, input PanelInput) ([]PanelItem, error) {
	actor, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.DraftFilter{
		Filter: relation,
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	filter.Normalize()

	drafts, err := s.drafts.ListForActor(ctx, actor, filter)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	// Collapse to one draft per entry so a heavily edited entry occupies a
	// single panel row.
	latest := domain.LatestPerEntry(drafts)

	entryIDs := make([]uuid.UUID, 0, len(latest))
	for _, d := range latest {
		entryIDs = append(entryIDs, d.EntryID)
	}

	entries, err := s.entries.GetByIDs(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	entryByID := make(map[uuid.UUID]*domain.Entry, len(entries))
	for _, e := range entries {
		entryByID[e.ID] = e
	}

	items := make([]PanelItem, 0, len(latest))
	for _, d := range latest {
		e, ok := entryByID[d.EntryID]
		if !ok {
			continue
		}
		items = append(items, PanelItem{
			Draft:      d,
			Entry:      e,
			Assessment: s.assessFor(d, e, actor),
		})
	}

	return items, nil
}
