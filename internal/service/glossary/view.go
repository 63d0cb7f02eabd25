package glossary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/richtext"
)

// DraftView is one draft of an entry prepared for display: the draft itself
// plus the textual diff against the entry's published definition.
type DraftView struct {
	Entry *domain.Entry
	Draft *domain.Draft

	// IsPublished is true when the viewed draft is the published one.
	IsPublished bool

	// Diff annotates how the viewed draft's plain text differs from the
	// published draft's plain text. Nil when the entry has no published
	// draft, when the viewed draft IS the published draft, or when either
	// side has no comparable text.
	Diff []richtext.Span
}

// View resolves a draft of an entry by selector (published, latest, or a
// specific historical draft) and annotates it with a diff against the
// published text. Markup-only edits produce an all-equal diff.
func (s *Service) View(ctx context.Context, input ViewInput) (*DraftView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	draft, err := s.resolveDraft(ctx, entry, input.Selector)
	if err != nil {
		return nil, err
	}

	view := &DraftView{
		Entry:       entry,
		Draft:       draft,
		IsPublished: entry.PublishedDraftID != nil && *entry.PublishedDraftID == draft.ID,
	}

	if !view.IsPublished && entry.PublishedDraftID != nil {
		published, pubErr := s.drafts.GetByID(ctx, *entry.PublishedDraftID)
		if pubErr != nil {
			return nil, fmt.Errorf("get published draft: %w", pubErr)
		}
		view.Diff = richtext.Diff(published.Content, draft.Content)
	}

	return view, nil
}

func (s *Service) resolveDraft(ctx context.Context, entry *domain.Entry, sel DraftSelector) (*domain.Draft, error) {
	switch {
	case sel.DraftID != nil:
		draft, err := s.drafts.GetByID(ctx, *sel.DraftID)
		if err != nil {
			return nil, fmt.Errorf("get draft: %w", err)
		}
		if draft.EntryID != entry.ID {
			return nil, fmt.Errorf("draft %s: %w", *sel.DraftID, domain.ErrNotFound)
		}
		return draft, nil

	case sel.Published:
		if entry.PublishedDraftID == nil {
			return nil, fmt.Errorf("entry %s has no published draft: %w", entry.ID, domain.ErrNotFound)
		}
		draft, err := s.drafts.GetByID(ctx, *entry.PublishedDraftID)
		if err != nil {
			return nil, fmt.Errorf("get published draft: %w", err)
		}
		return draft, nil

	default: // Latest
		// ListByEntry serves history and includes discarded drafts;
		// Latest must skip those, so it goes through the active-only
		// listing instead.
		drafts, err := s.drafts.ListByEntryIDs(ctx, []uuid.UUID{entry.ID})
		if err != nil {
			return nil, fmt.Errorf("list drafts: %w", err)
		}
		latest := domain.LatestPerEntry(drafts)
		if len(latest) == 0 {
			return nil, fmt.Errorf("entry %s has no drafts: %w", entry.ID, domain.ErrNotFound)
		}
		return latest[0], nil
	}
}
