package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/glossary"
	"github.com/glosshub/glossary-backend/internal/transport/graphql/dataloader"
	"github.com/glosshub/glossary-backend/internal/transport/middleware"
)

const defaultSearchLimit = 50

// SearchTerms resolves the searchTerms query. The query string is folded
// for accent- and case-insensitive matching by the service.
func (r *Resolver) SearchTerms(ctx context.Context, query string, limit *int) ([]*domain.Term, error) {
	l := defaultSearchLimit
	if limit != nil {
		l = *limit
	}
	return r.glossary.SearchTerms(ctx, query, l)
}

// Perspectives resolves the perspectives query.
func (r *Resolver) Perspectives(ctx context.Context) ([]*domain.Perspective, error) {
	return r.glossary.ListPerspectives(ctx)
}

// Entry resolves the entry query.
func (r *Resolver) Entry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	return r.glossary.GetEntry(ctx, id)
}

// EntriesByTerm resolves the entriesByTerm query.
func (r *Resolver) EntriesByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error) {
	return r.glossary.EntriesByTerm(ctx, termID)
}

// EntryView resolves the entryView query. Exactly one of draftID, published,
// or latest selects the draft to show; nil draftID with both flags unset
// defaults to latest.
func (r *Resolver) EntryView(ctx context.Context, entryID uuid.UUID, draftID *uuid.UUID, published *bool) (*glossary.DraftView, error) {
	selector := glossary.DraftSelector{}
	switch {
	case draftID != nil:
		selector.DraftID = draftID
	case published != nil && *published:
		selector.Published = true
	default:
		selector.Latest = true
	}

	return r.glossary.View(ctx, glossary.ViewInput{EntryID: entryID, Selector: selector})
}

// EntryHistory resolves the entryHistory query, newest first, discarded
// drafts included.
func (r *Resolver) EntryHistory(ctx context.Context, entryID uuid.UUID, limit, offset *int) ([]*domain.Draft, error) {
	input := glossary.HistoryInput{EntryID: entryID}
	if limit != nil {
		input.Limit = *limit
	}
	if offset != nil {
		input.Offset = *offset
	}
	return r.glossary.History(ctx, input)
}

// CreateEntryInput carries the createEntry mutation arguments.
type CreateEntryInput struct {
	TermText      string
	PerspectiveID uuid.UUID
	Content       string
	Official      *bool
}

// CreateEntry resolves the createEntry mutation, creating the term on the
// fly when no term with the same folded key exists.
func (r *Resolver) CreateEntry(ctx context.Context, input CreateEntryInput) (*glossary.CreateEntryResult, error) {
	svcInput := glossary.CreateEntryInput{
		TermText:      input.TermText,
		PerspectiveID: input.PerspectiveID,
		Content:       input.Content,
	}
	if input.Official != nil {
		svcInput.Official = *input.Official
	}

	// Official entries carry curated weight; only admins may create them.
	if svcInput.Official {
		if err := middleware.RequireAdmin(ctx); err != nil {
			return nil, err
		}
	}
	return r.glossary.CreateEntry(ctx, svcInput)
}

// CreateDraft resolves the createDraft mutation.
func (r *Resolver) CreateDraft(ctx context.Context, entryID uuid.UUID, content string, replacesDraftID *uuid.UUID) (*domain.Draft, error) {
	return r.glossary.CreateDraft(ctx, glossary.CreateDraftInput{
		EntryID:         entryID,
		Content:         content,
		ReplacesDraftID: replacesDraftID,
	})
}

// ---------------------------------------------------------------------------
// Field resolvers, batched through per-request DataLoaders.
// ---------------------------------------------------------------------------

// EntryTerm resolves Entry.term.
func (r *Resolver) EntryTerm(ctx context.Context, entry *domain.Entry) (*domain.Term, error) {
	if entry.Term != nil {
		return entry.Term, nil
	}
	return dataloader.FromContext(ctx).TermByID.Load(ctx, entry.TermID)()
}

// EntryPerspective resolves Entry.perspective.
func (r *Resolver) EntryPerspective(ctx context.Context, entry *domain.Entry) (*domain.Perspective, error) {
	if entry.Perspective != nil {
		return entry.Perspective, nil
	}
	return dataloader.FromContext(ctx).PerspectiveByID.Load(ctx, entry.PerspectiveID)()
}

// EntryDrafts resolves Entry.drafts.
func (r *Resolver) EntryDrafts(ctx context.Context, entry *domain.Entry) ([]*domain.Draft, error) {
	return dataloader.FromContext(ctx).DraftsByEntryID.Load(ctx, entry.ID)()
}

// EntryPublishedDraft resolves Entry.publishedDraft.
func (r *Resolver) EntryPublishedDraft(ctx context.Context, entry *domain.Entry) (*domain.Draft, error) {
	if entry.PublishedDraftID == nil {
		return nil, nil
	}
	return dataloader.FromContext(ctx).DraftByID.Load(ctx, *entry.PublishedDraftID)()
}

// DraftAuthor resolves Draft.author.
func (r *Resolver) DraftAuthor(ctx context.Context, draft *domain.Draft) (*domain.User, error) {
	return dataloader.FromContext(ctx).UserByID.Load(ctx, draft.AuthorID)()
}

// DraftEntry resolves Draft.entry.
func (r *Resolver) DraftEntry(ctx context.Context, draft *domain.Draft) (*domain.Entry, error) {
	return dataloader.FromContext(ctx).EntryByID.Load(ctx, draft.EntryID)()
}
