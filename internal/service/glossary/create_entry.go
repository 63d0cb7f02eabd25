package glossary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/pkg/ctxutil"
)

// CreateEntryResult holds the entities touched by CreateEntry.
type CreateEntryResult struct {
	Term  *domain.Term
	Entry *domain.Entry
	Draft *domain.Draft

	// TermCreated is true when the term did not exist before this call.
	TermCreated bool
}

// CreateEntry creates an entry for a (term, perspective) pair together with
// its first draft. The term is looked up by folded sort key and created when
// missing, so "Résumé" and "resume" land on the same vocabulary row.
// Returns domain.ErrAlreadyExists when the pair already has an entry.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*CreateEntryResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(s.cfg); err != nil {
		return nil, err
	}

	if _, err := s.perspectives.GetByID(ctx, input.PerspectiveID); err != nil {
		return nil, fmt.Errorf("get perspective: %w", err)
	}

	text := domain.NormalizeText(input.TermText)
	sortKey := domain.SortKey(text)

	result := &CreateEntryResult{}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		term, termErr := s.terms.GetBySortKey(txCtx, sortKey)
		switch {
		case termErr == nil:
			// existing term
		case errors.Is(termErr, domain.ErrNotFound):
			term, termErr = s.terms.Create(txCtx, &domain.Term{
				Text:    text,
				SortKey: sortKey,
			})
			if termErr != nil {
				return fmt.Errorf("create term: %w", termErr)
			}
			result.TermCreated = true
		default:
			return fmt.Errorf("get term: %w", termErr)
		}
		result.Term = term

		entry, entryErr := s.entries.Create(txCtx, term.ID, input.PerspectiveID, input.Official)
		if entryErr != nil {
			return fmt.Errorf("create entry: %w", entryErr)
		}
		result.Entry = entry

		draft, draftErr := s.drafts.Create(txCtx, &domain.Draft{
			EntryID:  entry.ID,
			AuthorID: userID,
			Content:  input.Content,
		})
		if draftErr != nil {
			return fmt.Errorf("create draft: %w", draftErr)
		}
		result.Draft = draft

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEntry,
			EntityID:   &entry.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"term":           text,
				"perspective_id": input.PerspectiveID.String(),
				"draft_id":       draft.ID.String(),
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

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", result.Entry.ID.String()),
		slog.String("term", text),
		slog.Bool("term_created", result.TermCreated),
	)

	return result, nil
}
