package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/pkg/ctxutil"
)

// CreateDraft appends a new draft to an existing entry. Drafts are
// append-only: edits always create a new row and the new draft starts with
// zero approvals regardless of how far its predecessor got.
func (s *Service) CreateDraft(ctx context.Context, input CreateDraftInput) (*domain.Draft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(s.cfg); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	if input.ReplacesDraftID != nil {
		predecessor, predErr := s.drafts.GetByID(ctx, *input.ReplacesDraftID)
		if predErr != nil {
			return nil, fmt.Errorf("get replaced draft: %w", predErr)
		}
		if predecessor.EntryID != entry.ID {
			return nil, domain.NewValidationError("replaces_draft_id", "draft belongs to a different entry")
		}
	}

	var draft *domain.Draft
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		draft, createErr = s.drafts.Create(txCtx, &domain.Draft{
			EntryID:         entry.ID,
			AuthorID:        userID,
			Content:         input.Content,
			ReplacesDraftID: input.ReplacesDraftID,
		})
		if createErr != nil {
			return fmt.Errorf("create draft: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDraft,
			EntityID:   &draft.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"entry_id": entry.ID.String(),
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

	s.log.InfoContext(ctx, "draft created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("draft_id", draft.ID.String()),
	)

	return draft, nil
}
