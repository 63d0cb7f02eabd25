package glossary

import (
	"context"
	"fmt"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// History returns the full draft log of an entry, newest first, including
// discarded drafts. History is the audit surface of the entry: nothing is
// hidden from it.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]*domain.Draft, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.entries.GetByID(ctx, input.EntryID); err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	limit, offset := s.clampPage(input.Limit, input.Offset)

	drafts, err := s.drafts.ListByEntry(ctx, input.EntryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	return drafts, nil
}
