package glossary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// SearchTerms returns live terms whose folded text starts with the query,
// alphabetically. The query is folded the same way sort keys are, so accents
// and case do not matter.
func (s *Service) SearchTerms(ctx context.Context, query string, limit int) ([]*domain.Term, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	limit, _ = s.clampPage(limit, 0)

	terms, err := s.terms.Search(ctx, domain.SortKey(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search terms: %w", err)
	}

	return terms, nil
}

// ListPerspectives returns all perspectives ordered by name.
func (s *Service) ListPerspectives(ctx context.Context) ([]*domain.Perspective, error) {
	perspectives, err := s.perspectives.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list perspectives: %w", err)
	}

	return perspectives, nil
}

// GetEntry returns one entry by ID.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return entry, nil
}

// EntriesByTerm returns every entry of a term across all perspectives.
func (s *Service) EntriesByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error) {
	if termID == uuid.Nil {
		return nil, domain.NewValidationError("term_id", "required")
	}

	if _, err := s.terms.GetByID(ctx, termID); err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	entries, err := s.entries.ListByTerm(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// EntriesByPerspective returns entries in a perspective, paginated.
func (s *Service) EntriesByPerspective(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error) {
	if perspectiveID == uuid.Nil {
		return nil, domain.NewValidationError("perspective_id", "required")
	}

	limit, offset = s.clampPage(limit, offset)

	entries, err := s.entries.ListByPerspective(ctx, perspectiveID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}
