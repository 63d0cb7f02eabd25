// Package glossary implements entry and draft authoring: creating terms,
// entries, and drafts, browsing published definitions, and viewing history
// with diffs against the published text.
package glossary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	GetBySortKey(ctx context.Context, sortKey string) (*domain.Term, error)
	Search(ctx context.Context, prefix string, limit int) ([]*domain.Term, error)
	Create(ctx context.Context, t *domain.Term) (*domain.Term, error)
}

type perspectiveRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Perspective, error)
	List(ctx context.Context) ([]*domain.Perspective, error)
}

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByPair(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error)
	ListByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error)
	ListByPerspective(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error)
	Create(ctx context.Context, termID, perspectiveID uuid.UUID, official bool) (*domain.Entry, error)
}

type draftRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	ListByEntry(ctx context.Context, entryID uuid.UUID, limit, offset int) ([]*domain.Draft, error)
	ListByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.Draft, error)
	Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config bundles the content limits the service enforces.
type Config struct {
	MaxContentLength int
	MaxTermLength    int
	DefaultPageSize  int
	MaxPageSize      int
}

// Service provides glossary authoring and browsing operations.
type Service struct {
	terms        termRepo
	perspectives perspectiveRepo
	entries      entryRepo
	drafts       draftRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
	cfg          Config
}

// NewService creates a new Glossary service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	perspectives perspectiveRepo,
	entries entryRepo,
	drafts draftRepo,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		terms:        terms,
		perspectives: perspectives,
		entries:      entries,
		drafts:       drafts,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "glossary"),
		cfg:          cfg,
	}
}

// clampPage applies the configured page-size defaults and ceiling.
func (s *Service) clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
