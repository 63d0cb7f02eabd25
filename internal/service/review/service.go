// Package review implements the draft review workflow: eligibility
// assessment, approval, review requests, publication, endorsement, and
// discard. All state transitions are audited and the publish path is
// serialized per entry.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/pkg/ctxutil"
)

type draftRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	ListByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.Draft, error)
	ListForActor(ctx context.Context, actor domain.Actor, filter domain.DraftFilter) ([]*domain.Draft, error)
	AddApproval(ctx context.Context, draftID, userID uuid.UUID) (bool, error)
	AddReviewers(ctx context.Context, draftID uuid.UUID, userIDs []uuid.UUID) error
	CountApprovals(ctx context.Context, draftID uuid.UUID) (int, error)
	MarkPublished(ctx context.Context, draftID uuid.UUID) error
	RetirePublished(ctx context.Context, entryID, exceptDraftID uuid.UUID) (int, error)
	Endorse(ctx context.Context, draftID, curatorID uuid.UUID) error
	Discard(ctx context.Context, draftID uuid.UUID) error
}

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Entry, error)
	LockForPublish(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	SetPublishedDraft(ctx context.Context, id uuid.UUID, draftID *uuid.UUID) error
}

type perspectiveRepo interface {
	CuratedPerspectiveIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// notifier fans completed transitions out to interested users. It never
// returns an error: a lost notification must not fail the mutation.
type notifier interface {
	DraftChanged(ctx context.Context, event domain.DraftEvent)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides draft review operations.
type Service struct {
	drafts       draftRepo
	entries      entryRepo
	perspectives perspectiveRepo
	users        userRepo
	audit        auditLogger
	notify       notifier
	tx           txManager
	log          *slog.Logger

	// quorum is the number of distinct approvals required for publication.
	// Applied live on every check, never cached on drafts.
	quorum int
}

// NewService creates a new Review service.
func NewService(
	log *slog.Logger,
	drafts draftRepo,
	entries entryRepo,
	perspectives perspectiveRepo,
	users userRepo,
	audit auditLogger,
	notify notifier,
	tx txManager,
	quorum int,
) *Service {
	return &Service{
		drafts:       drafts,
		entries:      entries,
		perspectives: perspectives,
		users:        users,
		audit:        audit,
		notify:       notify,
		tx:           tx,
		log:          log.With("service", "review"),
		quorum:       quorum,
	}
}

// Quorum returns the configured approval quorum.
func (s *Service) Quorum() int {
	return s.quorum
}

// actor builds the permission context for the current request. An
// unauthenticated request yields the anonymous actor, never an error:
// eligibility classification downgrades gracefully instead of failing.
func (s *Service) actor(ctx context.Context) (domain.Actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, nil
	}

	curated, err := s.perspectives.CuratedPerspectiveIDs(ctx, userID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("load curated perspectives: %w", err)
	}

	return domain.Actor{
		ID:                    userID,
		Role:                  domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
		CuratedPerspectiveIDs: curated,
	}, nil
}

// draftWithEntry loads a draft together with its entry.
func (s *Service) draftWithEntry(ctx context.Context, draftID uuid.UUID) (*domain.Draft, *domain.Entry, error) {
	d, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, nil, fmt.Errorf("get draft: %w", err)
	}

	e, err := s.entries.GetByID(ctx, d.EntryID)
	if err != nil {
		return nil, nil, fmt.Errorf("get entry: %w", err)
	}

	return d, e, nil
}
