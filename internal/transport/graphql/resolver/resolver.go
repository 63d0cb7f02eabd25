package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/auth"
	"github.com/glosshub/glossary-backend/internal/service/glossary"
	"github.com/glosshub/glossary-backend/internal/service/review"
)

// glossaryService defines what the resolver needs from the glossary service.
type glossaryService interface {
	CreateEntry(ctx context.Context, input glossary.CreateEntryInput) (*glossary.CreateEntryResult, error)
	CreateDraft(ctx context.Context, input glossary.CreateDraftInput) (*domain.Draft, error)
	View(ctx context.Context, input glossary.ViewInput) (*glossary.DraftView, error)
	History(ctx context.Context, input glossary.HistoryInput) ([]*domain.Draft, error)
	SearchTerms(ctx context.Context, query string, limit int) ([]*domain.Term, error)
	ListPerspectives(ctx context.Context) ([]*domain.Perspective, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	EntriesByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error)
}

// reviewService defines what the resolver needs from the review service.
type reviewService interface {
	Approve(ctx context.Context, input review.ApproveInput) (*review.ApproveResult, error)
	RequestReview(ctx context.Context, input review.RequestReviewInput) (*domain.Draft, error)
	Publish(ctx context.Context, input review.PublishInput) (*review.PublishResult, error)
	Endorse(ctx context.Context, input review.EndorseInput) (*domain.Draft, error)
	EndorseEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error)
	Discard(ctx context.Context, input review.DiscardInput) (*domain.Draft, error)
	Assess(ctx context.Context, draftID uuid.UUID) (domain.Assessment, error)
	MyDrafts(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error)
	ReviewQueue(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error)
	Reviewed(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error)
}

// authService defines what the resolver needs from the auth service.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	glossary glossaryService
	review   reviewService
	auth     authService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	glossary glossaryService,
	review reviewService,
	auth authService,
) *Resolver {
	return &Resolver{
		glossary: glossary,
		review:   review,
		auth:     auth,
		log:      log.With("component", "graphql"),
	}
}
