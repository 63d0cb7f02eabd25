package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/auth"
	"github.com/glosshub/glossary-backend/internal/service/glossary"
	"github.com/glosshub/glossary-backend/internal/service/review"
)

var (
	_ glossaryService = &glossaryServiceMock{}
	_ reviewService   = &reviewServiceMock{}
	_ authService     = &authServiceMock{}
)

type glossaryServiceMock struct {
	CreateEntryFunc      func(ctx context.Context, input glossary.CreateEntryInput) (*glossary.CreateEntryResult, error)
	CreateDraftFunc      func(ctx context.Context, input glossary.CreateDraftInput) (*domain.Draft, error)
	ViewFunc             func(ctx context.Context, input glossary.ViewInput) (*glossary.DraftView, error)
	HistoryFunc          func(ctx context.Context, input glossary.HistoryInput) ([]*domain.Draft, error)
	SearchTermsFunc      func(ctx context.Context, query string, limit int) ([]*domain.Term, error)
	ListPerspectivesFunc func(ctx context.Context) ([]*domain.Perspective, error)
	GetEntryFunc         func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	EntriesByTermFunc    func(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error)
}

func (mock *glossaryServiceMock) CreateEntry(ctx context.Context, input glossary.CreateEntryInput) (*glossary.CreateEntryResult, error) {
	if mock.CreateEntryFunc == nil {
		panic("glossaryServiceMock.CreateEntryFunc: method is nil but glossaryService.CreateEntry was just called")
	}
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *glossaryServiceMock) CreateDraft(ctx context.Context, input glossary.CreateDraftInput) (*domain.Draft, error) {
	if mock.CreateDraftFunc == nil {
		panic("glossaryServiceMock.CreateDraftFunc: method is nil but glossaryService.CreateDraft was just called")
	}
	return mock.CreateDraftFunc(ctx, input)
}

func (mock *glossaryServiceMock) View(ctx context.Context, input glossary.ViewInput) (*glossary.DraftView, error) {
	if mock.ViewFunc == nil {
		panic("glossaryServiceMock.ViewFunc: method is nil but glossaryService.View was just called")
	}
	return mock.ViewFunc(ctx, input)
}

func (mock *glossaryServiceMock) History(ctx context.Context, input glossary.HistoryInput) ([]*domain.Draft, error) {
	if mock.HistoryFunc == nil {
		panic("glossaryServiceMock.HistoryFunc: method is nil but glossaryService.History was just called")
	}
	return mock.HistoryFunc(ctx, input)
}

func (mock *glossaryServiceMock) SearchTerms(ctx context.Context, query string, limit int) ([]*domain.Term, error) {
	if mock.SearchTermsFunc == nil {
		panic("glossaryServiceMock.SearchTermsFunc: method is nil but glossaryService.SearchTerms was just called")
	}
	return mock.SearchTermsFunc(ctx, query, limit)
}

func (mock *glossaryServiceMock) ListPerspectives(ctx context.Context) ([]*domain.Perspective, error) {
	if mock.ListPerspectivesFunc == nil {
		panic("glossaryServiceMock.ListPerspectivesFunc: method is nil but glossaryService.ListPerspectives was just called")
	}
	return mock.ListPerspectivesFunc(ctx)
}

func (mock *glossaryServiceMock) GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetEntryFunc == nil {
		panic("glossaryServiceMock.GetEntryFunc: method is nil but glossaryService.GetEntry was just called")
	}
	return mock.GetEntryFunc(ctx, id)
}

func (mock *glossaryServiceMock) EntriesByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error) {
	if mock.EntriesByTermFunc == nil {
		panic("glossaryServiceMock.EntriesByTermFunc: method is nil but glossaryService.EntriesByTerm was just called")
	}
	return mock.EntriesByTermFunc(ctx, termID)
}

type reviewServiceMock struct {
	ApproveFunc       func(ctx context.Context, input review.ApproveInput) (*review.ApproveResult, error)
	RequestReviewFunc func(ctx context.Context, input review.RequestReviewInput) (*domain.Draft, error)
	PublishFunc       func(ctx context.Context, input review.PublishInput) (*review.PublishResult, error)
	EndorseFunc       func(ctx context.Context, input review.EndorseInput) (*domain.Draft, error)
	EndorseEntryFunc  func(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error)
	DiscardFunc       func(ctx context.Context, input review.DiscardInput) (*domain.Draft, error)
	AssessFunc        func(ctx context.Context, draftID uuid.UUID) (domain.Assessment, error)
	MyDraftsFunc      func(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error)
	ReviewQueueFunc   func(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error)
	ReviewedFunc      func(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error)
}

func (mock *reviewServiceMock) Approve(ctx context.Context, input review.ApproveInput) (*review.ApproveResult, error) {
	if mock.ApproveFunc == nil {
		panic("reviewServiceMock.ApproveFunc: method is nil but reviewService.Approve was just called")
	}
	return mock.ApproveFunc(ctx, input)
}

func (mock *reviewServiceMock) RequestReview(ctx context.Context, input review.RequestReviewInput) (*domain.Draft, error) {
	if mock.RequestReviewFunc == nil {
		panic("reviewServiceMock.RequestReviewFunc: method is nil but reviewService.RequestReview was just called")
	}
	return mock.RequestReviewFunc(ctx, input)
}

func (mock *reviewServiceMock) Publish(ctx context.Context, input review.PublishInput) (*review.PublishResult, error) {
	if mock.PublishFunc == nil {
		panic("reviewServiceMock.PublishFunc: method is nil but reviewService.Publish was just called")
	}
	return mock.PublishFunc(ctx, input)
}

func (mock *reviewServiceMock) Endorse(ctx context.Context, input review.EndorseInput) (*domain.Draft, error) {
	if mock.EndorseFunc == nil {
		panic("reviewServiceMock.EndorseFunc: method is nil but reviewService.Endorse was just called")
	}
	return mock.EndorseFunc(ctx, input)
}

func (mock *reviewServiceMock) EndorseEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error) {
	if mock.EndorseEntryFunc == nil {
		panic("reviewServiceMock.EndorseEntryFunc: method is nil but reviewService.EndorseEntry was just called")
	}
	return mock.EndorseEntryFunc(ctx, entryID)
}

func (mock *reviewServiceMock) Discard(ctx context.Context, input review.DiscardInput) (*domain.Draft, error) {
	if mock.DiscardFunc == nil {
		panic("reviewServiceMock.DiscardFunc: method is nil but reviewService.Discard was just called")
	}
	return mock.DiscardFunc(ctx, input)
}

func (mock *reviewServiceMock) Assess(ctx context.Context, draftID uuid.UUID) (domain.Assessment, error) {
	if mock.AssessFunc == nil {
		panic("reviewServiceMock.AssessFunc: method is nil but reviewService.Assess was just called")
	}
	return mock.AssessFunc(ctx, draftID)
}

func (mock *reviewServiceMock) MyDrafts(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error) {
	if mock.MyDraftsFunc == nil {
		panic("reviewServiceMock.MyDraftsFunc: method is nil but reviewService.MyDrafts was just called")
	}
	return mock.MyDraftsFunc(ctx, input)
}

func (mock *reviewServiceMock) ReviewQueue(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error) {
	if mock.ReviewQueueFunc == nil {
		panic("reviewServiceMock.ReviewQueueFunc: method is nil but reviewService.ReviewQueue was just called")
	}
	return mock.ReviewQueueFunc(ctx, input)
}

func (mock *reviewServiceMock) Reviewed(ctx context.Context, input review.PanelInput) ([]review.PanelItem, error) {
	if mock.ReviewedFunc == nil {
		panic("reviewServiceMock.ReviewedFunc: method is nil but reviewService.Reviewed was just called")
	}
	return mock.ReviewedFunc(ctx, input)
}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	MeFunc       func(ctx context.Context) (*domain.User, error)
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	return mock.MeFunc(ctx)
}
