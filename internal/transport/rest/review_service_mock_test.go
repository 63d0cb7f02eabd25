package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/review"
)

var _ reviewService = &reviewServiceMock{}

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
	QuorumFunc        func() int

	calls struct {
		Approve []struct {
			Ctx   context.Context
			Input review.ApproveInput
		}
		RequestReview []struct {
			Ctx   context.Context
			Input review.RequestReviewInput
		}
		MyDrafts []struct {
			Ctx   context.Context
			Input review.PanelInput
		}
	}
	lock sync.RWMutex
}

func (mock *reviewServiceMock) Approve(ctx context.Context, input review.ApproveInput) (*review.ApproveResult, error) {
	if mock.ApproveFunc == nil {
		panic("reviewServiceMock.ApproveFunc: method is nil but reviewService.Approve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.ApproveInput
	}{Ctx: ctx, Input: input}
	mock.lock.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lock.Unlock()
	return mock.ApproveFunc(ctx, input)
}

func (mock *reviewServiceMock) ApproveCalls() []struct {
	Ctx   context.Context
	Input review.ApproveInput
} {
	mock.lock.RLock()
	calls := mock.calls.Approve
	mock.lock.RUnlock()
	return calls
}

func (mock *reviewServiceMock) RequestReview(ctx context.Context, input review.RequestReviewInput) (*domain.Draft, error) {
	if mock.RequestReviewFunc == nil {
		panic("reviewServiceMock.RequestReviewFunc: method is nil but reviewService.RequestReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.RequestReviewInput
	}{Ctx: ctx, Input: input}
	mock.lock.Lock()
	mock.calls.RequestReview = append(mock.calls.RequestReview, callInfo)
	mock.lock.Unlock()
	return mock.RequestReviewFunc(ctx, input)
}

func (mock *reviewServiceMock) RequestReviewCalls() []struct {
	Ctx   context.Context
	Input review.RequestReviewInput
} {
	mock.lock.RLock()
	calls := mock.calls.RequestReview
	mock.lock.RUnlock()
	return calls
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
	callInfo := struct {
		Ctx   context.Context
		Input review.PanelInput
	}{Ctx: ctx, Input: input}
	mock.lock.Lock()
	mock.calls.MyDrafts = append(mock.calls.MyDrafts, callInfo)
	mock.lock.Unlock()
	return mock.MyDraftsFunc(ctx, input)
}

func (mock *reviewServiceMock) MyDraftsCalls() []struct {
	Ctx   context.Context
	Input review.PanelInput
} {
	mock.lock.RLock()
	calls := mock.calls.MyDrafts
	mock.lock.RUnlock()
	return calls
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

func (mock *reviewServiceMock) Quorum() int {
	if mock.QuorumFunc == nil {
		panic("reviewServiceMock.QuorumFunc: method is nil but reviewService.Quorum was just called")
	}
	return mock.QuorumFunc()
}
