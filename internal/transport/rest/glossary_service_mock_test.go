package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/glossary"
)

var _ glossaryService = &glossaryServiceMock{}

type glossaryServiceMock struct {
	CreateEntryFunc          func(ctx context.Context, input glossary.CreateEntryInput) (*glossary.CreateEntryResult, error)
	CreateDraftFunc          func(ctx context.Context, input glossary.CreateDraftInput) (*domain.Draft, error)
	ViewFunc                 func(ctx context.Context, input glossary.ViewInput) (*glossary.DraftView, error)
	HistoryFunc              func(ctx context.Context, input glossary.HistoryInput) ([]*domain.Draft, error)
	SearchTermsFunc          func(ctx context.Context, query string, limit int) ([]*domain.Term, error)
	ListPerspectivesFunc     func(ctx context.Context) ([]*domain.Perspective, error)
	GetEntryFunc             func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	EntriesByTermFunc        func(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error)
	EntriesByPerspectiveFunc func(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error)

	calls struct {
		CreateEntry []struct {
			Ctx   context.Context
			Input glossary.CreateEntryInput
		}
		CreateDraft []struct {
			Ctx   context.Context
			Input glossary.CreateDraftInput
		}
		View []struct {
			Ctx   context.Context
			Input glossary.ViewInput
		}
		SearchTerms []struct {
			Ctx   context.Context
			Query string
			Limit int
		}
	}
	lock sync.RWMutex
}

func (mock *glossaryServiceMock) CreateEntry(ctx context.Context, input glossary.CreateEntryInput) (*glossary.CreateEntryResult, error) {
	if mock.CreateEntryFunc == nil {
		panic("glossaryServiceMock.CreateEntryFunc: method is nil but glossaryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input glossary.CreateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lock.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lock.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *glossaryServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input glossary.CreateEntryInput
} {
	mock.lock.RLock()
	calls := mock.calls.CreateEntry
	mock.lock.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) CreateDraft(ctx context.Context, input glossary.CreateDraftInput) (*domain.Draft, error) {
	if mock.CreateDraftFunc == nil {
		panic("glossaryServiceMock.CreateDraftFunc: method is nil but glossaryService.CreateDraft was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input glossary.CreateDraftInput
	}{Ctx: ctx, Input: input}
	mock.lock.Lock()
	mock.calls.CreateDraft = append(mock.calls.CreateDraft, callInfo)
	mock.lock.Unlock()
	return mock.CreateDraftFunc(ctx, input)
}

func (mock *glossaryServiceMock) CreateDraftCalls() []struct {
	Ctx   context.Context
	Input glossary.CreateDraftInput
} {
	mock.lock.RLock()
	calls := mock.calls.CreateDraft
	mock.lock.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) View(ctx context.Context, input glossary.ViewInput) (*glossary.DraftView, error) {
	if mock.ViewFunc == nil {
		panic("glossaryServiceMock.ViewFunc: method is nil but glossaryService.View was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input glossary.ViewInput
	}{Ctx: ctx, Input: input}
	mock.lock.Lock()
	mock.calls.View = append(mock.calls.View, callInfo)
	mock.lock.Unlock()
	return mock.ViewFunc(ctx, input)
}

func (mock *glossaryServiceMock) ViewCalls() []struct {
	Ctx   context.Context
	Input glossary.ViewInput
} {
	mock.lock.RLock()
	calls := mock.calls.View
	mock.lock.RUnlock()
	return calls
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
	callInfo := struct {
		Ctx   context.Context
		Query string
		Limit int
	}{Ctx: ctx, Query: query, Limit: limit}
	mock.lock.Lock()
	mock.calls.SearchTerms = append(mock.calls.SearchTerms, callInfo)
	mock.lock.Unlock()
	return mock.SearchTermsFunc(ctx, query, limit)
}

func (mock *glossaryServiceMock) SearchTermsCalls() []struct {
	Ctx   context.Context
	Query string
	Limit int
} {
	mock.lock.RLock()
	calls := mock.calls.SearchTerms
	mock.lock.RUnlock()
	return calls
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

func (mock *glossaryServiceMock) EntriesByPerspective(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error) {
	if mock.EntriesByPerspectiveFunc == nil {
		panic("glossaryServiceMock.EntriesByPerspectiveFunc: method is nil but glossaryService.EntriesByPerspective was just called")
	}
	return mock.EntriesByPerspectiveFunc(ctx, perspectiveID, limit, offset)
}
