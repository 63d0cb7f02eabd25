package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

var (
	_ entryRepo       = &entryRepoMock{}
	_ perspectiveRepo = &perspectiveRepoMock{}
	_ userRepo        = &userRepoMock{}
	_ auditLogger     = &auditLoggerMock{}
	_ notifier        = &notifierMock{}
	_ txManager       = &txManagerMock{}
)

type entryRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByIDsFunc          func(ctx context.Context, ids []uuid.UUID) ([]*domain.Entry, error)
	LockForPublishFunc    func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	SetPublishedDraftFunc func(ctx context.Context, id uuid.UUID, draftID *uuid.UUID) error

	calls struct {
		SetPublishedDraft []struct {
			Ctx     context.Context
			ID      uuid.UUID
			DraftID *uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Entry, error) {
	if mock.GetByIDsFunc == nil {
		panic("entryRepoMock.GetByIDsFunc: method is nil but entryRepo.GetByIDs was just called")
	}
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *entryRepoMock) LockForPublish(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.LockForPublishFunc == nil {
		panic("entryRepoMock.LockForPublishFunc: method is nil but entryRepo.LockForPublish was just called")
	}
	return mock.LockForPublishFunc(ctx, id)
}

func (mock *entryRepoMock) SetPublishedDraft(ctx context.Context, id uuid.UUID, draftID *uuid.UUID) error {
	if mock.SetPublishedDraftFunc == nil {
		panic("entryRepoMock.SetPublishedDraftFunc: method is nil but entryRepo.SetPublishedDraft was just called")
	}
	mock.lock.Lock()
	mock.calls.SetPublishedDraft = append(mock.calls.SetPublishedDraft, struct {
		Ctx     context.Context
		ID      uuid.UUID
		DraftID *uuid.UUID
	}{Ctx: ctx, ID: id, DraftID: draftID})
	mock.lock.Unlock()
	return mock.SetPublishedDraftFunc(ctx, id, draftID)
}

func (mock *entryRepoMock) SetPublishedDraftCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	DraftID *uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetPublishedDraft
}

type perspectiveRepoMock struct {
	CuratedPerspectiveIDsFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

func (mock *perspectiveRepoMock) CuratedPerspectiveIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.CuratedPerspectiveIDsFunc == nil {
		panic("perspectiveRepoMock.CuratedPerspectiveIDsFunc: method is nil but perspectiveRepo.CuratedPerspectiveIDs was just called")
	}
	return mock.CuratedPerspectiveIDsFunc(ctx, userID)
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lock sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	mock.lock.Lock()
	mock.calls.Log = append(mock.calls.Log, struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record})
	mock.lock.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Log
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

type notifierMock struct {
	DraftChangedFunc func(ctx context.Context, event domain.DraftEvent)

	calls struct {
		DraftChanged []struct {
			Ctx   context.Context
			Event domain.DraftEvent
		}
	}
	lock sync.RWMutex
}

func (mock *notifierMock) DraftChanged(ctx context.Context, event domain.DraftEvent) {
	mock.lock.Lock()
	mock.calls.DraftChanged = append(mock.calls.DraftChanged, struct {
		Ctx   context.Context
		Event domain.DraftEvent
	}{Ctx: ctx, Event: event})
	mock.lock.Unlock()
	if mock.DraftChangedFunc != nil {
		mock.DraftChangedFunc(ctx, event)
	}
}

func (mock *notifierMock) DraftChangedCalls() []struct {
	Ctx   context.Context
	Event domain.DraftEvent
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DraftChanged
}
