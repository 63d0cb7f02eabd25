package glossary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

var (
	_ termRepo        = &termRepoMock{}
	_ perspectiveRepo = &perspectiveRepoMock{}
	_ entryRepo       = &entryRepoMock{}
	_ draftRepo       = &draftRepoMock{}
	_ auditLogger     = &auditLoggerMock{}
	_ txManager       = &txManagerMock{}
)

type termRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	GetBySortKeyFunc func(ctx context.Context, sortKey string) (*domain.Term, error)
	SearchFunc       func(ctx context.Context, prefix string, limit int) ([]*domain.Term, error)
	CreateFunc       func(ctx context.Context, t *domain.Term) (*domain.Term, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Term *domain.Term
		}
	}
	lock sync.RWMutex
}

func (mock *termRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	if mock.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc: method is nil but termRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *termRepoMock) GetBySortKey(ctx context.Context, sortKey string) (*domain.Term, error) {
	if mock.GetBySortKeyFunc == nil {
		panic("termRepoMock.GetBySortKeyFunc: method is nil but termRepo.GetBySortKey was just called")
	}
	return mock.GetBySortKeyFunc(ctx, sortKey)
}

func (mock *termRepoMock) Search(ctx context.Context, prefix string, limit int) ([]*domain.Term, error) {
	if mock.SearchFunc == nil {
		panic("termRepoMock.SearchFunc: method is nil but termRepo.Search was just called")
	}
	return mock.SearchFunc(ctx, prefix, limit)
}

func (mock *termRepoMock) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	if mock.CreateFunc == nil {
		panic("termRepoMock.CreateFunc: method is nil but termRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx  context.Context
		Term *domain.Term
	}{Ctx: ctx, Term: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *termRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Term *domain.Term
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

type perspectiveRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Perspective, error)
	ListFunc    func(ctx context.Context) ([]*domain.Perspective, error)
}

func (mock *perspectiveRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Perspective, error) {
	if mock.GetByIDFunc == nil {
		panic("perspectiveRepoMock.GetByIDFunc: method is nil but perspectiveRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *perspectiveRepoMock) List(ctx context.Context) ([]*domain.Perspective, error) {
	if mock.ListFunc == nil {
		panic("perspectiveRepoMock.ListFunc: method is nil but perspectiveRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

type entryRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByPairFunc         func(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error)
	ListByTermFunc        func(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error)
	ListByPerspectiveFunc func(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error)
	CreateFunc            func(ctx context.Context, termID, perspectiveID uuid.UUID, official bool) (*domain.Entry, error)
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByPair(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error) {
	if mock.GetByPairFunc == nil {
		panic("entryRepoMock.GetByPairFunc: method is nil but entryRepo.GetByPair was just called")
	}
	return mock.GetByPairFunc(ctx, termID, perspectiveID)
}

func (mock *entryRepoMock) ListByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error) {
	if mock.ListByTermFunc == nil {
		panic("entryRepoMock.ListByTermFunc: method is nil but entryRepo.ListByTerm was just called")
	}
	return mock.ListByTermFunc(ctx, termID)
}

func (mock *entryRepoMock) ListByPerspective(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error) {
	if mock.ListByPerspectiveFunc == nil {
		panic("entryRepoMock.ListByPerspectiveFunc: method is nil but entryRepo.ListByPerspective was just called")
	}
	return mock.ListByPerspectiveFunc(ctx, perspectiveID, limit, offset)
}

func (mock *entryRepoMock) Create(ctx context.Context, termID, perspectiveID uuid.UUID, official bool) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, termID, perspectiveID, official)
}

type draftRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	ListByEntryFunc    func(ctx context.Context, entryID uuid.UUID, limit, offset int) ([]*domain.Draft, error)
	ListByEntryIDsFunc func(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.Draft, error)
	CreateFunc         func(ctx context.Context, d *domain.Draft) (*domain.Draft, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Draft *domain.Draft
		}
	}
	lock sync.RWMutex
}

func (mock *draftRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	if mock.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but draftRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *draftRepoMock) ListByEntry(ctx context.Context, entryID uuid.UUID, limit, offset int) ([]*domain.Draft, error) {
	if mock.ListByEntryFunc == nil {
		panic("draftRepoMock.ListByEntryFunc: method is nil but draftRepo.ListByEntry was just called")
	}
	return mock.ListByEntryFunc(ctx, entryID, limit, offset)
}

func (mock *draftRepoMock) ListByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.Draft, error) {
	if mock.ListByEntryIDsFunc == nil {
		panic("draftRepoMock.ListByEntryIDsFunc: method is nil but draftRepo.ListByEntryIDs was just called")
	}
	return mock.ListByEntryIDsFunc(ctx, entryIDs)
}

func (mock *draftRepoMock) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	if mock.CreateFunc == nil {
		panic("draftRepoMock.CreateFunc: method is nil but draftRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx   context.Context
		Draft *domain.Draft
	}{Ctx: ctx, Draft: d})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *draftRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Draft *domain.Draft
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
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
