package review

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/pkg/ctxutil"
)

//go:generate moq -out draft_repo_mock_test.go -pkg review . draftRepo

const testQuorum = 2

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture wires a Service over mocks with pass-through tx and no-op audit.
type fixture struct {
	drafts       *draftRepoMock
	entries      *entryRepoMock
	perspectives *perspectiveRepoMock
	users        *userRepoMock
	audit        *auditLoggerMock
	notify       *notifierMock
	tx           *txManagerMock
	svc          *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		drafts:  &draftRepoMock{},
		entries: &entryRepoMock{},
		users:   &userRepoMock{},
		perspectives: &perspectiveRepoMock{
			CuratedPerspectiveIDsFunc: func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
				return nil, nil
			},
		},
		audit: &auditLoggerMock{
			LogFunc: func(ctx context.Context, record domain.AuditRecord) error { return nil },
		},
		notify: &notifierMock{},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		},
	}
	f.svc = NewService(testLogger(), f.drafts, f.entries, f.perspectives, f.users, f.audit, f.notify, f.tx, testQuorum)
	return f
}

// curatorOf makes userID a curator of the given perspectives in this fixture.
func (f *fixture) curatorOf(userID uuid.UUID, perspectiveIDs ...uuid.UUID) {
	f.perspectives.CuratedPerspectiveIDsFunc = func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
		if id == userID {
			return perspectiveIDs, nil
		}
		return nil, nil
	}
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func adminCtx(userID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithUserRole(ctx, domain.UserRoleAdmin.String())
}

func testEntry(perspectiveID uuid.UUID) *domain.Entry {
	return &domain.Entry{
		ID:            uuid.New(),
		TermID:        uuid.New(),
		PerspectiveID: perspectiveID,
		CreatedAt:     time.Now(),
	}
}

func testDraft(entry *domain.Entry, authorID uuid.UUID) *domain.Draft {
	return &domain.Draft{
		ID:        uuid.New(),
		EntryID:   entry.ID,
		AuthorID:  authorID,
		Content:   "<p>a definition</p>",
		CreatedAt: time.Now(),
	}
}

// stubDraftWithEntry makes GetByID on both repos return the given pair.
func (f *fixture) stubDraftWithEntry(d *domain.Draft, e *domain.Entry) {
	f.drafts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
		if id != d.ID {
			return nil, domain.ErrNotFound
		}
		copied := *d
		return &copied, nil
	}
	f.entries.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
		if id != e.ID {
			return nil, domain.ErrNotFound
		}
		copied := *e
		return &copied, nil
	}
}
