package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Users by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Terms by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newTermsBatchFn(repo termRepo) dataloader.BatchFunc[uuid.UUID, *domain.Term] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Term] {
		terms, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Term](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Term, len(terms))
		for _, t := range terms {
			byID[t.ID] = t
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Perspectives by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newPerspectivesBatchFn(repo perspectiveRepo) dataloader.BatchFunc[uuid.UUID, *domain.Perspective] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Perspective] {
		perspectives, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Perspective](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Perspective, len(perspectives))
		for _, p := range perspectives {
			byID[p.ID] = p
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Entries by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newEntriesBatchFn(repo entryRepo) dataloader.BatchFunc[uuid.UUID, *domain.Entry] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Entry] {
		entries, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Entry](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Entry, len(entries))
		for _, e := range entries {
			byID[e.ID] = e
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Drafts by ID (1:1 nullable)
// ---------------------------------------------------------------------------

func newDraftsBatchFn(repo draftRepo) dataloader.BatchFunc[uuid.UUID, *domain.Draft] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Draft] {
		drafts, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Draft](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Draft, len(drafts))
		for _, d := range drafts {
			byID[d.ID] = d
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Drafts by EntryID (1:N)
// ---------------------------------------------------------------------------

func newDraftsByEntryBatchFn(repo draftRepo) dataloader.BatchFunc[uuid.UUID, []*domain.Draft] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.Draft] {
		drafts, err := repo.ListByEntryIDs(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.Draft](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.Draft, len(keys))
		for _, d := range drafts {
			grouped[d.EntryID] = append(grouped[d.EntryID], d)
		}

		return mapResults(keys, grouped, emptySlice[*domain.Draft])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// oneResults maps 1:1 lookups back to key order; missing keys yield nil data.
func oneResults[V any](keys []uuid.UUID, byID map[uuid.UUID]*V) []*dataloader.Result[*V] {
	results := make([]*dataloader.Result[*V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[*V]{Data: byID[key]}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
