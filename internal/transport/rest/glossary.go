package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/glossary"
	"github.com/glosshub/glossary-backend/internal/transport/middleware"
)

// glossaryService defines the minimal interface needed by GlossaryHandler.
type glossaryService interface {
	CreateEntry(ctx context.Context, input glossary.CreateEntryInput) (*glossary.CreateEntryResult, error)
	CreateDraft(ctx context.Context, input glossary.CreateDraftInput) (*domain.Draft, error)
	View(ctx context.Context, input glossary.ViewInput) (*glossary.DraftView, error)
	History(ctx context.Context, input glossary.HistoryInput) ([]*domain.Draft, error)
	SearchTerms(ctx context.Context, query string, limit int) ([]*domain.Term, error)
	ListPerspectives(ctx context.Context) ([]*domain.Perspective, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	EntriesByTerm(ctx context.Context, termID uuid.UUID) ([]*domain.Entry, error)
	EntriesByPerspective(ctx context.Context, perspectiveID uuid.UUID, limit, offset int) ([]*domain.Entry, error)
}

// GlossaryHandler serves entry and draft creation plus the public read
// surface of terms, perspectives, and entries.
type GlossaryHandler struct {
	svc    glossaryService
	quorum int
	log    *slog.Logger
}

func NewGlossaryHandler(svc glossaryService, quorum int, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{
		svc:    svc,
		quorum: quorum,
		log:    logger.With("handler", "glossary"),
	}
}

type createEntryRequest struct {
	TermText      string `json:"termText"`
	PerspectiveID string `json:"perspectiveId"`
	Content       string `json:"content"`
	Official      bool   `json:"official"`
}

type createEntryResponse struct {
	Term        termResponse  `json:"term"`
	Entry       entryResponse `json:"entry"`
	Draft       draftResponse `json:"draft"`
	TermCreated bool          `json:"termCreated"`
}

func (h *GlossaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Official entries carry curated weight; only admins may create them.
	if req.Official {
		if err := middleware.RequireAdmin(r.Context()); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	// A malformed perspective ID falls through as uuid.Nil and is rejected
	// by input validation together with the other field errors.
	perspectiveID, _ := uuid.Parse(req.PerspectiveID)

	result, err := h.svc.CreateEntry(r.Context(), glossary.CreateEntryInput{
		TermText:      req.TermText,
		PerspectiveID: perspectiveID,
		Content:       req.Content,
		Official:      req.Official,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createEntryResponse{
		Term:        toTermResponse(result.Term),
		Entry:       toEntryResponse(result.Entry),
		Draft:       toDraftResponse(result.Draft, h.quorum),
		TermCreated: result.TermCreated,
	})
}

type createDraftRequest struct {
	Content         string  `json:"content"`
	ReplacesDraftID *string `json:"replacesDraftId,omitempty"`
}

func (h *GlossaryHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var req createDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := glossary.CreateDraftInput{
		EntryID: entryID,
		Content: req.Content,
	}
	if req.ReplacesDraftID != nil {
		id, err := uuid.Parse(*req.ReplacesDraftID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid replacesDraftId")
			return
		}
		input.ReplacesDraftID = &id
	}

	draft, err := h.svc.CreateDraft(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDraftResponse(draft, h.quorum))
}

// View resolves the ?draft= selector: "published", "latest" (the default),
// or a specific draft UUID.
func (h *GlossaryHandler) View(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var selector glossary.DraftSelector
	switch sel := r.URL.Query().Get("draft"); sel {
	case "", "latest":
		selector.Latest = true
	case "published":
		selector.Published = true
	default:
		draftID, err := uuid.Parse(sel)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid draft selector")
			return
		}
		selector.DraftID = &draftID
	}

	view, err := h.svc.View(r.Context(), glossary.ViewInput{
		EntryID:  entryID,
		Selector: selector,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view, h.quorum))
}

func (h *GlossaryHandler) History(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	limit, offset := pageParams(r)
	drafts, err := h.svc.History(r.Context(), glossary.HistoryInput{
		EntryID: entryID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]draftResponse, len(drafts))
	for i, d := range drafts {
		out[i] = toDraftResponse(d, h.quorum)
	}
	writeJSON(w, http.StatusOK, map[string]any{"drafts": out})
}

func (h *GlossaryHandler) SearchTerms(w http.ResponseWriter, r *http.Request) {
	limit, _ := pageParams(r)
	terms, err := h.svc.SearchTerms(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]termResponse, len(terms))
	for i, t := range terms {
		out[i] = toTermResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"terms": out})
}

func (h *GlossaryHandler) ListPerspectives(w http.ResponseWriter, r *http.Request) {
	perspectives, err := h.svc.ListPerspectives(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]perspectiveResponse, len(perspectives))
	for i, p := range perspectives {
		out[i] = toPerspectiveResponse(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"perspectives": out})
}

func (h *GlossaryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *GlossaryHandler) EntriesByTerm(w http.ResponseWriter, r *http.Request) {
	termID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid term id")
		return
	}

	entries, err := h.svc.EntriesByTerm(r.Context(), termID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": entryResponses(entries)})
}

func (h *GlossaryHandler) EntriesByPerspective(w http.ResponseWriter, r *http.Request) {
	perspectiveID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid perspective id")
		return
	}

	limit, offset := pageParams(r)
	entries, err := h.svc.EntriesByPerspective(r.Context(), perspectiveID, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": entryResponses(entries)})
}

func entryResponses(entries []*domain.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

// pageParams reads limit and offset query parameters. Missing or garbage
// values come back as zero; services normalize the actual bounds.
func pageParams(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}
