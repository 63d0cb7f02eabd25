package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
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
	Quorum() int
}

// ReviewHandler serves the draft workflow: approvals, review requests,
// publication, endorsement, discarding, and the eligibility panels.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
		log: logger.With("handler", "review"),
	}
}

type approveResponse struct {
	Draft      draftResponse      `json:"draft"`
	Added      bool               `json:"added"`
	Assessment assessmentResponse `json:"assessment"`
}

func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	draftID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	result, err := h.svc.Approve(r.Context(), review.ApproveInput{DraftID: draftID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, approveResponse{
		Draft:      toDraftResponse(result.Draft, h.svc.Quorum()),
		Added:      result.Added,
		Assessment: toAssessmentResponse(result.Assessment),
	})
}

type requestReviewRequest struct {
	ReviewerIDs []string `json:"reviewerIds"`
}

func (h *ReviewHandler) RequestReview(w http.ResponseWriter, r *http.Request) {
	draftID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	var req requestReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reviewerIDs := make([]uuid.UUID, 0, len(req.ReviewerIDs))
	for _, raw := range req.ReviewerIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid reviewer id")
			return
		}
		reviewerIDs = append(reviewerIDs, id)
	}

	draft, err := h.svc.RequestReview(r.Context(), review.RequestReviewInput{
		DraftID:     draftID,
		ReviewerIDs: reviewerIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(draft, h.svc.Quorum()))
}

type publishResponse struct {
	Draft            draftResponse `json:"draft"`
	Entry            entryResponse `json:"entry"`
	AlreadyPublished bool          `json:"alreadyPublished"`
	Retired          int           `json:"retired"`
}

func (h *ReviewHandler) Publish(w http.ResponseWriter, r *http.Request) {
	draftID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	result, err := h.svc.Publish(r.Context(), review.PublishInput{DraftID: draftID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, publishResponse{
		Draft:            toDraftResponse(result.Draft, h.svc.Quorum()),
		Entry:            toEntryResponse(result.Entry),
		AlreadyPublished: result.AlreadyPublished,
		Retired:          result.Retired,
	})
}

func (h *ReviewHandler) Endorse(w http.ResponseWriter, r *http.Request) {
	draftID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	draft, err := h.svc.Endorse(r.Context(), review.EndorseInput{DraftID: draftID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(draft, h.svc.Quorum()))
}

// EndorseEntry endorses the entry's published draft, or its latest draft
// when nothing has been published yet.
func (h *ReviewHandler) EndorseEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	draft, err := h.svc.EndorseEntry(r.Context(), entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(draft, h.svc.Quorum()))
}

func (h *ReviewHandler) Discard(w http.ResponseWriter, r *http.Request) {
	draftID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	draft, err := h.svc.Discard(r.Context(), review.DiscardInput{DraftID: draftID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(draft, h.svc.Quorum()))
}

func (h *ReviewHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	draftID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	assessment, err := h.svc.Assess(r.Context(), draftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssessmentResponse(assessment))
}

func (h *ReviewHandler) MyDrafts(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.MyDrafts)
}

func (h *ReviewHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.ReviewQueue)
}

func (h *ReviewHandler) Reviewed(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.Reviewed)
}

func (h *ReviewHandler) panel(w http.ResponseWriter, r *http.Request, fn func(context.Context, review.PanelInput) ([]review.PanelItem, error)) {
	limit, offset := pageParams(r)
	input := review.PanelInput{Limit: limit, Offset: offset}
	if q := r.URL.Query().Get("q"); q != "" {
		input.Search = &q
	}

	items, err := fn(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": toPanelItemResponses(items, h.svc.Quorum()),
	})
}
