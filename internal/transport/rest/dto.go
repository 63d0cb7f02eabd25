package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/richtext"
	"github.com/glosshub/glossary-backend/internal/service/glossary"
	"github.com/glosshub/glossary-backend/internal/service/review"
)

type termResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	SortKey  string `json:"sortKey"`
	Official bool   `json:"official"`
}

type perspectiveResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CuratorIDs []string `json:"curatorIds"`
}

type entryResponse struct {
	ID               string  `json:"id"`
	TermID           string  `json:"termId"`
	PerspectiveID    string  `json:"perspectiveId"`
	PublishedDraftID *string `json:"publishedDraftId,omitempty"`
	Official         bool    `json:"official"`
}

type draftResponse struct {
	ID                   string     `json:"id"`
	EntryID              string     `json:"entryId"`
	AuthorID             string     `json:"authorId"`
	Content              string     `json:"content"`
	ReplacesDraftID      *string    `json:"replacesDraftId,omitempty"`
	State                string     `json:"state"`
	ApproverIDs          []string   `json:"approverIds"`
	RequestedReviewerIDs []string   `json:"requestedReviewerIds"`
	Published            bool       `json:"published"`
	PublishedAt          *time.Time `json:"publishedAt,omitempty"`
	EndorsedBy           *string    `json:"endorsedBy,omitempty"`
	DiscardedAt          *time.Time `json:"discardedAt,omitempty"`
	CommentCount         int        `json:"commentCount"`
	CreatedAt            time.Time  `json:"createdAt"`
}

type assessmentResponse struct {
	Status             string `json:"status"`
	Reason             string `json:"reason"`
	ApprovalCount      int    `json:"approvalCount"`
	RemainingApprovals int    `json:"remainingApprovals"`
	ApprovalPercentage int    `json:"approvalPercentage"`
	CanApprove         bool   `json:"canApprove"`
	CanPublish         bool   `json:"canPublish"`
	CanRequestReview   bool   `json:"canRequestReview"`
	CanDiscard         bool   `json:"canDiscard"`
	CanEndorse         bool   `json:"canEndorse"`
}

type spanResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type panelItemResponse struct {
	Draft      draftResponse      `json:"draft"`
	Entry      entryResponse      `json:"entry"`
	Assessment assessmentResponse `json:"assessment"`
}

func toTermResponse(t *domain.Term) termResponse {
	return termResponse{
		ID:       t.ID.String(),
		Text:     t.Text,
		SortKey:  t.SortKey,
		Official: t.Official,
	}
}

func toPerspectiveResponse(p *domain.Perspective) perspectiveResponse {
	return perspectiveResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		CuratorIDs: uuidStrings(p.CuratorIDs),
	}
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:               e.ID.String(),
		TermID:           e.TermID.String(),
		PerspectiveID:    e.PerspectiveID.String(),
		PublishedDraftID: uuidPtrString(e.PublishedDraftID),
		Official:         e.Official,
	}
}

func toDraftResponse(d *domain.Draft, quorum int) draftResponse {
	return draftResponse{
		ID:                   d.ID.String(),
		EntryID:              d.EntryID.String(),
		AuthorID:             d.AuthorID.String(),
		Content:              d.Content,
		ReplacesDraftID:      uuidPtrString(d.ReplacesDraftID),
		State:                d.State(quorum).String(),
		ApproverIDs:          uuidStrings(d.ApproverIDs),
		RequestedReviewerIDs: uuidStrings(d.RequestedReviewerIDs),
		Published:            d.Published,
		PublishedAt:          d.PublishedAt,
		EndorsedBy:           uuidPtrString(d.EndorsedBy),
		DiscardedAt:          d.DiscardedAt,
		CommentCount:         d.CommentCount,
		CreatedAt:            d.CreatedAt,
	}
}

func toAssessmentResponse(a domain.Assessment) assessmentResponse {
	return assessmentResponse{
		Status:             a.Status.String(),
		Reason:             a.Reason,
		ApprovalCount:      a.ApprovalCount,
		RemainingApprovals: a.RemainingApprovals,
		ApprovalPercentage: a.ApprovalPercentage,
		CanApprove:         a.CanApprove,
		CanPublish:         a.CanPublish,
		CanRequestReview:   a.CanRequestReview,
		CanDiscard:         a.CanDiscard,
		CanEndorse:         a.CanEndorse,
	}
}

func toSpanResponses(spans []richtext.Span) []spanResponse {
	if spans == nil {
		return nil
	}
	out := make([]spanResponse, len(spans))
	for i, s := range spans {
		out[i] = spanResponse{Kind: spanKindString(s.Kind), Text: s.Text}
	}
	return out
}

func spanKindString(k richtext.SpanKind) string {
	switch k {
	case richtext.SpanInsert:
		return "INSERT"
	case richtext.SpanDelete:
		return "DELETE"
	default:
		return "EQUAL"
	}
}

func toPanelItemResponses(items []review.PanelItem, quorum int) []panelItemResponse {
	out := make([]panelItemResponse, len(items))
	for i, item := range items {
		out[i] = panelItemResponse{
			Draft:      toDraftResponse(item.Draft, quorum),
			Entry:      toEntryResponse(item.Entry),
			Assessment: toAssessmentResponse(item.Assessment),
		}
	}
	return out
}

type viewResponse struct {
	Entry       entryResponse  `json:"entry"`
	Draft       draftResponse  `json:"draft"`
	IsPublished bool           `json:"isPublished"`
	Diff        []spanResponse `json:"diff,omitempty"`
}

func toViewResponse(v *glossary.DraftView, quorum int) viewResponse {
	return viewResponse{
		Entry:       toEntryResponse(v.Entry),
		Draft:       toDraftResponse(v.Draft, quorum),
		IsPublished: v.IsPublished,
		Diff:        toSpanResponses(v.Diff),
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
