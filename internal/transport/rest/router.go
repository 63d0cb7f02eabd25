package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Glossary *GlossaryHandler
	Review   *ReviewHandler
	Health   *HealthHandler
}

// NewRouter wires all REST routes. Authentication is applied by middleware
// outside the router; handlers read the actor from the request context.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("GET /v1/terms", h.Glossary.SearchTerms)
	mux.HandleFunc("GET /v1/terms/{id}/entries", h.Glossary.EntriesByTerm)
	mux.HandleFunc("GET /v1/perspectives", h.Glossary.ListPerspectives)
	mux.HandleFunc("GET /v1/perspectives/{id}/entries", h.Glossary.EntriesByPerspective)

	mux.HandleFunc("POST /v1/entries", h.Glossary.CreateEntry)
	mux.HandleFunc("GET /v1/entries/{id}", h.Glossary.GetEntry)
	mux.HandleFunc("GET /v1/entries/{id}/view", h.Glossary.View)
	mux.HandleFunc("GET /v1/entries/{id}/history", h.Glossary.History)
	mux.HandleFunc("POST /v1/entries/{id}/drafts", h.Glossary.CreateDraft)
	mux.HandleFunc("POST /v1/entries/{id}/endorse", h.Review.EndorseEntry)

	mux.HandleFunc("GET /v1/drafts/{id}/eligibility", h.Review.Eligibility)
	mux.HandleFunc("POST /v1/drafts/{id}/approve", h.Review.Approve)
	mux.HandleFunc("POST /v1/drafts/{id}/request-review", h.Review.RequestReview)
	mux.HandleFunc("POST /v1/drafts/{id}/publish", h.Review.Publish)
	mux.HandleFunc("POST /v1/drafts/{id}/endorse", h.Review.Endorse)
	mux.HandleFunc("POST /v1/drafts/{id}/discard", h.Review.Discard)

	mux.HandleFunc("GET /v1/panels/my", h.Review.MyDrafts)
	mux.HandleFunc("GET /v1/panels/queue", h.Review.ReviewQueue)
	mux.HandleFunc("GET /v1/panels/reviewed", h.Review.Reviewed)

	return mux
}
