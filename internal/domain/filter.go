package domain

// DraftFilter defines parameters for the eligibility-scoped draft list
// queries backing the panel views.
type DraftFilter struct {
	// Filter selects the actor/draft relation (own, can-approve, approved).
	Filter DraftListFilter

	// Search performs ILIKE '%...%' on the term sort key.
	// nil or empty string means no text filter.
	Search *string

	// Limit is the maximum number of drafts to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of drafts to skip.
	Offset int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Normalize applies defaults and clamps values.
func (f *DraftFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
