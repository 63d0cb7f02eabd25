package glossary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// CreateEntryInput holds the parameters for creating an entry, creating the
// term on the fly when it does not exist yet.
type CreateEntryInput struct {
	TermText      string
	PerspectiveID uuid.UUID
	Content       string
	Official      bool
}

// Validate checks all fields and collects all errors. Length limits come
// from service configuration, so validation runs through the service.
func (i CreateEntryInput) validate(cfg Config) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.TermText)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "term_text", Message: "required"})
	}
	if len(text) > cfg.MaxTermLength {
		errs = append(errs, domain.FieldError{Field: "term_text", Message: "too long"})
	}

	if i.PerspectiveID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "perspective_id", Message: "required"})
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > cfg.MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateDraftInput holds the parameters for adding a draft to an existing
// entry.
type CreateDraftInput struct {
	EntryID uuid.UUID
	Content string

	// ReplacesDraftID optionally records which draft this one supersedes.
	// Purely informational lineage; approvals never carry over.
	ReplacesDraftID *uuid.UUID
}

func (i CreateDraftInput) validate(cfg Config) error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > cfg.MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds the parameters for listing an entry's draft history.
type HistoryInput struct {
	EntryID uuid.UUID
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}
	return nil
}

// DraftSelector picks which draft of an entry to view. Exactly one of the
// fields is set.
type DraftSelector struct {
	// Published selects the entry's currently published draft.
	Published bool
	// Latest selects the newest active draft.
	Latest bool
	// DraftID selects a specific historical draft.
	DraftID *uuid.UUID
}

func (sel DraftSelector) validate() error {
	n := 0
	if sel.Published {
		n++
	}
	if sel.Latest {
		n++
	}
	if sel.DraftID != nil {
		n++
	}
	if n != 1 {
		return domain.NewValidationError("selector", "exactly one of published, latest, or draft_id must be set")
	}
	return nil
}

// ViewInput holds the parameters for viewing one draft of an entry.
type ViewInput struct {
	EntryID  uuid.UUID
	Selector DraftSelector
}

// Validate checks all fields and collects all errors.
func (i ViewInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}
	return i.Selector.validate()
}
