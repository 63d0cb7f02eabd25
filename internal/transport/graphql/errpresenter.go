package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/pkg/ctxutil"
)

// domainCodes maps sentinel domain errors to the machine-readable codes
// exposed in GraphQL error extensions.
var domainCodes = []struct {
	sentinel error
	code     string
}{
	{domain.ErrNotFound, "NOT_FOUND"},
	{domain.ErrAlreadyExists, "ALREADY_EXISTS"},
	{domain.ErrValidation, "VALIDATION"},
	{domain.ErrEligibility, "ELIGIBILITY"},
	{domain.ErrUnauthorized, "UNAUTHENTICATED"},
	{domain.ErrForbidden, "FORBIDDEN"},
	{domain.ErrConflict, "CONFLICT"},
}

// NewErrorPresenter builds the gqlgen error presenter. Known domain errors
// surface their code and structured details; anything else is logged and
// collapsed to a generic internal error so driver messages never reach
// clients.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// gqlgen wraps resolver errors in a gqlerror; match against the cause.
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}

		for _, dc := range domainCodes {
			if !errors.Is(cause, dc.sentinel) {
				continue
			}
			gqlErr.Extensions = map[string]interface{}{"code": dc.code}

			var ve *domain.ValidationError
			if dc.code == "VALIDATION" && errors.As(err, &ve) {
				gqlErr.Extensions["fields"] = ve.Errors
			}
			var ee *domain.EligibilityError
			if dc.code == "ELIGIBILITY" && errors.As(err, &ee) {
				gqlErr.Extensions["status"] = ee.Status.String()
			}
			return gqlErr
		}

		log.ErrorContext(ctx, "unexpected GraphQL error",
			slog.String("error", cause.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		gqlErr.Message = "internal error"
		gqlErr.Extensions = map[string]interface{}{"code": "INTERNAL"}
		return gqlErr
	}
}
