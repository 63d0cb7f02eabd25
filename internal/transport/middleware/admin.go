package middleware

import (
	"context"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/pkg/ctxutil"
)

// RequireAdmin reports domain.ErrForbidden unless the context carries an
// admin role. It is called from individual handlers rather than installed as
// HTTP middleware, since most routes are open to any authenticated user.
func RequireAdmin(ctx context.Context) error {
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
