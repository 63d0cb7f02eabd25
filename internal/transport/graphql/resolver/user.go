package resolver

import (
	"context"

	"github.com/glosshub/glossary-backend/internal/domain"
	"github.com/glosshub/glossary-backend/internal/service/auth"
)

// Register resolves the register mutation.
func (r *Resolver) Register(ctx context.Context, email, username, password string) (*auth.AuthResult, error) {
	return r.auth.Register(ctx, auth.RegisterInput{
		Email:    email,
		Username: username,
		Password: password,
	})
}

// Login resolves the login mutation.
func (r *Resolver) Login(ctx context.Context, email, password string) (*auth.AuthResult, error) {
	return r.auth.Login(ctx, auth.LoginInput{Email: email, Password: password})
}

// Me resolves the me query.
func (r *Resolver) Me(ctx context.Context) (*domain.User, error) {
	return r.auth.Me(ctx)
}
