package ports

import (
	"context"

	"github.com/cartowiki/webapp/internal/core/domain"
)

// AuthService implements sign-up and login.
type AuthService interface {
	// SignUp creates a new enabled contributor account.
	SignUp(ctx context.Context, username, email, password string) (*domain.Account, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

// PrincipalResolver turns a verified token subject back into a caller
// identity. Resolution fails for unknown subjects and soft-deleted accounts.
type PrincipalResolver interface {
	ResolveSubject(ctx context.Context, username string) (domain.Principal, error)
}
