package ports

import (
	"context"

	"github.com/cartowiki/webapp/internal/core/domain"
)

// EditAccountInput is the diff applied by EditAccount. Empty fields are left
// unchanged; non-empty fields are validated and applied in declaration order.
type EditAccountInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UserService defines the privilege-gated account management operations.
// Every operation takes the requesting principal and enforces the role
// ordering before touching the target account.
type UserService interface {
	GetAccount(ctx context.Context, id string, requester domain.Principal) (*domain.Account, error)
	ListAccounts(ctx context.Context, requester domain.Principal) ([]*domain.Account, error)
	DeleteAccount(ctx context.Context, id string, requester domain.Principal) error
	EditAccount(ctx context.Context, id string, requester domain.Principal, input EditAccountInput) error
}
