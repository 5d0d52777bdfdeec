package ports

import (
	"context"

	"github.com/cartowiki/webapp/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
//
// Lookups by username and email match soft-deleted accounts too: a deleted
// account keeps its names reserved. Uniqueness of username and email is
// ultimately guaranteed by the storage engine (unique indexes); implementations
// must translate duplicate-key failures into domain.ErrUsernameTaken or
// domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// FindAllEnabledByRoleIn returns all enabled accounts whose role is in roles.
	FindAllEnabledByRoleIn(ctx context.Context, roles []domain.Role) ([]*domain.Account, error)
}
