package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cartowiki/webapp/internal/core/domain"
	"github.com/cartowiki/webapp/internal/core/ports"
)

// UserService implements privilege-gated account management: lookup, listing,
// soft deletion, and the multi-field edit pipeline.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// GetAccount returns the target account when the requester holds equal or
// higher privilege than it.
func (s *UserService) GetAccount(ctx context.Context, id string, requester domain.Principal) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requester.Role.HasEqualOrHigherPrivilegeThan(account.Role) {
		return nil, domain.ErrForbidden
	}

	return account, nil
}

// ListAccounts returns every enabled account whose role is at or below the
// requester's. An unknown-role requester sees nothing.
func (s *UserService) ListAccounts(ctx context.Context, requester domain.Principal) ([]*domain.Account, error) {
	roles := requester.Role.RolesAtOrBelow()
	if len(roles) == 0 {
		return []*domain.Account{}, nil
	}

	return s.repo.FindAllEnabledByRoleIn(ctx, roles)
}

// DeleteAccount soft-deletes the target: the record stays, keeping its
// username and email reserved. An already-deleted target surfaces as not
// found, so a second delete of the same id fails the same way as a bogus id.
func (s *UserService) DeleteAccount(ctx context.Context, id string, requester domain.Principal) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !account.Enabled {
		return domain.ErrUserNotFound
	}
	if !requester.Role.HasEqualOrHigherPrivilegeThan(account.Role) {
		return domain.ErrForbidden
	}

	account.Enabled = false
	account.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Str("requester", requester.Username).Msg("account soft-deleted")
	return nil
}

// EditAccount applies the non-empty fields of input to the target account in
// order: username, email, password, role. All changes accumulate on an
// in-memory copy and are persisted in one write at the end, so a failing
// field aborts the whole edit without partial application.
func (s *UserService) EditAccount(ctx context.Context, id string, requester domain.Principal, input ports.EditAccountInput) error {
	target, err := s.GetAccount(ctx, id, requester)
	if err != nil {
		return err
	}

	updated := *target

	if input.Username != "" {
		if err := s.changeUsername(ctx, &updated, input.Username); err != nil {
			return err
		}
	}

	if input.Email != "" {
		if err := s.changeEmail(ctx, &updated, input.Email); err != nil {
			return err
		}
	}

	if input.Password != "" {
		if err := changePassword(&updated, input.Password); err != nil {
			return err
		}
	}

	if input.Role != "" {
		if err := changeRole(&updated, input.Role, requester); err != nil {
			return err
		}
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, &updated); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Str("requester", requester.Username).Msg("account edited")
	return nil
}

func (s *UserService) changeUsername(ctx context.Context, account *domain.Account, username string) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if existing != nil && existing.ID != account.ID {
		return domain.ErrUsernameTaken
	}

	account.Username = username
	return nil
}

func (s *UserService) changeEmail(ctx context.Context, account *domain.Account, email string) error {
	if !emailPattern.MatchString(email) {
		return domain.ErrInvalidEmail
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if existing != nil && existing.ID != account.ID {
		return domain.ErrEmailTaken
	}

	account.Email = email
	return nil
}

func changePassword(account *domain.Account, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = string(hash)
	return nil
}

// changeRole enforces the role-change rules: the role name must be one of the
// three known roles, contributors may never change roles, and administrators
// may not promote anyone to superadministrator.
func changeRole(account *domain.Account, roleName string, requester domain.Principal) error {
	role := domain.ParseRole(roleName)
	if !role.Known() {
		return domain.ErrUnknownRole
	}

	if requester.Role == domain.RoleContributor {
		return domain.ErrForbidden
	}
	if requester.Role == domain.RoleAdministrator && role == domain.RoleSuperadministrator {
		return domain.ErrForbidden
	}

	account.Role = role
	return nil
}
