package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cartowiki/webapp/internal/core/domain"
	"github.com/cartowiki/webapp/internal/core/ports"
)

const (
	defaultTokenTTL       = 30 * time.Minute
	defaultUsernameMaxLen = 32
	defaultEmailMaxLen    = 128
)

// emailPattern is derived from the OWASP validation regex repository, with
// every repetition bounded (segments and labels <=10, TLD 2-7 letters) to
// rule out catastrophic backtracking on hostile input.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(\.[a-zA-Z0-9_+&*-]+){0,10}@([a-zA-Z0-9-]+\.){0,10}[a-zA-Z]{2,7}$`)

// AuthService implements sign-up, login, and token-subject resolution.
type AuthService struct {
	repo           ports.UserRepository
	jwtSecret      string
	tokenTTL       time.Duration
	usernameMaxLen int
	emailMaxLen    int
	logger         zerolog.Logger
}

// AuthLimits carries the field-length restrictions enforced before persisting
// an account. Zero values fall back to the defaults (32 / 128).
type AuthLimits struct {
	UsernameMaxLength int
	EmailMaxLength    int
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, limits AuthLimits, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	if limits.UsernameMaxLength <= 0 {
		limits.UsernameMaxLength = defaultUsernameMaxLen
	}
	if limits.EmailMaxLength <= 0 {
		limits.EmailMaxLength = defaultEmailMaxLen
	}
	return &AuthService{
		repo:           repo,
		jwtSecret:      jwtSecret,
		tokenTTL:       tokenTTL,
		usernameMaxLen: limits.UsernameMaxLength,
		emailMaxLen:    limits.EmailMaxLength,
		logger:         logger,
	}
}

// SignUp validates the fields, hashes the password, and persists a new
// enabled contributor account. Validation happens strictly before the write,
// so a rejected sign-up leaves no partial state. Uniqueness is checked
// against every account, soft-deleted ones included.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*domain.Account, error) {
	// Hash first: the stored credential is the 60-byte bcrypt digest, so the
	// plaintext length never matters to the store.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if len(username) > s.usernameMaxLen {
		return nil, domain.ErrUsernameTooLong
	}
	if len(email) > s.emailMaxLen {
		return nil, domain.ErrEmailTooLong
	}

	if taken, err := s.usernameTaken(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}

	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	if taken, err := s.emailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleContributor,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		// The unique indexes are the authoritative guard; a concurrent
		// sign-up can still lose the race after the checks above.
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create account")
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("id", created.ID).Msg("contributor account created")
	return created, nil
}

// Login verifies the credentials and issues a signed bearer token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account.Username)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, nil
}

// ResolveSubject re-resolves a verified token subject into a Principal.
// Unknown subjects and soft-deleted accounts fail with ErrInvalidCredentials:
// a token outliving its account must not authenticate.
func (s *AuthService) ResolveSubject(ctx context.Context, username string) (domain.Principal, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrInvalidCredentials
		}
		return domain.Principal{}, err
	}
	if !account.Enabled {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	return account.Principal(), nil
}

func (s *AuthService) generateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) usernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
