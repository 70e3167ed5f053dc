package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/ports"
)

// AuthService implements signup, login and profile maintenance.
type AuthService struct {
	repo    ports.AccountRepository
	tokens  ports.TokenService
	metrics ports.AuthMetrics
	logger  zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, tokens ports.TokenService, metrics ports.AuthMetrics, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, metrics: metrics, logger: logger}
}

// Signup creates a cliente account and logs it in. The public endpoint
// never creates admins; those are provisioned out of band.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	account, err := s.repo.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCliente,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(account.Email, account.Role)
	if err != nil {
		return "", nil, err
	}

	s.metrics.AccountCreated()
	s.logger.Info().Str("email", account.Email).Msg("account created")
	return token, account, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.metrics.LoginAttempt(false)
		// An unknown email must be indistinguishable from a wrong
		// password, or the endpoint enumerates registered emails.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.metrics.LoginAttempt(false)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Email, account.Role)
	if err != nil {
		return "", nil, err
	}

	s.metrics.LoginAttempt(true)
	return token, account, nil
}

// UpdatePhone sets the caller's contact phone. Callers can only ever
// reach their own profile: the email comes from the verified claims.
func (s *AuthService) UpdatePhone(ctx context.Context, email, phoneNumber string) (*domain.Account, error) {
	return s.repo.UpdatePhone(ctx, email, phoneNumber)
}

// ListAccounts returns every account. Password hashes are excluded from
// serialization by the domain type itself.
func (s *AuthService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}
