package ports

import (
	"context"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// AuthService implements signup, login and profile maintenance. Signup
// always creates a cliente account and logs the new user in; roles are
// fixed at creation (no self-promotion).
type AuthService interface {
	Signup(ctx context.Context, email, password string) (string, *domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	UpdatePhone(ctx context.Context, email, phoneNumber string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}
