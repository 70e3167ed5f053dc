package ports

import (
	"context"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// AccountRepository defines persistence for user accounts, keyed by email.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	UpdatePhone(ctx context.Context, email, phoneNumber string) (*domain.Account, error)
}
