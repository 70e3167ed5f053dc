package ports

import (
	"context"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// InfoRepository persists the singleton site configuration.
type InfoRepository interface {
	// Get returns domain.ErrConfigNotFound when the record has never been
	// written.
	Get(ctx context.Context) (*domain.SiteConfig, error)
	// Put overwrites the singleton wholesale, creating it if absent.
	Put(ctx context.Context, cfg *domain.SiteConfig) error
}
