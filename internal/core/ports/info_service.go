package ports

import (
	"context"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// InfoService serves the singleton site configuration.
type InfoService interface {
	// Get seeds the store with defaults on first read.
	Get(ctx context.Context) (*domain.SiteConfig, error)
	Update(ctx context.Context, cfg domain.SiteConfig) (*domain.SiteConfig, error)
}
