package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/ports"
)

// InfoService serves the singleton site configuration, seeding defaults
// on first read.
type InfoService struct {
	repo   ports.InfoRepository
	logger zerolog.Logger
}

func NewInfoService(repo ports.InfoRepository, logger zerolog.Logger) *InfoService {
	return &InfoService{repo: repo, logger: logger}
}

func (s *InfoService) Get(ctx context.Context) (*domain.SiteConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, domain.ErrConfigNotFound) {
		return nil, err
	}

	seeded := domain.DefaultSiteConfig()
	if err := s.repo.Put(ctx, &seeded); err != nil {
		// Serving the defaults still works even if the seed write failed;
		// the next read will retry it.
		s.logger.Warn().Err(err).Msg("failed to seed default site config")
	}
	return &seeded, nil
}

func (s *InfoService) Update(ctx context.Context, cfg domain.SiteConfig) (*domain.SiteConfig, error) {
	if cfg.Options == nil {
		cfg.Options = []domain.Option{}
	}
	if err := s.repo.Put(ctx, &cfg); err != nil {
		return nil, err
	}
	s.logger.Info().Int("options", len(cfg.Options)).Msg("site config updated")
	return &cfg, nil
}
