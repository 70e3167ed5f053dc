package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/ports"
)

// uuidLen is the length of a canonical UUID string; storage keys have the
// form "<uuid>-<original filename>".
const uuidLen = 36

// MediaService manages the gallery on top of the blob store. The catalog
// is derived from the store on every list; nothing is cached.
type MediaService struct {
	store   ports.MediaStore
	metrics ports.MediaMetrics
	logger  zerolog.Logger
}

func NewMediaService(store ports.MediaStore, metrics ports.MediaMetrics, logger zerolog.Logger) *MediaService {
	return &MediaService{store: store, metrics: metrics, logger: logger}
}

func (s *MediaService) List(ctx context.Context) ([]domain.ImageAsset, error) {
	keys, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	assets := make([]domain.ImageAsset, 0, len(keys))
	for _, key := range keys {
		assets = append(assets, assetForKey(key))
	}
	return assets, nil
}

func (s *MediaService) Get(ctx context.Context, id string) ([]byte, string, error) {
	return s.store.Get(ctx, id)
}

// Upload stores the bytes under a collision-resistant key and returns the
// catalog entry.
func (s *MediaService) Upload(ctx context.Context, input ports.UploadImageInput) (*domain.ImageAsset, error) {
	key := uuid.NewString() + "-" + input.Filename
	if err := s.store.Put(ctx, key, input.Data, input.ContentType); err != nil {
		return nil, err
	}

	s.metrics.ImageUploaded()
	s.logger.Info().Str("key", key).Int("bytes", len(input.Data)).Msg("image uploaded")

	asset := assetForKey(key)
	return &asset, nil
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("key", id).Msg("image deleted")
	return nil
}

// assetForKey synthesizes the catalog entry for a storage key. The URL
// points back at this API, which streams from the store, so the bucket
// can stay private. Alt text recovers the original filename.
func assetForKey(key string) domain.ImageAsset {
	alt := key
	if len(key) > uuidLen+1 && key[uuidLen] == '-' {
		alt = key[uuidLen+1:]
	}
	return domain.ImageAsset{ID: key, URL: "/images/" + key, Alt: alt}
}
