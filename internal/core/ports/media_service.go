package ports

import (
	"context"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// UploadImageInput carries one multipart file destined for the gallery.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaService manages the image catalog on top of the blob store.
type MediaService interface {
	List(ctx context.Context) ([]domain.ImageAsset, error)
	Get(ctx context.Context, id string) ([]byte, string, error)
	Upload(ctx context.Context, input UploadImageInput) (*domain.ImageAsset, error)
	Delete(ctx context.Context, id string) error
}
