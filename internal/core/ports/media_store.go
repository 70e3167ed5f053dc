package ports

import "context"

// MediaStore is the external blob store holding uploaded image bytes. The
// image catalog is always derived by listing it; nothing is cached.
type MediaStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Get returns the stored bytes and content type, or
	// domain.ErrImageNotFound for an unknown key.
	Get(ctx context.Context, key string) ([]byte, string, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}
