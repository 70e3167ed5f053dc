package service

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/ports"
)

type stubObject struct {
	data        []byte
	contentType string
}

type stubMediaStore struct {
	objects map[string]stubObject
}

func newStubMediaStore() *stubMediaStore {
	return &stubMediaStore{objects: make(map[string]stubObject)}
}

func (s *stubMediaStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	s.objects[key] = stubObject{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (s *stubMediaStore) Get(_ context.Context, key string) ([]byte, string, error) {
	obj, ok := s.objects[key]
	if !ok {
		return nil, "", domain.ErrImageNotFound
	}
	return obj.data, obj.contentType, nil
}

func (s *stubMediaStore) List(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *stubMediaStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func TestMediaService_UploadListGetRoundTrip(t *testing.T) {
	store := newStubMediaStore()
	svc := NewMediaService(store, noopMetrics{}, zerolog.Nop())

	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	asset, err := svc.Upload(context.Background(), ports.UploadImageInput{
		Filename:    "varanda.png",
		ContentType: "image/png",
		Data:        payload,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if !strings.HasSuffix(asset.ID, "-varanda.png") {
		t.Fatalf("key should embed the original filename, got %q", asset.ID)
	}
	if asset.URL != "/images/"+asset.ID {
		t.Fatalf("unexpected URL: %q", asset.URL)
	}
	if asset.Alt != "varanda.png" {
		t.Fatalf("alt should recover the original filename, got %q", asset.Alt)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != asset.ID {
		t.Fatalf("uploaded image missing from catalog: %+v", listed)
	}

	data, contentType, err := svc.Get(context.Background(), asset.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("bytes corrupted in round trip")
	}
	if contentType != "image/png" {
		t.Fatalf("content type lost, got %q", contentType)
	}
}

func TestMediaService_UploadKeysAreCollisionResistant(t *testing.T) {
	store := newStubMediaStore()
	svc := NewMediaService(store, noopMetrics{}, zerolog.Nop())

	a, err := svc.Upload(context.Background(), ports.UploadImageInput{Filename: "quarto.jpg", ContentType: "image/jpeg", Data: []byte("a")})
	if err != nil {
		t.Fatalf("first upload failed: %v", err)
	}
	b, err := svc.Upload(context.Background(), ports.UploadImageInput{Filename: "quarto.jpg", ContentType: "image/jpeg", Data: []byte("b")})
	if err != nil {
		t.Fatalf("second upload failed: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("same filename must not collide: %q", a.ID)
	}
	if len(store.objects) != 2 {
		t.Fatalf("expected both objects stored, got %d", len(store.objects))
	}
}

func TestMediaService_GetUnknown(t *testing.T) {
	svc := NewMediaService(newStubMediaStore(), noopMetrics{}, zerolog.Nop())

	if _, _, err := svc.Get(context.Background(), "missing"); err != domain.ErrImageNotFound {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestMediaService_Delete(t *testing.T) {
	store := newStubMediaStore()
	svc := NewMediaService(store, noopMetrics{}, zerolog.Nop())

	asset, _ := svc.Upload(context.Background(), ports.UploadImageInput{Filename: "piscina.jpg", ContentType: "image/jpeg", Data: []byte("x")})
	if err := svc.Delete(context.Background(), asset.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("catalog should be empty after delete, got %+v", listed)
	}
}
