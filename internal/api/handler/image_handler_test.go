package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/ports"
)

type stubMediaService struct {
	assets   []domain.ImageAsset
	uploaded *ports.UploadImageInput
	getErr   error
}

func (s *stubMediaService) List(_ context.Context) ([]domain.ImageAsset, error) {
	return s.assets, nil
}

func (s *stubMediaService) Get(_ context.Context, _ string) ([]byte, string, error) {
	if s.getErr != nil {
		return nil, "", s.getErr
	}
	return []byte("jpeg-bytes"), "image/jpeg", nil
}

func (s *stubMediaService) Upload(_ context.Context, input ports.UploadImageInput) (*domain.ImageAsset, error) {
	s.uploaded = &input
	return &domain.ImageAsset{ID: "key-" + input.Filename, URL: "/images/key-" + input.Filename, Alt: input.Filename}, nil
}

func (s *stubMediaService) Delete(_ context.Context, _ string) error {
	return nil
}

func multipartUpload(t *testing.T, filename string, data []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/images", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestImageHandler_Upload(t *testing.T) {
	svc := &stubMediaService{}
	h := NewImageHandler(svc)

	c, rec := multipartUpload(t, "fachada.jpg", []byte("fake-jpeg"))
	if err := h.Upload(c); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.uploaded == nil {
		t.Fatalf("service not called")
	}
	if svc.uploaded.Filename != "fachada.jpg" {
		t.Fatalf("filename not forwarded: %q", svc.uploaded.Filename)
	}
	if !bytes.Equal(svc.uploaded.Data, []byte("fake-jpeg")) {
		t.Fatalf("file bytes not forwarded")
	}
}

func TestImageHandler_Upload_RequiresFilePart(t *testing.T) {
	h := NewImageHandler(&stubMediaService{})

	c, _ := newTestContext(t, http.MethodPost, "/images", "")
	err := h.Upload(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestImageHandler_Get(t *testing.T) {
	h := NewImageHandler(&stubMediaService{})

	c, rec := newTestContext(t, http.MethodGet, "/images/key-1", "")
	c.SetParamNames("id")
	c.SetParamValues("key-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/jpeg" {
		t.Fatalf("content type lost, got %q", ct)
	}
	if rec.Body.String() != "jpeg-bytes" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestImageHandler_Get_PropagatesNotFound(t *testing.T) {
	h := NewImageHandler(&stubMediaService{getErr: domain.ErrImageNotFound})

	c, _ := newTestContext(t, http.MethodGet, "/images/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrImageNotFound {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}
