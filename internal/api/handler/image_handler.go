package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vistamar/pousada-api/internal/core/ports"
)

// maxImageBytes caps a single upload at 10 MiB.
const maxImageBytes = 10 << 20

// ImageHandler serves the gallery catalog and the image bytes themselves.
type ImageHandler struct {
	service ports.MediaService
}

func NewImageHandler(service ports.MediaService) *ImageHandler {
	return &ImageHandler{service: service}
}

// List handles GET /images. Public; derived from the blob store.
//
// @Summary      List gallery images
// @Tags         images
// @Produce      json
// @Success      200  {array}  domain.ImageAsset
// @Router       /images [get]
func (h *ImageHandler) List(c echo.Context) error {
	assets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assets)
}

// Get handles GET /images/:id — streams the stored bytes with their
// original content type.
//
// @Summary      Fetch image bytes
// @Tags         images
// @Produce      octet-stream
// @Param        id  path  string  true  "Image id (storage key)"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /images/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	data, contentType, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Blob(http.StatusOK, contentType, data)
}

// Upload handles POST /images. Admin only; expects a multipart form with
// a single "file" part.
//
// @Summary      Upload a gallery image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  domain.ImageAsset
// @Failure      400   {object}  map[string]string
// @Router       /images [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > maxImageBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file exceeds the 10 MiB limit")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	if len(data) > maxImageBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file exceeds the 10 MiB limit")
	}

	asset, err := h.service.Upload(c.Request().Context(), ports.UploadImageInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, asset)
}

// Delete handles DELETE /images/:id. Admin only.
//
// @Summary      Delete a gallery image
// @Tags         images
// @Security     BearerAuth
// @Param        id  path  string  true  "Image id (storage key)"
// @Success      204
// @Router       /images/{id} [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
