package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/ports"
)

// InfoHandler serves the singleton site configuration.
type InfoHandler struct {
	service ports.InfoService
}

func NewInfoHandler(service ports.InfoService) *InfoHandler {
	return &InfoHandler{service: service}
}

type optionRequest struct {
	ID    string  `json:"id" validate:"required"`
	Label string  `json:"label" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type infoRequest struct {
	Description string          `json:"description" validate:"required"`
	Options     []optionRequest `json:"options" validate:"dive"`
}

// Get handles GET /pousada-info. Public; seeds defaults on first call.
//
// @Summary      Get site configuration
// @Tags         info
// @Produce      json
// @Success      200  {object}  domain.SiteConfig
// @Router       /pousada-info [get]
func (h *InfoHandler) Get(c echo.Context) error {
	cfg, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// Update handles PUT /pousada-info. Admin only; overwrites wholesale.
//
// @Summary      Replace site configuration
// @Tags         info
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      infoRequest  true  "New configuration"
// @Success      200   {object}  domain.SiteConfig
// @Failure      400   {object}  map[string]string
// @Router       /pousada-info [put]
func (h *InfoHandler) Update(c echo.Context) error {
	var req infoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cfg := domain.SiteConfig{Description: req.Description, Options: make([]domain.Option, 0, len(req.Options))}
	for _, o := range req.Options {
		cfg.Options = append(cfg.Options, domain.Option{ID: o.ID, Label: o.Label, Price: o.Price})
	}

	updated, err := h.service.Update(c.Request().Context(), cfg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
