package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vistamar/pousada-api/internal/core/ports"
)

// BookingHandler handles reservation CRUD.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	StartDate        string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string          `json:"endDate" validate:"required,datetime=2006-01-02"`
	Description      string          `json:"description"`
	OptionSelections map[string]bool `json:"optionSelections"`
}

type updateBookingRequest struct {
	StartDate        *string         `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string         `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Description      *string         `json:"description"`
	OptionSelections map[string]bool `json:"optionSelections"`
}

// List handles GET /bookings. Admins see every booking; clientes see only
// their own.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.BookingView
// @Failure      401  {object}  map[string]string
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Create handles POST /bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), claims, ports.CreateBookingInput{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Description:      req.Description,
		OptionSelections: req.OptionSelections,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// Update handles PUT /bookings/:id. Admin only.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "Fields to change"
// @Success      200   {object}  domain.Booking
// @Failure      404   {object}  map[string]string
// @Router       /bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateBookingInput{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Description:      req.Description,
		OptionSelections: req.OptionSelections,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /bookings/:id. Admin only.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
