package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// CommunityHandler handles the shared-facility routes: events, washing
// machine bookings, and the trash archive.
type CommunityHandler struct {
	service ports.CommunityService
}

func NewCommunityHandler(service ports.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

type washingBookingRequest struct {
	Machine string `json:"machine"`
	Date    string `json:"date" validate:"required"`
	Slot    string `json:"slot" validate:"required"`
}

// ListEvents returns all community events.
func (h *CommunityHandler) ListEvents(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// BookWashing reserves a washing machine slot for the signed-in resident.
func (h *CommunityHandler) BookWashing(c echo.Context) error {
	email, err := sessionEmail(c)
	if err != nil {
		return err
	}

	var req washingBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.service.BookWashing(c.Request().Context(), &domain.WashingBooking{
		Email:   email,
		Machine: req.Machine,
		Date:    req.Date,
		Slot:    req.Slot,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// ListWashing returns the signed-in resident's bookings.
func (h *CommunityHandler) ListWashing(c echo.Context) error {
	email, err := sessionEmail(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListWashingByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ArchiveTrash stores an opaque deleted-document payload.
func (h *CommunityHandler) ArchiveTrash(c echo.Context) error {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.ArchiveToTrash(c.Request().Context(), payload); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]bool{"archived": true})
}
