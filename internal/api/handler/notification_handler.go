package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// NotificationHandler handles building announcements.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type createNotificationRequest struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message"`
	Audience string `json:"audience"`
}

// Publish posts a new announcement. Admin only.
func (h *NotificationHandler) Publish(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	n, err := h.service.Publish(c.Request().Context(), &domain.Notification{
		Title:    req.Title,
		Message:  req.Message,
		Audience: req.Audience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, n)
}

// List returns every announcement.
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// Get returns one announcement by id.
func (h *NotificationHandler) Get(c echo.Context) error {
	n, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Remove archives and deletes an announcement. Admin only.
func (h *NotificationHandler) Remove(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
