package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// RequestHandler handles resident service requests.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createServiceRequest struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"    validate:"required"`
	Details string `json:"details"`
}

type setRequestStatusRequest struct {
	Req string `json:"req" validate:"required"`
}

// Submit files a service request for the signed-in resident.
func (h *RequestHandler) Submit(c echo.Context) error {
	email, err := sessionEmail(c)
	if err != nil {
		return err
	}

	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Submit(c.Request().Context(), &domain.Request{
		Email:   email,
		Name:    req.Name,
		Kind:    req.Kind,
		Details: req.Details,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List returns every service request. Employee only.
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// GetByEmail returns the signed-in resident's request.
func (h *RequestHandler) GetByEmail(c echo.Context) error {
	if err := requireOwnEmail(c, c.Param("email")); err != nil {
		return err
	}

	request, err := h.service.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// SetStatus updates a request's status. Employee only.
func (h *RequestHandler) SetStatus(c echo.Context) error {
	var req setRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}
