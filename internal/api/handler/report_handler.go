package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// ReportHandler handles maintenance report routes: submission and reads for
// residents, the work queue for employees.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type createReportRequest struct {
	Name      string `json:"name"`
	Topic     string `json:"topic"   validate:"required"`
	Message   string `json:"message" validate:"required"`
	Apartment string `json:"apartment"`
}

// Submit files a maintenance report for the signed-in resident. The
// reporter identity always comes from the session, never the body.
//
// @Summary      Submit a maintenance report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      createReportRequest  true  "Report details"
// @Success      201   {object}  domain.Report
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/report [post]
func (h *ReportHandler) Submit(c echo.Context) error {
	email, err := sessionEmail(c)
	if err != nil {
		return err
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.Submit(c.Request().Context(), &domain.Report{
		Email:     email,
		Name:      req.Name,
		Topic:     req.Topic,
		Message:   req.Message,
		Apartment: req.Apartment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, report)
}

// ListOwn returns the signed-in resident's reports.
func (h *ReportHandler) ListOwn(c echo.Context) error {
	email, err := sessionEmail(c)
	if err != nil {
		return err
	}

	reports, err := h.service.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// List returns every report. Employee only.
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// Get returns one report by id. Employee only.
func (h *ReportHandler) Get(c echo.Context) error {
	report, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Resolve marks a report solved. Employee only.
func (h *ReportHandler) Resolve(c echo.Context) error {
	if err := h.service.Resolve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(domain.ReportSolved)})
}
