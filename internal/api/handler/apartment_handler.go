package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// ApartmentHandler handles apartment reads and smart-device control.
type ApartmentHandler struct {
	service ports.ApartmentService
}

func NewApartmentHandler(service ports.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{service: service}
}

type deviceRequest struct {
	Data struct {
		Name   string `json:"name" validate:"required"`
		Brand  string `json:"brand"`
		Img    string `json:"img"`
		Status bool   `json:"status"`
	} `json:"data"`
}

type membersRequest struct {
	Data []struct {
		Name     string `json:"name" validate:"required"`
		Relation string `json:"relation"`
		Img      string `json:"img"`
	} `json:"data" validate:"required,dive"`
}

type wifiRequest struct {
	Data struct {
		Name   string `json:"name" validate:"required"`
		Brand  string `json:"brand"`
		Img    string `json:"img"`
		Status bool   `json:"status"`
		Wifi   string `json:"wifi" validate:"required"`
	} `json:"data"`
}

type acRequest struct {
	Data struct {
		Name   string `json:"name"`
		Brand  string `json:"brand"`
		Img    string `json:"img"`
		Status bool   `json:"status"`
		Temp   int    `json:"temp"`
		Mode   string `json:"mode"`
	} `json:"data"`
}

type cctvRequest struct {
	Data struct {
		Name   string `json:"name"`
		Brand  string `json:"brand"`
		Img    string `json:"img"`
		Status bool   `json:"status"`
	} `json:"data"`
}

type energyTotalsRequest struct {
	Data struct {
		Electricity1 float64 `json:"electricity1"`
		Electricity2 float64 `json:"electricity2"`
		Electricity3 float64 `json:"electricity3"`
		Water1       float64 `json:"water1"`
		Water2       float64 `json:"water2"`
		Water3       float64 `json:"water3"`
		Gas1         float64 `json:"gas1"`
		Gas2         float64 `json:"gas2"`
		Gas3         float64 `json:"gas3"`
	} `json:"data"`
}

type weeklyUsageRequest struct {
	Data struct {
		Electricity [7]float64 `json:"electricity"`
		Water       [7]float64 `json:"water"`
		Gas         [7]float64 `json:"gas"`
	} `json:"data"`
}

type removeDeviceRequest struct {
	Index int `json:"index"`
}

type deviceSwitchRequest struct {
	Index int  `json:"index"`
	Value bool `json:"value"`
}

type componentSwitchRequest struct {
	Name  string `json:"name" validate:"required"`
	Value bool   `json:"value"`
}

type acTempRequest struct {
	TempControl int `json:"tempControl"`
}

type acModeRequest struct {
	NewMode string `json:"newMode" validate:"required"`
}

// List returns every apartment.
//
// @Summary      List all apartments
// @Tags         apartments
// @Produce      json
// @Success      200  {array}   domain.Apartment
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/apartments [get]
func (h *ApartmentHandler) List(c echo.Context) error {
	apartments, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apartments)
}

// GetByEmail returns the apartment registered to a resident email.
func (h *ApartmentHandler) GetByEmail(c echo.Context) error {
	apartment, err := h.service.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apartment)
}

// AddDevice appends a device to the apartment's devices array.
func (h *ApartmentHandler) AddDevice(c echo.Context) error {
	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.AddDevice(c.Request().Context(), c.Param("id"), domain.Device{
		Name:   req.Data.Name,
		Brand:  req.Data.Brand,
		Img:    req.Data.Img,
		Status: req.Data.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// RemoveDevice deletes the device at the given array index.
func (h *ApartmentHandler) RemoveDevice(c echo.Context) error {
	var req removeDeviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.RemoveDevice(c.Request().Context(), c.Param("id"), req.Index); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// SwitchDevice toggles the device at the given array index.
func (h *ApartmentHandler) SwitchDevice(c echo.Context) error {
	var req deviceSwitchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SwitchDevice(c.Request().Context(), c.Param("id"), req.Index, req.Value); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// SwitchComponent toggles a named component (router, ac, cctv).
func (h *ApartmentHandler) SwitchComponent(c echo.Context) error {
	var req componentSwitchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.SwitchComponent(c.Request().Context(), c.Param("id"), req.Name, req.Value); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// SetMembers replaces the apartment's registered members.
func (h *ApartmentHandler) SetMembers(c echo.Context) error {
	var req membersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	members := make([]domain.Member, len(req.Data))
	for i, m := range req.Data {
		members[i] = domain.Member{Name: m.Name, Relation: m.Relation, Img: m.Img}
	}

	if err := h.service.SetMembers(c.Request().Context(), c.Param("id"), members); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// ConfigureWifi upserts the router description and wifi network name.
func (h *ApartmentHandler) ConfigureWifi(c echo.Context) error {
	var req wifiRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.ConfigureWifi(c.Request().Context(), c.Param("id"), domain.WifiSetup{
		Router: domain.Router{
			Name:   req.Data.Name,
			Brand:  req.Data.Brand,
			Img:    req.Data.Img,
			Status: req.Data.Status,
		},
		Wifi: req.Data.Wifi,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// ConfigureAC upserts the air-conditioning unit.
func (h *ApartmentHandler) ConfigureAC(c echo.Context) error {
	var req acRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.ConfigureAC(c.Request().Context(), c.Param("id"), domain.AC{
		Name:   req.Data.Name,
		Brand:  req.Data.Brand,
		Img:    req.Data.Img,
		Status: req.Data.Status,
		Temp:   req.Data.Temp,
		Mode:   req.Data.Mode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// ConfigureCCTV upserts the camera unit.
func (h *ApartmentHandler) ConfigureCCTV(c echo.Context) error {
	var req cctvRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.ConfigureCCTV(c.Request().Context(), c.Param("id"), domain.CCTV{
		Name:   req.Data.Name,
		Brand:  req.Data.Brand,
		Img:    req.Data.Img,
		Status: req.Data.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// SetACTemp sets the AC temperature.
func (h *ApartmentHandler) SetACTemp(c echo.Context) error {
	var req acTempRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SetACTemp(c.Request().Context(), c.Param("id"), req.TempControl); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// SetACMode sets the AC mode.
func (h *ApartmentHandler) SetACMode(c echo.Context) error {
	var req acModeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.SetACMode(c.Request().Context(), c.Param("id"), req.NewMode); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// SetEnergyTotals replaces the aggregated week/month/year utility rows.
func (h *ApartmentHandler) SetEnergyTotals(c echo.Context) error {
	var req energyTotalsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	d := req.Data
	err := h.service.SetEnergyTotals(c.Request().Context(), c.Param("id"), ports.EnergyTotalsInput{
		Electricity: [3]float64{d.Electricity1, d.Electricity2, d.Electricity3},
		Water:       [3]float64{d.Water1, d.Water2, d.Water3},
		Gas:         [3]float64{d.Gas1, d.Gas2, d.Gas3},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// SetWeeklyUsage replaces the per-weekday utility rows.
func (h *ApartmentHandler) SetWeeklyUsage(c echo.Context) error {
	var req weeklyUsageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.SetWeeklyUsage(c.Request().Context(), c.Param("id"), ports.WeeklyUsageInput{
		Electricity: req.Data.Electricity,
		Water:       req.Data.Water,
		Gas:         req.Data.Gas,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}
