package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// UserHandler handles account management routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"  validate:"omitempty,oneof=resident employee admin"`
	Photo string `json:"photo"`
}

type updateUserRequest struct {
	Data struct {
		Name  string `json:"name"`
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone"`
		Role  string `json:"role"  validate:"omitempty,oneof=resident employee admin"`
	} `json:"data"`
}

type profileRequest struct {
	Data struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Age     int    `json:"age"`
		Gender  string `json:"gender"`
		Region  string `json:"region"`
		Role    string `json:"role" validate:"omitempty,oneof=resident employee admin"`
	} `json:"data"`
}

type loginActivityRequest struct {
	Data string `json:"data" validate:"required"`
}

type roleResponse struct {
	Role string `json:"role"`
}

// Create registers a new user account.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/new-user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
		Photo: req.Photo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// List returns every user account. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByEmail returns the signed-in user's own record.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	if err := requireOwnEmail(c, c.Param("email")); err != nil {
		return err
	}

	user, err := h.service.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Role returns just the persisted role for the signed-in user.
//
// @Summary      Get the signed-in user's role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email (must match session)"
// @Success      200    {object}  roleResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/v1/user-role/{email} [get]
func (h *UserHandler) Role(c echo.Context) error {
	if err := requireOwnEmail(c, c.Param("email")); err != nil {
		return err
	}

	role, err := h.service.RoleByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// Update modifies an account's core fields. Admin only.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:  req.Data.Name,
		Email: req.Data.Email,
		Phone: req.Data.Phone,
		Role:  req.Data.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// Delete removes an account. Admin only.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// SaveProfile upserts the signed-in user's profile fields.
func (h *UserHandler) SaveProfile(c echo.Context) error {
	if err := requireOwnEmail(c, c.Param("email")); err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.SaveProfile(c.Request().Context(), c.Param("email"), domain.Profile{
		Name:    req.Data.Name,
		Address: req.Data.Address,
		Phone:   req.Data.Phone,
		Age:     req.Data.Age,
		Gender:  req.Data.Gender,
		Region:  req.Data.Region,
		Role:    req.Data.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

// RecordLogin appends a sign-in timestamp to the user's login activity.
func (h *UserHandler) RecordLogin(c echo.Context) error {
	if err := requireOwnEmail(c, c.Param("email")); err != nil {
		return err
	}

	var req loginActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.RecordLogin(c.Request().Context(), c.Param("email"), req.Data); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}
