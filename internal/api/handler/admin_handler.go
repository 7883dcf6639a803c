package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/core/ports"
)

// AdminHandler handles /api/v1/admins endpoints.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type createAdminRequest struct {
	Username string `json:"username"  validate:"required"`
	LastName string `json:"last_name"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
}

// List handles GET /api/v1/admins.
//
// @Summary      List all admins
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /api/v1/admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "admins retrieved", admins)
}

// Get handles GET /api/v1/admins/:id.
//
// @Summary      Get an admin by id
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/admins/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	admin, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "admin found", admin)
}

// Create handles POST /api/v1/admins.
//
// @Summary      Create a new admin
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdminRequest  true  "Admin details"
// @Success      201   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/v1/admins [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.service.Create(c.Request().Context(), req.Username, req.LastName, req.Email, req.Password)
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, "admin created", admin)
}

// Update handles PUT /api/v1/admins/:id.
//
// @Summary      Update an admin
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/v1/admins/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "admin updated", admin)
}

// Delete handles DELETE /api/v1/admins/:id.
//
// @Summary      Delete an admin
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/admins/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "admin deleted", nil)
}
