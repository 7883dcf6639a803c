package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/core/ports"
)

// UserHandler handles /api/v1/users endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username  string `json:"username"   validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url"`
}

// updateUserRequest carries a partial update; absent and empty fields leave
// the stored values alone.
type updateUserRequest struct {
	Password  *string `json:"password"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Address   *string `json:"address"`
	AvatarURL *string `json:"avatar_url"`
}

// List handles GET /api/v1/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "users retrieved", users)
}

// Get handles GET /api/v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "user found", user)
}

// Create handles POST /api/v1/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username:  req.Username,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, "user created", user)
}

// Update handles PUT /api/v1/users/:id — a partial-field merge.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Password:  req.Password,
		Email:     req.Email,
		Address:   req.Address,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "user updated", user)
}

// Active handles GET /api/v1/users/active.
//
// @Summary      List active users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/active [get]
func (h *UserHandler) Active(c echo.Context) error {
	users, err := h.service.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "active users retrieved", users)
}

// Inactive handles GET /api/v1/users/inactive.
//
// @Summary      List inactive users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/inactive [get]
func (h *UserHandler) Inactive(c echo.Context) error {
	users, err := h.service.Inactive(c.Request().Context())
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "inactive users retrieved", users)
}

// Reactivate handles PUT /api/v1/users/:id/reactivate.
//
// @Summary      Reactivate an inactive user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Failure      409  {object}  Envelope
// @Router       /api/v1/users/{id}/reactivate [put]
func (h *UserHandler) Reactivate(c echo.Context) error {
	user, err := h.service.Reactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "user reactivated", user)
}

// Delete handles DELETE /api/v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "user deleted", nil)
}
