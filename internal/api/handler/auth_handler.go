package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// AuthHandler handles the public login endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	User  any    `json:"user"`
}

// LoginAdmin handles POST /auth/login-admin.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /auth/login-admin [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.authService.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return Respond(c, http.StatusOK, "login successful", authResponse{
		Token: token,
		Role:  domain.RoleAdmin.String(),
		User:  admin,
	})
}

// LoginUser handles POST /auth/login-user.
//
// @Summary      User login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "User credentials"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /auth/login-user [post]
func (h *AuthHandler) LoginUser(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.LoginUser(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return Respond(c, http.StatusOK, "login successful", authResponse{
		Token: token,
		Role:  domain.RoleUser.String(),
		User:  user,
	})
}
