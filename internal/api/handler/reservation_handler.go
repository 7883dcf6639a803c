package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/api/middleware"
	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// ReservationHandler handles /api/v1/reservas endpoints.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

type createReservationRequest struct {
	UserID       string `json:"user_id"`
	PapaID       string `json:"papa_id"       validate:"required"`
	VisitDate    string `json:"visit_date"    validate:"required"`
	VisitAddress string `json:"visit_address" validate:"required"`
}

// Create handles POST /api/v1/reservas.
//
// A USER token books for itself: the user_id field is optional and, when
// present, must match the token subject. Admins book on behalf of any user
// and must supply user_id.
//
// @Summary      Create a reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/v1/reservas [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	visit, err := time.Parse(dateLayout, req.VisitDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "visit_date must use format "+dateLayout)
	}

	userID := req.UserID
	subject, _ := c.Get(middleware.CtxSubject).(string)
	role, _ := c.Get(middleware.CtxRole).(domain.Role)
	switch {
	case role == domain.RoleUser && userID == "":
		userID = subject
	case role == domain.RoleUser && userID != subject:
		return domain.ErrForbidden
	case userID == "":
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	res, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		UserID:       userID,
		PapaID:       req.PapaID,
		VisitDate:    visit,
		VisitAddress: req.VisitAddress,
	})
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, "reservation created", res)
}

// List handles GET /api/v1/reservas.
//
// @Summary      List all reservations
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/reservas [get]
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "reservations retrieved", reservations)
}

// Get handles GET /api/v1/reservas/:id.
//
// @Summary      Get a reservation by id
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/reservas/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	res, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "reservation found", res)
}

// Cancel handles PUT /api/v1/reservas/:id/cancel. Cancelling frees the
// papa's date for new bookings.
//
// @Summary      Cancel a reservation
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/reservas/{id}/cancel [put]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	res, err := h.service.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "reservation cancelled", res)
}

// Delete handles DELETE /api/v1/reservas/:id.
//
// @Summary      Delete a reservation
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/reservas/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "reservation deleted", nil)
}
