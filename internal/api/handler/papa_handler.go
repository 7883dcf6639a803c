package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// PapaHandler handles /api/v1/papas endpoints. Reads are public; mutations
// are admin-only (enforced by the policy table, not here).
type PapaHandler struct {
	service ports.PapaService
}

func NewPapaHandler(service ports.PapaService) *PapaHandler {
	return &PapaHandler{service: service}
}

type papaRequest struct {
	FirstName     string `json:"first_name"     validate:"required"`
	LastName      string `json:"last_name"      validate:"required"`
	RUT           string `json:"rut"            validate:"required"`
	BirthDate     string `json:"birth_date"     validate:"required"`
	Nationality   string `json:"nationality"`
	Occupation    string `json:"occupation"`
	MaritalStatus string `json:"marital_status"`
	ChildrenCount int    `json:"children_count" validate:"gte=0"`
	Hobbies       string `json:"hobbies"`
	PapaType      string `json:"papa_type"`
	Motto         string `json:"motto"`
	Description   string `json:"description"`
	Price         int    `json:"price"          validate:"gte=0"`
	ImageURL      string `json:"image_url"`
}

// papaResponse is a papa plus its derived age. The age is computed from
// the birth date on every read and never persisted.
type papaResponse struct {
	domain.Papa
	Age int `json:"age"`
}

func toPapaResponse(p domain.Papa) papaResponse {
	return papaResponse{Papa: p, Age: p.Age()}
}

func (r papaRequest) toInput() (ports.PapaInput, error) {
	birth, err := time.Parse(dateLayout, r.BirthDate)
	if err != nil {
		return ports.PapaInput{}, err
	}
	return ports.PapaInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		RUT:           r.RUT,
		BirthDate:     birth,
		Nationality:   r.Nationality,
		Occupation:    r.Occupation,
		MaritalStatus: r.MaritalStatus,
		ChildrenCount: r.ChildrenCount,
		Hobbies:       r.Hobbies,
		PapaType:      r.PapaType,
		Motto:         r.Motto,
		Description:   r.Description,
		Price:         r.Price,
		ImageURL:      r.ImageURL,
	}, nil
}

// List handles GET /api/v1/papas.
//
// @Summary      List all papas
// @Tags         papas
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/papas [get]
func (h *PapaHandler) List(c echo.Context) error {
	papas, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]papaResponse, 0, len(papas))
	for _, p := range papas {
		out = append(out, toPapaResponse(p))
	}
	return Respond(c, http.StatusOK, "papas retrieved", out)
}

// Get handles GET /api/v1/papas/:id.
//
// @Summary      Get a papa by id
// @Tags         papas
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/papas/{id} [get]
func (h *PapaHandler) Get(c echo.Context) error {
	papa, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "papa found", toPapaResponse(*papa))
}

// Create handles POST /api/v1/papas.
//
// @Summary      Create a new papa
// @Tags         papas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      papaRequest  true  "Papa details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/v1/papas [post]
func (h *PapaHandler) Create(c echo.Context) error {
	var req papaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "birth_date must use format "+dateLayout)
	}

	papa, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, "papa created", toPapaResponse(*papa))
}

// Update handles PUT /api/v1/papas/:id.
//
// @Summary      Update a papa
// @Tags         papas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      papaRequest  true  "Papa details"
// @Success      200   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/v1/papas/{id} [put]
func (h *PapaHandler) Update(c echo.Context) error {
	var req papaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "birth_date must use format "+dateLayout)
	}

	papa, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "papa updated", toPapaResponse(*papa))
}

// Delete handles DELETE /api/v1/papas/:id.
//
// @Summary      Delete a papa
// @Tags         papas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/papas/{id} [delete]
func (h *PapaHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return Respond(c, http.StatusOK, "papa deleted", nil)
}
