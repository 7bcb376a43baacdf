package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"niyam/internal/service"
)

// ProfessionalHandler serves the proxied professional directory routes.
type ProfessionalHandler struct {
	svc service.ProfessionalService
}

// NewProfessionalHandler creates a new professional handler.
func NewProfessionalHandler(svc service.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{svc: svc}
}

// List godoc
// @Summary Professional directory
// @Tags professionals
// @Produce json
// @Success 200 {object} gateway.ProfessionalsResponse
// @Failure 502 {object} errors.Envelope
// @Router /professionals [get]
func (h *ProfessionalHandler) List(c echo.Context) error {
	resp, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Professional by id
// @Tags professionals
// @Produce json
// @Param id path string true "Professional ID"
// @Success 200 {object} gateway.Professional
// @Failure 404 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /professionals/{id} [get]
func (h *ProfessionalHandler) Get(c echo.Context) error {
	pro, err := h.svc.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, pro)
}
