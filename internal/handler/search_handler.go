package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "niyam/internal/errors"
	"niyam/internal/service"
)

// SearchHandler serves the proxied per-entity search routes.
type SearchHandler struct {
	svc service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Full-text search over one entity type
// @Tags search
// @Produce json
// @Param type path string true "Entity type" Enums(articles, documents, professionals, dictionary)
// @Param q query string true "Query"
// @Success 200 {object} gateway.SearchResponse
// @Failure 400 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /search/{type} [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Query parameter q is required"))
	}

	resp, err := h.svc.Search(c.Request().Context(), c.Param("type"), query)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
