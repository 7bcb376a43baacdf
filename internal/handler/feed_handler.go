package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"niyam/internal/gateway"
	"niyam/internal/service"
)

// FeedHandler serves the proxied article feed routes.
type FeedHandler struct {
	svc service.FeedService
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(svc service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// Feed godoc
// @Summary Article feed
// @Tags feed
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param filter query string false "Category filter"
// @Param sortOrder query string false "Sort order"
// @Success 200 {object} gateway.FeedResponse
// @Failure 502 {object} errors.Envelope
// @Router /feed [get]
func (h *FeedHandler) Feed(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	resp, err := h.svc.Feed(c.Request().Context(), gateway.FeedParams{
		Page:      page,
		Limit:     limit,
		Filter:    c.QueryParam("filter"),
		SortOrder: c.QueryParam("sortOrder"),
	})
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Article godoc
// @Summary Article by slug
// @Tags feed
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} gateway.Article
// @Failure 404 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /articles/{slug} [get]
func (h *FeedHandler) Article(c echo.Context) error {
	article, err := h.svc.ArticleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// RecordView godoc
// @Summary Record an article view
// @Tags feed
// @Produce json
// @Param slug path string true "Article slug"
// @Success 204 "recorded"
// @Failure 502 {object} errors.Envelope
// @Router /articles/{slug}/view [post]
func (h *FeedHandler) RecordView(c echo.Context) error {
	if err := h.svc.RecordView(c.Request().Context(), c.Param("slug")); err != nil {
		return respondUpstream(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
