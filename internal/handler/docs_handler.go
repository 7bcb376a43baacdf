package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "niyam/internal/errors"
	"niyam/internal/service"
)

// DocsHandler serves the proxied legal document routes.
type DocsHandler struct {
	svc        service.DocsService
	cookieName string
}

// NewDocsHandler creates a new docs handler.
func NewDocsHandler(svc service.DocsService, cookieName string) *DocsHandler {
	return &DocsHandler{svc: svc, cookieName: cookieName}
}

// List godoc
// @Summary List public legal documents
// @Tags documents
// @Produce json
// @Success 200 {object} gateway.DocumentsResponse
// @Failure 502 {object} errors.Envelope
// @Router /documents [get]
func (h *DocsHandler) List(c echo.Context) error {
	resp, err := h.svc.PublicDocuments(c.Request().Context())
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Legal document by id
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} gateway.LegalDocument
// @Failure 404 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /documents/{id} [get]
func (h *DocsHandler) Get(c echo.Context) error {
	doc, err := h.svc.DocumentByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// Structured godoc
// @Summary Structured form of a legal document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} gateway.StructuredDocument
// @Failure 404 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /documents/{id}/structured [get]
func (h *DocsHandler) Structured(c echo.Context) error {
	doc, err := h.svc.StructuredDocument(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// Mine godoc
// @Summary List the caller's legal documents
// @Tags documents
// @Produce json
// @Success 200 {object} gateway.DocumentsResponse
// @Failure 401 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /mydocs [get]
func (h *DocsHandler) Mine(c echo.Context) error {
	resp, err := h.svc.MyDocuments(c.Request().Context(), bearerFrom(c, h.cookieName))
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Upload godoc
// @Summary Upload a legal document for processing
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param documentType formData string true "Document type"
// @Success 201 {object} gateway.UploadResponse
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /documents [post]
func (h *DocsHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("A file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Fail("Could not read uploaded file"))
	}
	defer file.Close()

	resp, err := h.svc.Upload(
		c.Request().Context(),
		bearerFrom(c, h.cookieName),
		fileHeader.Filename,
		file,
		c.FormValue("documentType"),
	)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}
