package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/securedocs/docvault/internal/api/metrics"
	"github.com/securedocs/docvault/internal/core/domain"
	"github.com/securedocs/docvault/internal/core/ports"
)

// DocumentHandler handles document upload, listing, and download.
type DocumentHandler struct {
	documentService ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

type createDocumentRequest struct {
	DigitalSignature string `form:"digitalSignature" validate:"required,max=255"`
}

// List returns every document in the system.
//
// @Summary      List all documents
// @Tags         documents
// @Produce      json
// @Success      200  {array}  documentResponse
// @Router       /documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.documentService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDocumentResponses(docs))
}

// MyDocuments returns the documents owned by the authenticated caller.
//
// @Summary      List the caller's documents
// @Tags         documents
// @Produce      json
// @Success      200  {array}  documentResponse
// @Router       /documents/my_documents [get]
func (h *DocumentHandler) MyDocuments(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	docs, err := h.documentService.ListForOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDocumentResponses(docs))
}

// Create uploads a PDF owned by the authenticated caller. The file type
// is checked before the blob store or the repository is touched.
//
// @Summary      Upload a PDF document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        document          formData  file    true  "PDF file"
// @Param        digitalSignature  formData  string  true  "Opaque signature metadata"
// @Success      201  {object}  documentResponse
// @Failure      400  {object}  map[string]string
// @Router       /documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "document file is required")
	}
	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		return domain.ErrInvalidFileType
	}

	req := createDocumentRequest{DigitalSignature: c.FormValue("digitalSignature")}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	doc, err := h.documentService.Upload(c.Request().Context(), ports.UploadDocumentInput{
		OwnerID:          userID,
		OriginalName:     fileHeader.Filename,
		DigitalSignature: req.DigitalSignature,
		Content:          src,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsUploadedTotal.Inc()

	return c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

// Download streams a stored PDF. The registry is consulted first, so an
// unknown filename 404s without touching the blob store.
//
// @Summary      Download a document
// @Tags         documents
// @Produce      application/pdf
// @Param        filename  path  string  true  "Stored filename"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /documents/download/{filename} [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	filename := c.Param("filename")

	stream, err := h.documentService.Download(c.Request().Context(), filename)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			metrics.DocumentDownloadsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.DocumentDownloadsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	defer stream.Close()

	metrics.DocumentDownloadsTotal.WithLabelValues("success").Inc()

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment")
	return c.Stream(http.StatusOK, "application/pdf", stream)
}
