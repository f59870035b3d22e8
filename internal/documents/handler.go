package documents

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"summarizer-backend/internal/shared/server/respond"
	"summarizer-backend/internal/summary"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.view)
	rg.GET("/documents/:id/summary", h.summarize)
	rg.DELETE("/documents/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	doc, err := h.Svc.Ingest(c.Request.Context(), fileHeader.Filename, content)
	if err != nil {
		h.respondError(c, err, "failed to ingest document")
		return
	}

	c.Set("documentId", doc.ID)
	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.OK(c, resp)
}

func (h *Handler) summarize(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	opts, err := summaryOptions(c)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	res, err := h.Svc.Retrieve(c.Request.Context(), id, opts)
	if err != nil {
		h.respondError(c, err, "failed to summarize document")
		return
	}
	respond.OK(c, toSummaryResponse(res))
}

func (h *Handler) view(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	full, err := h.Svc.ViewFullText(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "failed to load document")
		return
	}
	respond.OK(c, toContentResponse(full))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "failed to delete document")
		return
	}
	respond.OK(c, gin.H{"message": "Document deleted successfully"})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrExtractionFailed):
		respond.Error(c, http.StatusInternalServerError, "extraction_error", err.Error(), nil)
	case errors.Is(err, ErrStorageFailed):
		respond.Error(c, http.StatusInternalServerError, "storage_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

// summaryOptions reads tuning parameters from the query string, falling back
// to defaults for absent values. Malformed values are an error.
func summaryOptions(c *gin.Context) (summary.Options, error) {
	opts := summary.DefaultOptions()

	if v := c.Query("length"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return summary.Options{}, errors.New("length must be an integer")
		}
		opts.Length = parsed
	}
	if v := c.Query("minWordLength"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return summary.Options{}, errors.New("minWordLength must be an integer")
		}
		opts.MinWordLength = parsed
	}
	if v := c.Query("excludeCommon"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return summary.Options{}, errors.New("excludeCommon must be a boolean")
		}
		opts.ExcludeCommon = parsed
	}
	return opts, nil
}
