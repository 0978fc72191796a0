package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/brand-voice/internal/domain"
	"github.com/jonesrussell/brand-voice/internal/logging"
	"github.com/jonesrussell/brand-voice/internal/voice"
)

// PatternExtractor runs the extraction pipeline for a source URL.
type PatternExtractor interface {
	ExtractPatterns(ctx context.Context, sourceURL, accessToken string) (*domain.ExtractionResult, error)
}

// Handler holds the API dependencies.
type Handler struct {
	extractor PatternExtractor
	catalogs  []*voice.Catalog
	logger    logging.Logger
	version   string
}

// NewHandler creates an API handler.
func NewHandler(extractor PatternExtractor, catalogs []*voice.Catalog, logger logging.Logger, version string) *Handler {
	return &Handler{
		extractor: extractor,
		catalogs:  catalogs,
		logger:    logger,
		version:   version,
	}
}

// ExtractRequest is the extraction request payload.
type ExtractRequest struct {
	URL         string `json:"url"          binding:"required"`
	AccessToken string `json:"access_token"`
}

// Extract handles POST /api/v1/extract.
func (h *Handler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			Success: false,
			Error: ErrorBody{
				Code:    domain.CodeUnknown,
				Message: "invalid request payload",
				Details: err.Error(),
			},
		})
		return
	}

	result, err := h.extractor.ExtractPatterns(c.Request.Context(), req.URL, req.AccessToken)
	if err != nil {
		extErr, ok := domain.AsExtractionError(err)
		if !ok {
			extErr = domain.WrapExtractionError(domain.ErrKindUnknown, "pattern extraction failed", err)
		}

		h.logger.Error("pattern extraction failed",
			logging.String("url", req.URL),
			logging.String("code", extErr.Code()),
			logging.Err(err))

		c.JSON(statusForError(extErr.Kind), toErrorEnvelope(extErr))
		return
	}

	c.JSON(http.StatusOK, toExtractionEnvelope(result))
}

// CatalogResponse summarizes one style catalog.
type CatalogResponse struct {
	Name      string   `json:"name"`
	Threshold float64  `json:"threshold"`
	Limit     int      `json:"limit"`
	Styles    []string `json:"styles"`
}

// Catalogs handles GET /api/v1/catalogs.
func (h *Handler) Catalogs(c *gin.Context) {
	summaries := make([]CatalogResponse, 0, len(h.catalogs))
	for _, catalog := range h.catalogs {
		rules := catalog.Rules()
		styles := make([]string, 0, len(rules))
		for _, rule := range rules {
			styles = append(styles, rule.Name)
		}

		summaries = append(summaries, CatalogResponse{
			Name:      catalog.Name(),
			Threshold: catalog.Threshold(),
			Limit:     catalog.Limit(),
			Styles:    styles,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"catalogs": summaries,
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "brand-voice",
		"version": h.version,
	})
}

// Ready handles GET /ready.
func (h *Handler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
