package api

import (
	"net/http"
	"time"

	"github.com/jonesrussell/brand-voice/internal/domain"
)

// ExtractionEnvelope is the success response envelope.
type ExtractionEnvelope struct {
	Success bool           `json:"success"`
	Data    ExtractionData `json:"data"`
	Message string         `json:"message"`
}

// ExtractionData carries the extracted patterns and provenance metadata.
type ExtractionData struct {
	Patterns []PatternResponse `json:"patterns"`
	Content  string            `json:"content"`
	Metadata MetadataResponse  `json:"metadata"`
}

// PatternResponse is one brand voice pattern on the wire.
type PatternResponse struct {
	Style      string   `json:"style"`
	Confidence float64  `json:"confidence"`
	Source     string   `json:"source"`
	Examples   []string `json:"examples"`
}

// MetadataResponse describes the extraction on the wire.
type MetadataResponse struct {
	SourceURL     string `json:"source_url"`
	ExtractedAt   string `json:"extracted_at"`
	ContentLength int    `json:"content_length"`
	Type          string `json:"type,omitempty"`
}

// ErrorEnvelope is the failure response envelope.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody carries the typed error for the caller to branch on.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// toExtractionEnvelope converts a domain result to the wire envelope.
func toExtractionEnvelope(result *domain.ExtractionResult) ExtractionEnvelope {
	patterns := make([]PatternResponse, 0, len(result.Patterns))
	for _, p := range result.Patterns {
		patterns = append(patterns, PatternResponse{
			Style:      p.Style,
			Confidence: p.Confidence,
			Source:     p.Source,
			Examples:   p.Examples,
		})
	}

	return ExtractionEnvelope{
		Success: true,
		Data: ExtractionData{
			Patterns: patterns,
			Content:  result.ContentPreview,
			Metadata: MetadataResponse{
				SourceURL:     result.Metadata.SourceURL,
				ExtractedAt:   result.Metadata.ExtractedAt.Format(time.RFC3339),
				ContentLength: result.Metadata.ContentLength,
				Type:          result.Metadata.ContentType,
			},
		},
		Message: "Brand voice patterns extracted successfully",
	}
}

// toErrorEnvelope converts a typed extraction error to the wire envelope.
func toErrorEnvelope(extErr *domain.ExtractionError) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Code:    extErr.Code(),
			Message: extErr.Message,
			Details: extErr.Details,
		},
	}
}

// statusForError maps error kinds to HTTP status codes.
func statusForError(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrKindTimeout:
		return http.StatusGatewayTimeout
	case domain.ErrKindNetwork:
		return http.StatusBadGateway
	case domain.ErrKindCredit:
		return http.StatusPaymentRequired
	case domain.ErrKindScraping:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
