package domain

import "time"

// PatternMatch represents a single detected brand voice pattern with
// an associated confidence score.
type PatternMatch struct {
	Style      string   `json:"style"`
	Confidence float64  `json:"confidence"` // 0.0-1.0
	Source     string   `json:"source"`     // provenance label, e.g. "Professional and Formal"
	Examples   []string `json:"examples"`   // matched keywords, then matched example clues
}

// ExtractionMetadata describes where and when patterns were extracted.
type ExtractionMetadata struct {
	SourceURL     string    `json:"source_url"`
	ExtractedAt   time.Time `json:"extracted_at"`
	ContentLength int       `json:"content_length"`
	ContentType   string    `json:"type,omitempty"` // "website", "youtube_video"
}

// ExtractionResult is the outcome of a successful pattern extraction.
type ExtractionResult struct {
	Patterns       []PatternMatch     `json:"patterns"` // sorted by confidence desc, deduplicated
	ContentPreview string             `json:"content"`
	Metadata       ExtractionMetadata `json:"metadata"`
}

// ContentType constants for ExtractionMetadata.
const (
	ContentTypeWebsite      = "website"
	ContentTypeYouTubeVideo = "youtube_video"
)

// Pattern provenance constants.
const (
	SourceVideoAnalysis = "YouTube Video Analysis"
	SourceVideoDefault  = "YouTube Default Analysis"
)
