package voice

import "github.com/jonesrussell/brand-voice/internal/domain"

// Default video pattern confidence scores.
const (
	defaultCreatorConfidence   = 0.8
	defaultPresenterConfidence = 0.6
)

// DefaultVideoPatterns returns the fixed pattern pair used when video
// acquisition or matching yields nothing usable. The video path always
// produces a non-empty result; these are its floor.
func DefaultVideoPatterns() []domain.PatternMatch {
	return []domain.PatternMatch{
		{
			Style:      "Engaging Content Creator",
			Confidence: defaultCreatorConfidence,
			Source:     domain.SourceVideoDefault,
			Examples:   []string{"video content analysis"},
		},
		{
			Style:      "Informative Presenter",
			Confidence: defaultPresenterConfidence,
			Source:     domain.SourceVideoDefault,
			Examples:   []string{"video content analysis"},
		},
	}
}
