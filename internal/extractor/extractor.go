// Package extractor orchestrates the brand voice pattern extraction
// pipeline: URL classification, content acquisition, normalization,
// rule matching, ranking, and result assembly.
package extractor

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jonesrussell/brand-voice/internal/classify"
	"github.com/jonesrussell/brand-voice/internal/domain"
	"github.com/jonesrussell/brand-voice/internal/logging"
	"github.com/jonesrussell/brand-voice/internal/telemetry"
	"github.com/jonesrussell/brand-voice/internal/voice"
)

const (
	// previewLimit caps the content preview in characters.
	previewLimit = 503
	// toneConfidence is assigned to a tone supplied by the video collaborator.
	toneConfidence = 0.95
)

// ScrapeService acquires content for generic URLs.
type ScrapeService interface {
	Scrape(ctx context.Context, sourceURL, accessToken string) (domain.AcquiredContent, error)
}

// TranscriptService acquires transcript or subtitle content for video URLs.
type TranscriptService interface {
	Fetch(ctx context.Context, sourceURL, accessToken string) (domain.AcquiredContent, error)
}

// Extractor composes acquisition, matching and ranking into one
// request/response cycle.
type Extractor struct {
	scrape     ScrapeService
	transcript TranscriptService
	generic    *voice.Catalog
	videoTone  *voice.Catalog
	telemetry  *telemetry.Provider
	logger     logging.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTelemetry attaches a telemetry provider.
func WithTelemetry(provider *telemetry.Provider) Option {
	return func(e *Extractor) { e.telemetry = provider }
}

// WithCatalogs substitutes the rule catalogs, primarily for tests.
func WithCatalogs(generic, videoTone *voice.Catalog) Option {
	return func(e *Extractor) {
		e.generic = generic
		e.videoTone = videoTone
	}
}

// New creates an extractor using the process-wide rule catalogs.
func New(scrape ScrapeService, transcript TranscriptService, logger logging.Logger, opts ...Option) *Extractor {
	e := &Extractor{
		scrape:     scrape,
		transcript: transcript,
		generic:    voice.GenericCatalog,
		videoTone:  voice.VideoToneCatalog,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractPatterns runs the full pipeline for one source URL.
//
// Failure semantics are asymmetric by content kind: every generic-path
// failure surfaces as a typed *domain.ExtractionError, while the video path
// recovers from any acquisition or matching failure with default patterns
// and always succeeds. This asymmetry is deliberate and must be preserved.
func (e *Extractor) ExtractPatterns(ctx context.Context, sourceURL, accessToken string) (result *domain.ExtractionResult, err error) {
	start := time.Now()
	kind := classify.Classify(sourceURL)

	defer func() {
		if e.telemetry == nil {
			return
		}
		outcome := telemetry.OutcomeSuccess
		patterns := 0
		if err != nil {
			outcome = telemetry.OutcomeError
		} else if result != nil {
			patterns = len(result.Patterns)
		}
		e.telemetry.RecordExtraction(string(kind), outcome, time.Since(start), patterns)
	}()

	// Unexpected internal panics become Service errors rather than
	// crashing the caller.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("extraction panicked",
				logging.String("url", sourceURL),
				logging.Any("panic", r))
			result = nil
			err = domain.NewExtractionError(domain.ErrKindService,
				"unexpected internal error", fmt.Sprintf("%v", r))
		}
	}()

	if e.telemetry != nil {
		spanCtx, span := e.telemetry.StartExtraction(ctx, string(kind))
		ctx = spanCtx
		defer span.End()
	}

	e.logger.Info("starting pattern extraction",
		logging.String("url", sourceURL),
		logging.String("kind", string(kind)))

	if kind == classify.KindVideo {
		return e.extractVideo(ctx, sourceURL, accessToken), nil
	}
	return e.extractGeneric(ctx, sourceURL, accessToken)
}

// extractGeneric runs the scrape path. All failures propagate as typed
// errors; an empty pattern list is a legitimate success.
func (e *Extractor) extractGeneric(ctx context.Context, sourceURL, accessToken string) (*domain.ExtractionResult, error) {
	acquireStart := time.Now()
	content, err := e.scrape.Scrape(ctx, sourceURL, accessToken)
	e.recordCollaborator("scrape", time.Since(acquireStart), err)
	if err != nil {
		if _, ok := domain.AsExtractionError(err); !ok {
			err = domain.WrapExtractionError(domain.ErrKindUnknown, "scrape failed", err)
		}
		e.logger.Warn("generic acquisition failed",
			logging.String("url", sourceURL),
			logging.Err(err))
		return nil, err
	}

	corpus := voice.Flatten(content)
	matches := e.generic.Match(corpus)
	patterns := voice.Rank(matches, e.generic.Threshold(), e.generic.Limit())

	e.logger.Info("generic extraction complete",
		logging.String("url", sourceURL),
		logging.Int("content_length", len(corpus)),
		logging.Int("patterns", len(patterns)))

	return e.assemble(sourceURL, corpus, patterns, domain.ContentTypeWebsite), nil
}

// extractVideo runs the transcript path. Any failure degrades to the
// default patterns; this path never returns an error.
func (e *Extractor) extractVideo(ctx context.Context, sourceURL, accessToken string) *domain.ExtractionResult {
	acquireStart := time.Now()
	content, err := e.transcript.Fetch(ctx, sourceURL, accessToken)
	e.recordCollaborator("transcript", time.Since(acquireStart), err)
	if err != nil {
		e.logger.Warn("video acquisition failed, using default patterns",
			logging.String("url", sourceURL),
			logging.Err(err))
		return e.fallback(sourceURL)
	}

	switch c := content.(type) {
	case domain.TranscriptTone:
		pattern := domain.PatternMatch{
			Style:      c.Tone,
			Confidence: toneConfidence,
			Source:     domain.SourceVideoAnalysis,
			Examples:   []string{"tone analysis from video"},
		}
		e.logger.Info("video tone analysis available",
			logging.String("url", sourceURL),
			logging.String("tone", c.Tone))
		return e.assemble(sourceURL, c.Transcript, []domain.PatternMatch{pattern}, domain.ContentTypeYouTubeVideo)

	case domain.TextCorpus:
		corpus := string(c)
		patterns := voice.Rank(e.videoTone.Match(corpus), e.videoTone.Threshold(), e.videoTone.Limit())
		if len(patterns) == 0 {
			e.logger.Debug("no video tone rules matched, using default patterns",
				logging.String("url", sourceURL))
			return e.fallback(sourceURL)
		}
		return e.assemble(sourceURL, corpus, patterns, domain.ContentTypeYouTubeVideo)

	default:
		return e.fallback(sourceURL)
	}
}

func (e *Extractor) recordCollaborator(name string, duration time.Duration, err error) {
	if e.telemetry == nil {
		return
	}
	errKind := ""
	if extErr, ok := domain.AsExtractionError(err); ok {
		errKind = string(extErr.Kind)
	} else if err != nil {
		errKind = string(domain.ErrKindUnknown)
	}
	e.telemetry.RecordCollaboratorCall(name, duration, errKind)
}

func (e *Extractor) fallback(sourceURL string) *domain.ExtractionResult {
	if e.telemetry != nil {
		e.telemetry.RecordFallback()
	}
	return e.assemble(sourceURL, "", voice.DefaultVideoPatterns(), domain.ContentTypeYouTubeVideo)
}

func (e *Extractor) assemble(sourceURL, corpus string, patterns []domain.PatternMatch, contentType string) *domain.ExtractionResult {
	return &domain.ExtractionResult{
		Patterns:       patterns,
		ContentPreview: preview(corpus),
		Metadata: domain.ExtractionMetadata{
			SourceURL:     sourceURL,
			ExtractedAt:   time.Now().UTC(),
			ContentLength: len(corpus),
			ContentType:   contentType,
		},
	}
}

func preview(corpus string) string {
	if utf8.RuneCountInString(corpus) <= previewLimit {
		return corpus
	}
	runes := []rune(corpus)
	return string(runes[:previewLimit])
}
