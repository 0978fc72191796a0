//nolint:testpackage // Testing internal extractor requires same package access
package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/jonesrussell/brand-voice/internal/domain"
	"github.com/jonesrussell/brand-voice/internal/logging"
)

type fakeScrape struct {
	content domain.AcquiredContent
	err     error
	panics  bool
}

func (f *fakeScrape) Scrape(ctx context.Context, sourceURL, accessToken string) (domain.AcquiredContent, error) {
	if f.panics {
		panic("scrape exploded")
	}
	return f.content, f.err
}

type fakeTranscript struct {
	content domain.AcquiredContent
	err     error
}

func (f *fakeTranscript) Fetch(ctx context.Context, sourceURL, accessToken string) (domain.AcquiredContent, error) {
	return f.content, f.err
}

func newExtractor(scrape ScrapeService, transcript TranscriptService) *Extractor {
	return New(scrape, transcript, logging.NewNop())
}

func TestExtractPatterns_GenericSuccess(t *testing.T) {
	scrape := &fakeScrape{content: domain.StructuredPayload{Data: map[string]any{
		"text": "Our innovative team builds cutting-edge technology for the future",
	}}}

	result, err := newExtractor(scrape, &fakeTranscript{}).
		ExtractPatterns(context.Background(), "https://example.com/about", "token")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found *domain.PatternMatch
	for i := range result.Patterns {
		if result.Patterns[i].Style == "Innovative and Modern" {
			found = &result.Patterns[i]
		}
	}
	if found == nil {
		t.Fatalf("expected Innovative and Modern pattern, got %+v", result.Patterns)
	}
	// 4 of 5 keywords matched.
	if found.Confidence < 0.6 || found.Confidence > 0.8 {
		t.Errorf("expected confidence in [0.6, 0.8], got %f", found.Confidence)
	}
	if result.Metadata.ContentType != domain.ContentTypeWebsite {
		t.Errorf("unexpected content type: %s", result.Metadata.ContentType)
	}
	if result.Metadata.SourceURL != "https://example.com/about" {
		t.Errorf("unexpected source url: %s", result.Metadata.SourceURL)
	}
}

func TestExtractPatterns_GenericEmptyIsSuccess(t *testing.T) {
	scrape := &fakeScrape{content: domain.StructuredPayload{Data: "nothing matches here"}}

	result, err := newExtractor(scrape, &fakeTranscript{}).
		ExtractPatterns(context.Background(), "https://example.com", "token")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Patterns) != 0 {
		t.Errorf("expected no patterns, got %d", len(result.Patterns))
	}
}

func TestExtractPatterns_GenericErrorPropagates(t *testing.T) {
	scrape := &fakeScrape{err: domain.NewExtractionError(domain.ErrKindCredit, "Don't have enough credit", "")}

	_, err := newExtractor(scrape, &fakeTranscript{}).
		ExtractPatterns(context.Background(), "https://example.com", "token")

	extErr, ok := domain.AsExtractionError(err)
	if !ok {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extErr.Kind != domain.ErrKindCredit {
		t.Errorf("expected credit error, got %s", extErr.Kind)
	}
}

func TestExtractPatterns_GenericUnknownErrorWrapped(t *testing.T) {
	scrape := &fakeScrape{err: errors.New("something odd")}

	_, err := newExtractor(scrape, &fakeTranscript{}).
		ExtractPatterns(context.Background(), "https://example.com", "token")

	extErr, ok := domain.AsExtractionError(err)
	if !ok {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extErr.Kind != domain.ErrKindUnknown {
		t.Errorf("expected unknown error, got %s", extErr.Kind)
	}
}

func TestExtractPatterns_VideoToneShape(t *testing.T) {
	transcript := &fakeTranscript{content: domain.TranscriptTone{
		Transcript: "hello and welcome back",
		Tone:       "Confident and authoritative",
	}}

	result, err := newExtractor(&fakeScrape{}, transcript).
		ExtractPatterns(context.Background(), "https://youtu.be/abc123", "token")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Patterns) != 1 {
		t.Fatalf("expected exactly 1 pattern, got %d", len(result.Patterns))
	}

	p := result.Patterns[0]
	if p.Style != "Confident and authoritative" {
		t.Errorf("expected verbatim tone as style, got %q", p.Style)
	}
	if p.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %f", p.Confidence)
	}
	if p.Source != domain.SourceVideoAnalysis {
		t.Errorf("unexpected source: %q", p.Source)
	}
	if result.Metadata.ContentType != domain.ContentTypeYouTubeVideo {
		t.Errorf("unexpected content type: %s", result.Metadata.ContentType)
	}
}

func TestExtractPatterns_VideoSubtitlesMatchRules(t *testing.T) {
	transcript := &fakeTranscript{content: domain.TextCorpus(
		"in this video I will explain the tutorial so you can learn and understand step by step",
	)}

	result, err := newExtractor(&fakeScrape{}, transcript).
		ExtractPatterns(context.Background(), "https://youtu.be/abc123", "token")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Patterns) == 0 {
		t.Fatal("expected rule-matched patterns")
	}
	if len(result.Patterns) > 4 {
		t.Errorf("expected at most 4 video patterns, got %d", len(result.Patterns))
	}
	if result.Patterns[0].Style != "Educational and Helpful" {
		t.Errorf("expected Educational and Helpful first, got %q", result.Patterns[0].Style)
	}
}

func TestExtractPatterns_VideoFailureYieldsDefaults(t *testing.T) {
	cases := map[string]*fakeTranscript{
		"network error":  {err: errors.New("connection refused")},
		"malformed body": {err: errors.New("no usable transcript in response")},
	}

	for name, transcript := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := newExtractor(&fakeScrape{}, transcript).
				ExtractPatterns(context.Background(), "https://youtu.be/abc123", "token")

			if err != nil {
				t.Fatalf("video path must not fail, got %v", err)
			}
			if len(result.Patterns) != 2 {
				t.Fatalf("expected exactly 2 default patterns, got %d", len(result.Patterns))
			}
			if result.Patterns[0].Style != "Engaging Content Creator" || result.Patterns[0].Confidence != 0.8 {
				t.Errorf("unexpected first default: %+v", result.Patterns[0])
			}
			if result.Patterns[1].Style != "Informative Presenter" || result.Patterns[1].Confidence != 0.6 {
				t.Errorf("unexpected second default: %+v", result.Patterns[1])
			}
		})
	}
}

func TestExtractPatterns_VideoNoRuleMatchYieldsDefaults(t *testing.T) {
	transcript := &fakeTranscript{content: domain.TextCorpus("completely unrelated words")}

	result, err := newExtractor(&fakeScrape{}, transcript).
		ExtractPatterns(context.Background(), "https://youtu.be/abc123", "token")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Patterns) != 2 {
		t.Fatalf("expected 2 default patterns, got %d", len(result.Patterns))
	}
}

func TestExtractPatterns_PanicBecomesServiceError(t *testing.T) {
	scrape := &fakeScrape{panics: true}

	result, err := newExtractor(scrape, &fakeTranscript{}).
		ExtractPatterns(context.Background(), "https://example.com", "token")

	if result != nil {
		t.Error("expected nil result after panic")
	}
	extErr, ok := domain.AsExtractionError(err)
	if !ok {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extErr.Kind != domain.ErrKindService {
		t.Errorf("expected service error, got %s", extErr.Kind)
	}
}

func TestExtractPatterns_PreviewTruncated(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'a'
	}
	scrape := &fakeScrape{content: domain.StructuredPayload{Data: string(long)}}

	result, err := newExtractor(scrape, &fakeTranscript{}).
		ExtractPatterns(context.Background(), "https://example.com", "token")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.ContentPreview) != previewLimit {
		t.Errorf("expected preview of %d chars, got %d", previewLimit, len(result.ContentPreview))
	}
	if result.Metadata.ContentLength != 2000 {
		t.Errorf("expected content length 2000, got %d", result.Metadata.ContentLength)
	}
}
