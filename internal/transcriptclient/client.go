// Package transcriptclient is the HTTP client for the video transcript and
// tone collaborator. Errors from this client are advisory: the video path
// recovers from every failure with default patterns rather than surfacing
// an error to the caller.
package transcriptclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonesrussell/brand-voice/internal/domain"
	"github.com/jonesrussell/brand-voice/internal/logging"
)

// DefaultTimeout bounds the whole call chain, including the one 404
// fallback attempt. The secondary GET gets no renewed budget.
const DefaultTimeout = 30 * time.Second

// ErrNoTranscript indicates the collaborator returned nothing usable.
var ErrNoTranscript = errors.New("no usable transcript in response")

// Client is an HTTP client for the transcript collaborator.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     logging.Logger
}

// transcriptRequest is the JSON body for the primary POST.
type transcriptRequest struct {
	URL         string `json:"url"`
	AccessToken string `json:"access_token"`
}

// toneEntry is one element of the transcript+tone array shape.
type toneEntry struct {
	Transcript string `json:"transcript"`
	Tone       string `json:"tone"`
}

// subtitlesEnvelope is the {success, data.subtitles} shape.
type subtitlesEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Subtitles string `json:"subtitles"`
	} `json:"data"`
}

// New creates a transcript client. The per-call context carries the
// deadline so an expired call aborts the underlying connection.
func New(baseURL string, logger logging.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// NewWithTimeout creates a transcript client with a custom deadline.
func NewWithTimeout(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	c := New(baseURL, logger)
	c.timeout = timeout
	return c
}

// Fetch retrieves transcript or subtitle content for a video URL. The
// primary attempt is a POST with a JSON body; if and only if it returns
// HTTP 404, one secondary GET is issued with the same url and access token
// as query parameters, under the same deadline.
//
// Two success shapes are recognized, in priority order: an array whose
// first element carries transcript and tone fields (returned as
// domain.TranscriptTone) and a {success:true, data:{subtitles}} envelope
// (returned as domain.TextCorpus).
func (c *Client) Fetch(ctx context.Context, videoURL, accessToken string) (domain.AcquiredContent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.post(ctx, videoURL, accessToken)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		c.logger.Debug("transcript POST returned 404, retrying with GET",
			logging.String("url", videoURL))
		resp, err = c.get(ctx, videoURL, accessToken)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("transcript service returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read transcript response: %w", err)
	}

	return parseBody(body)
}

func (c *Client) post(ctx context.Context, videoURL, accessToken string) (*http.Response, error) {
	body, err := json.Marshal(transcriptRequest{URL: videoURL, AccessToken: accessToken})
	if err != nil {
		return nil, fmt.Errorf("encode transcript request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create transcript request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request: %w", err)
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, videoURL, accessToken string) (*http.Response, error) {
	query := url.Values{}
	query.Set("url", videoURL)
	query.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create transcript request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request: %w", err)
	}
	return resp, nil
}

// parseBody tries the transcript+tone array shape first, then the
// subtitles envelope.
func parseBody(body []byte) (domain.AcquiredContent, error) {
	var entries []toneEntry
	if err := json.Unmarshal(body, &entries); err == nil && len(entries) > 0 {
		first := entries[0]
		if first.Transcript != "" && first.Tone != "" {
			return domain.TranscriptTone{Transcript: first.Transcript, Tone: first.Tone}, nil
		}
	}

	var envelope subtitlesEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil &&
		envelope.Success && envelope.Data.Subtitles != "" {
		return domain.TextCorpus(envelope.Data.Subtitles), nil
	}

	return nil, ErrNoTranscript
}
