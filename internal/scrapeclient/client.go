// Package scrapeclient is the HTTP client for the generic web scrape
// collaborator. Every failure maps to a typed extraction error; nothing on
// this path is swallowed.
package scrapeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/brand-voice/internal/domain"
	"github.com/jonesrussell/brand-voice/internal/logging"
)

// DefaultTimeout bounds one scrape call end to end.
const DefaultTimeout = 60 * time.Second

// creditErrorMessage is the collaborator's literal quota-exhausted message.
// It is special-cased so callers can show a billing-specific error.
const creditErrorMessage = "Don't have enough credit"

// Client is an HTTP client for the scrape collaborator.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logging.Logger
}

// scrapeRequest is the request body for POST /scrape.
type scrapeRequest struct {
	URL         string `json:"url"`
	AccessToken string `json:"access_token"`
}

// scrapeResponse is the collaborator's response envelope.
type scrapeResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-call deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithRateLimiter bounds outbound calls, protecting the collaborator's
// credit quota from request bursts.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) { c.limiter = limiter }
}

// New creates a scrape client. The underlying transport has no client-level
// timeout; the per-call context governs and aborts the connection.
func New(baseURL string, logger logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scrape fetches the content behind sourceURL through the collaborator.
// Failures return a typed *domain.ExtractionError: deadline expiry maps to
// Timeout, transport failures to Network, the collaborator's credit message
// to Credit, and any other reported failure to Scraping.
func (c *Client) Scrape(ctx context.Context, sourceURL, accessToken string) (domain.AcquiredContent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, classifyTransportError(err)
		}
	}

	body, err := json.Marshal(scrapeRequest{URL: sourceURL, AccessToken: accessToken})
	if err != nil {
		return nil, domain.WrapExtractionError(domain.ErrKindService, "encode scrape request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, domain.WrapExtractionError(domain.ErrKindService, "create scrape request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("scrape call failed",
			logging.String("url", sourceURL),
			logging.Duration("elapsed", time.Since(start)),
			logging.Err(err))
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	var envelope scrapeResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil {
		return nil, domain.WrapExtractionError(domain.ErrKindScraping, "decode scrape response", decodeErr)
	}

	if !envelope.Success {
		message := ""
		if envelope.Error != nil {
			message = envelope.Error.Message
		}
		if message == creditErrorMessage {
			return nil, domain.NewExtractionError(domain.ErrKindCredit, creditErrorMessage, "")
		}
		return nil, domain.NewExtractionError(domain.ErrKindScraping, "scrape service reported failure", message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewExtractionError(domain.ErrKindScraping,
			"scrape service returned unexpected status",
			fmt.Sprintf("status %d", resp.StatusCode))
	}

	c.logger.Debug("scrape call succeeded",
		logging.String("url", sourceURL),
		logging.Duration("elapsed", time.Since(start)))

	return domain.StructuredPayload{Data: envelope.Data}, nil
}

// classifyTransportError maps transport-level failures to the error taxonomy.
func classifyTransportError(err error) *domain.ExtractionError {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.WrapExtractionError(domain.ErrKindTimeout, "scrape request timed out", err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return domain.WrapExtractionError(domain.ErrKindTimeout, "scrape request timed out", err)
	}
	return domain.WrapExtractionError(domain.ErrKindNetwork, "scrape request failed", err)
}
