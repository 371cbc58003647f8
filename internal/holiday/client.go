package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// BaseURL is the Nager.Date API v3 base URL.
	BaseURL = "https://date.nager.at/api/v3"

	// DefaultTimeout bounds the one-shot feed fetch. The session falls back
	// to an empty holiday set when it elapses.
	DefaultTimeout = 10 * time.Second
)

// Client fetches upcoming public holidays from the Nager.Date feed.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Country selects /NextPublicHolidays/{code}; empty selects the
	// worldwide feed.
	country string
}

// NewClient creates a feed client. country may be empty.
func NewClient(country string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    BaseURL,
		country:    country,
	}
}

// SetBaseURL overrides the feed URL (useful for testing and self-hosted
// mirrors).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Upcoming fetches the next public holidays, deduplicated by name with the
// first occurrence winning. The feed returns more fields per entry; only
// date and name are kept.
func (c *Client) Upcoming(ctx context.Context) ([]Holiday, error) {
	path := "/NextPublicHolidaysWorldwide"
	if c.country != "" {
		path = "/NextPublicHolidays/" + c.country
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday feed request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &FeedError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var holidays []Holiday
	if err := json.Unmarshal(body, &holidays); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	return Dedupe(holidays), nil
}

// FeedError represents an error status returned by the holiday feed.
type FeedError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *FeedError) Error() string {
	return fmt.Sprintf("holiday feed error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true for a 404, typically an unknown country code.
func (e *FeedError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError returns true for a 5xx response.
func (e *FeedError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsTimeout reports whether err is a deadline or client timeout, as opposed
// to a feed-side failure.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
