package github

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
)

// HTTPError reports a non-2xx response from the GitHub API.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
	// Rate carries rate-limit state when GitHub signaled quota exhaustion.
	Rate *gh.Rate
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("GitHub API returned %d for %s: %s", e.StatusCode, e.URL, e.Body)
	if e.RateLimited() {
		msg += " " + rateLimitGuidance(e.Rate)
	}
	return msg
}

// RateLimited reports whether the response signaled an exhausted rate quota.
func (e *HTTPError) RateLimited() bool {
	return e.Rate != nil
}

func rateLimitGuidance(rate *gh.Rate) string {
	resetMin := time.Until(rate.Reset.Time).Minutes()
	if resetMin < 0 {
		resetMin = 0
	}
	return fmt.Sprintf("TRANSIENT ERROR: the GitHub API rate limit is exhausted. "+
		"The limit is %d requests per hour; the window resets in %.2f minutes.",
		rate.Limit, resetMin)
}

// TransportError reports a network-level failure (DNS, connection refused,
// timeout) before any HTTP status was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "github transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// wrapAPIError translates go-github errors into this package's error kinds.
// Errors are surfaced, never retried.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &HTTPError{
			StatusCode: statusCode(rateErr.Response),
			URL:        requestURL(rateErr.Response),
			Body:       rateErr.Message,
			Rate:       &rateErr.Rate,
		}
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &HTTPError{
			StatusCode: statusCode(abuseErr.Response),
			URL:        requestURL(abuseErr.Response),
			Body:       abuseErr.Message,
		}
	}
	var apiErr *gh.ErrorResponse
	if errors.As(err, &apiErr) {
		return &HTTPError{
			StatusCode: statusCode(apiErr.Response),
			URL:        requestURL(apiErr.Response),
			Body:       apiErr.Message,
		}
	}
	return &TransportError{Err: err}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func requestURL(resp *http.Response) string {
	if resp == nil || resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.String()
}
