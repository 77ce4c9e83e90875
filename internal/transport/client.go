// Package transport is a rate-limited, retrying HTTP client shared by the
// scraper and the external ML feature source.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// Client wraps http.Client with a token-bucket limiter and exponential
// backoff retries.
type Client struct {
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	MaxElapsed time.Duration
}

// Options configures a new Client.
type Options struct {
	Timeout         time.Duration
	RequestsPerSec int
	MaxRetryTimeout time.Duration
}

// New builds a Client, filling in sensible defaults for any unset option.
func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 5
	}
	if opts.MaxRetryTimeout == 0 {
		opts.MaxRetryTimeout = 30 * time.Second
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: opts.Timeout},
		Limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSec), opts.RequestsPerSec),
		MaxElapsed: opts.MaxRetryTimeout,
	}
}

// Do waits for the rate limiter, then performs req with exponential-backoff
// retries on transport error or a non-2xx status.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp *http.Response
	operation := func() error {
		var err error
		resp, err = c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return &StatusError{StatusCode: resp.StatusCode}
		}
		return nil
	}

	strategy := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(operation, backoff.WithMaxRetries(strategy, 5)); err != nil {
		return nil, err
	}
	return resp, nil
}

// StatusError reports a non-2xx HTTP response after retries exhausted.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return "non-2xx status code: " + http.StatusText(e.StatusCode)
}
