package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/platform/logging"
)

// jitterFraction spreads each delay over ±25% of its nominal value.
const jitterFraction = 0.25

// retryPolicy is the unexported copy of config.RetryConfig held by Client.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// delay returns the wait before retry number attempt (1 for the first
// retry). A Retry-After hint from the server replaces the computed backoff
// but is still capped at maxInterval.
func (p retryPolicy) delay(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return min(retryAfter, p.maxInterval)
	}

	d := float64(p.initialInterval)
	for range attempt - 1 {
		d *= p.multiplier
		if d >= float64(p.maxInterval) {
			break
		}
	}
	d = min(d, float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1)

	return time.Duration(max(d, 0))
}

// attemptResult is what one round trip left behind for the retry decision.
type attemptResult struct {
	resp       *http.Response
	err        error
	retryAfter time.Duration
}

// doWithRetry runs req up to maxAttempts times. The response is written to
// resp so the bodyclose linter does not misfire; the caller closes its body.
// When retries are exhausted on a retryable status, resp is set and the
// error is returned alongside it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var last attemptResult
	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.wait(ctx, req, attempt, last); err != nil {
				return err
			}
		}
		rewind(req, body)

		last = c.roundTrip(req)
		final := attempt == c.retry.maxAttempts-1

		switch {
		case last.err != nil:
			if final || !retryableError(req.Method, last.err) {
				return last.err
			}
		case retryableStatus(req.Method, last.resp.StatusCode):
			if final {
				*resp = last.resp
				return fmt.Errorf("HTTP %d from %s after %d attempts", last.resp.StatusCode, c.serviceName, attempt+1)
			}
			discard(last.resp)
		default:
			*resp = last.resp
			return nil
		}
	}
	return last.err
}

func (c *Client) roundTrip(req *http.Request) attemptResult {
	r, err := c.httpClient.Do(req)
	if err != nil {
		return attemptResult{err: err}
	}
	return attemptResult{resp: r, retryAfter: parseRetryAfter(r.Header.Get("Retry-After"), time.Now())}
}

// wait sleeps before the next attempt, logging why at WARN.
func (c *Client) wait(ctx context.Context, req *http.Request, attempt int, last attemptResult) error {
	d := c.retry.delay(attempt, last.retryAfter)

	reason := "transport error"
	var cause error = last.err
	if last.resp != nil {
		reason = "HTTP " + strconv.Itoa(last.resp.StatusCode)
		cause = nil
	}

	attrs := []any{
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.String("reason", reason),
		slog.Duration("backoff", d),
	}
	if cause != nil {
		attrs = append(attrs, slog.Any("error", cause))
	}
	logging.FromContext(ctx).WarnContext(ctx, "retrying delivery API request", attrs...)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// bufferBody drains and closes the request body so every attempt can send
// the same bytes.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains resp so its connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// idempotent reports whether repeating method cannot change the outcome on
// the server.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// retryableError reports whether a transport error may be retried. Caller
// cancellation never is. A request that might have reached the server (a
// posted review, say) is only retried when the connection was never made.
func retryableError(method string, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if idempotent(method) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// retryableStatus reports whether status is worth another attempt. 429 and
// 503 mean the request was not processed, so they are retried for every
// method; other 5xx only for idempotent ones.
func retryableStatus(method string, status int) bool {
	switch {
	case status == http.StatusTooManyRequests, status == http.StatusServiceUnavailable:
		return true
	case status >= http.StatusInternalServerError:
		return idempotent(method)
	default:
		return false
	}
}

// parseRetryAfter reads a Retry-After value given either in seconds or as
// an HTTP date. It returns 0 when v is empty, malformed or in the past.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}
