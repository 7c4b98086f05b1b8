package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/logging"
)

// retryJitter spreads each backoff delay by ±25%.
const retryJitter = 0.25

type retryPolicy config.RetryConfig

// schedule returns a fresh exponential backoff for one call.
func (p retryPolicy) schedule() *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     p.InitialInterval,
		RandomizationFactor: retryJitter,
		Multiplier:          p.Multiplier,
		MaxInterval:         p.MaxInterval,
	}
	b.Reset()
	return b
}

// delay raises the scheduled wait to a server Retry-After hint, capped at
// MaxInterval.
func (p retryPolicy) delay(scheduled, hint time.Duration) time.Duration {
	if hint > scheduled {
		return min(hint, p.MaxInterval)
	}
	return scheduled
}

// send runs req up to MaxAttempts times. Transport errors other than context
// cancellation, 429 and 5xx are retried. The body is buffered up front so
// every attempt sends it again. When attempts run out on a retryable status
// the last response is returned alongside the error with its body unread.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.MaxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.MaxAttempts)
	}
	if err := bufferBody(req); err != nil {
		return nil, err
	}

	schedule := c.retry.schedule()
	for attempt := 1; ; attempt++ {
		if err := rewindBody(req); err != nil {
			return nil, err
		}

		var (
			lastErr error
			hint    time.Duration
		)
		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !retryableErr(err) || attempt == c.retry.MaxAttempts {
				return nil, err
			}
			lastErr = err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		default:
			lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
			if attempt == c.retry.MaxAttempts {
				return resp, lastErr
			}
			hint = retryAfter(resp.Header.Get("Retry-After"), time.Now())
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		wait := c.retry.delay(schedule.NextBackOff(), hint)
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("operation", "httpclient.Do"),
			slog.String("peer_service", c.peer),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retry.MaxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", lastErr),
		)
		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

// bufferBody swaps a one-shot body for a replayable one.
func bufferBody(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	req.ContentLength = int64(len(b))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	return nil
}

func rewindBody(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryAfter parses a Retry-After header given either as delay seconds or as
// an HTTP date. Missing, malformed and past values yield zero.
func retryAfter(header string, now time.Time) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

func retryableErr(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
