package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestRetryPolicy_Schedule(t *testing.T) {
	t.Parallel()

	p := retryPolicy{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     400 * time.Millisecond,
		Multiplier:      2,
	}

	// Base delays before jitter: 100ms, 200ms, 400ms, then capped at 400ms.
	bases := []time.Duration{100, 200, 400, 400, 400}
	for range 50 {
		schedule := p.schedule()
		for i, base := range bases {
			base *= time.Millisecond
			lo := time.Duration(float64(base) * (1 - retryJitter))
			hi := time.Duration(float64(base)*(1+retryJitter)) + time.Nanosecond
			if got := schedule.NextBackOff(); got < lo || got > hi {
				t.Fatalf("retry %d: delay %v outside [%v, %v]", i+1, got, lo, hi)
			}
		}
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := retryPolicy{MaxInterval: 2 * time.Second}

	tests := []struct {
		name      string
		scheduled time.Duration
		hint      time.Duration
		want      time.Duration
	}{
		{name: "no hint", scheduled: 150 * time.Millisecond, want: 150 * time.Millisecond},
		{name: "hint shorter than schedule", scheduled: time.Second, hint: 500 * time.Millisecond, want: time.Second},
		{name: "hint raises delay", scheduled: 100 * time.Millisecond, hint: time.Second, want: time.Second},
		{name: "hint capped", scheduled: 100 * time.Millisecond, hint: time.Minute, want: 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.delay(tt.scheduled, tt.hint); got != tt.want {
				t.Errorf("delay(%v, %v) = %v, want %v", tt.scheduled, tt.hint, got, tt.want)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	errTests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: context.Canceled, want: false},
		{err: fmt.Errorf("get countries: %w", context.DeadlineExceeded), want: false},
		{err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{err: errors.New("unexpected EOF"), want: true},
	}
	for _, tt := range errTests {
		if got := retryableErr(tt.err); got != tt.want {
			t.Errorf("retryableErr(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}

	statusTests := map[int]bool{
		http.StatusOK:                  false,
		http.StatusNotModified:         false,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	}
	for code, want := range statusTests {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "empty", header: "", want: 0},
		{name: "seconds", header: "2", want: 2 * time.Second},
		{name: "padded seconds", header: " 1 ", want: time.Second},
		{name: "zero seconds", header: "0", want: 0},
		{name: "negative seconds", header: "-5", want: 0},
		{name: "http date", header: now.Add(3 * time.Second).Format(http.TimeFormat), want: 3 * time.Second},
		{name: "past http date", header: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", header: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := retryAfter(tt.header, now); got != tt.want {
				t.Errorf("retryAfter(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestSend_RejectsZeroAttempts(t *testing.T) {
	t.Parallel()

	c := &Client{retry: retryPolicy{MaxAttempts: 0}}
	req, _ := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://registry.invalid/api/v1/countries", http.NoBody)

	resp, err := c.send(t.Context(), req)
	if resp != nil {
		_ = resp.Body.Close()
		t.Error("send() returned a response")
	}
	if err == nil {
		t.Fatal("send() error = nil, want max attempts error")
	}
}
