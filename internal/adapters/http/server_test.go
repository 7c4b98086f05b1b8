package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/protocolo-ceremonial/flagplan/internal/adapters/http"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
)

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	for host, want := range map[string]string{
		"127.0.0.1": "127.0.0.1:8080",
		"0.0.0.0":   "0.0.0.0:8080",
		"::1":       "[::1]:8080",
		"":          ":8080",
	} {
		s := adapthttp.NewServer(config.ServerConfig{Host: host, Port: 8080}, http.NotFoundHandler(), nil)
		if got := s.Addr(); got != want {
			t.Errorf("Addr() with host %q = %q, want %q", host, got, want)
		}
	}
}

func TestServer_Lifecycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		shutdown func() (context.Context, context.CancelFunc)
	}{
		{
			name: "caller deadline",
			shutdown: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 5*time.Second)
			},
		},
		{
			name: "default deadline",
			shutdown: func() (context.Context, context.CancelFunc) {
				return context.Background(), func() {}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			live := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"status":"ok"}`)
			})
			s := adapthttp.NewServer(config.ServerConfig{
				ReadTimeout:  time.Second,
				WriteTimeout: time.Second,
				IdleTimeout:  time.Second,
			}, live, slog.New(slog.DiscardHandler))

			ln, err := net.Listen("tcp", "127.0.0.1:0")
			if err != nil {
				t.Fatalf("net.Listen() error = %v", err)
			}
			served := make(chan error, 1)
			go func() { served <- s.Serve(ln) }()

			resp, err := http.Get("http://" + ln.Addr().String() + "/health/live")
			if err != nil {
				t.Fatalf("GET /health/live error = %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if string(body) != `{"status":"ok"}` {
				t.Errorf("body = %q", body)
			}

			ctx, cancel := tt.shutdown()
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				t.Fatalf("Shutdown() error = %v", err)
			}
			if err := <-served; err != nil {
				t.Errorf("Serve() returned %v after graceful shutdown", err)
			}
		})
	}
}

func TestServer_StartRejectsUnusableAddress(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "256.0.0.1", Port: 1}, http.NotFoundHandler(), nil)
	if err := s.Start(); err == nil {
		t.Fatal("Start() error = nil, want listen error")
	}
}
