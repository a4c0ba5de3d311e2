package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/action-pipeline/internal/adapters/http"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "127.0.0.1", port: 9090, want: "127.0.0.1:9090"},
		{host: "0.0.0.0", port: 8080, want: "0.0.0.0:8080"},
		{host: "::1", port: 8080, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: tt.port}, http.NotFoundHandler(), nil)
		if got := s.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := adapthttp.NewServer(config.ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}), discardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health/live")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want %q", body, "ok")
	}

	// No deadline: the default shutdown bound applies.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Serve() error after shutdown: %v", err)
	}
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	port := ln.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), discardLogger())
	if err := s.Start(); err == nil {
		t.Fatal("Start() on a busy port returned nil error")
	}
}
