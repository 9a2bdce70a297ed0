package transport_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-shell/pkg/transport"
)

func newClient(t *testing.T, baseURL string, maxSize string) *transport.Client {
	t.Helper()

	cfg := &transport.Config{BaseURL: baseURL, MaxResponseSize: maxSize}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	c, err := transport.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return c
}

type payload struct {
	Success bool     `json:"success"`
	Items   []string `json:"items"`
}

func TestRequest_DecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items" {
			t.Errorf("path = %q, want /items", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"items":["a","b"]}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "")

	got, err := transport.Request[payload](context.Background(), c, http.MethodGet, "/items")
	if err != nil {
		t.Fatalf("Request() = %v", err)
	}

	if !got.Success || len(got.Items) != 2 {
		t.Errorf("got = %+v", got)
	}
}

func TestDo_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "")

	err := c.Do(context.Background(), http.MethodGet, "/items", nil)

	var statusErr *transport.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Do() = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusBadGateway {
		t.Errorf("Code = %d, want %d", statusErr.Code, http.StatusBadGateway)
	}
	if !strings.Contains(statusErr.Body, "boom") {
		t.Errorf("Body = %q, want to contain boom", statusErr.Body)
	}
}

func TestDo_StatusError_LargeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("x", 2048), http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "1KB")

	err := c.Do(context.Background(), http.MethodGet, "/items", nil)

	var statusErr *transport.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Do() = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want %d", statusErr.Code, http.StatusInternalServerError)
	}
	if len(statusErr.Body) != 1000 {
		t.Errorf("len(Body) = %d, want 1000", len(statusErr.Body))
	}
}

func TestDo_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "")

	var out payload
	if err := c.Do(context.Background(), http.MethodGet, "/items", &out); !errors.Is(err, transport.ErrDecode) {
		t.Errorf("Do() = %v, want ErrDecode", err)
	}
}

func TestDo_ResponseTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 2048)))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "1KB")

	if err := c.Do(context.Background(), http.MethodGet, "/items", nil); !errors.Is(err, transport.ErrResponseTooLarge) {
		t.Errorf("Do() = %v, want ErrResponseTooLarge", err)
	}
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newClient(t, url, "")

	err := c.Do(context.Background(), http.MethodGet, "/items", nil)
	if err == nil {
		t.Fatal("Do() expected error for closed server")
	}

	var statusErr *transport.StatusError
	if errors.As(err, &statusErr) {
		t.Error("network failure reported as *StatusError")
	}
}

func TestConfig_Finalize(t *testing.T) {
	cfg := &transport.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.MaxResponseSizeBytes() != 4_000_000 {
		t.Errorf("MaxResponseSizeBytes() = %d, want 4000000", cfg.MaxResponseSizeBytes())
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_REMOTE_BASE_URL", "https://admin.example.com")

	cfg := &transport.Config{}
	if err := cfg.Finalize(&transport.Env{BaseURL: "TEST_REMOTE_BASE_URL"}); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.BaseURL != "https://admin.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestConfig_Finalize_InvalidScheme(t *testing.T) {
	cfg := &transport.Config{BaseURL: "ftp://example.com"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() expected error for ftp scheme")
	}
}
