package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmvcosta/vcfkit/internal/config"
	"github.com/jmvcosta/vcfkit/internal/core"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := newRateLimiter(2, 20*time.Millisecond)
	defer rl.stop()

	if !rl.allow("1.2.3.4") || !rl.allow("1.2.3.4") {
		t.Fatal("first two requests must pass")
	}
	if rl.allow("1.2.3.4") {
		t.Error("third request within the window must be rejected")
	}

	// A different IP has its own bucket.
	if !rl.allow("5.6.7.8") {
		t.Error("separate IP must not share a bucket")
	}

	// Tokens reset after the window passes.
	time.Sleep(30 * time.Millisecond)
	if !rl.allow("1.2.3.4") {
		t.Error("request after window reset must pass")
	}
}

func TestRateLimitedResponse(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{RequestTimeout: time.Second},
		Upload: config.UploadConfig{MaxFileSize: 1 << 20, MaxConcurrent: 1, MaxWaitTime: time.Second},
		Rate:   config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1},
		Output: config.OutputConfig{ProcessedSuffix: "_processed", CleanedSuffix: "_cleaned"},
	}
	srv := NewServer(core.NewService(nil), cfg)
	defer srv.Shutdown(context.Background())

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.1:1234"
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		return rec
	}

	if rec := get(); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec := get()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Code != "RATE001" {
		t.Errorf("code = %q, want RATE001", resp.Code)
	}
}

func TestShutdownStopsRateLimiter(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{RequestTimeout: time.Second},
		Upload: config.UploadConfig{MaxFileSize: 1 << 20, MaxConcurrent: 1, MaxWaitTime: time.Second},
		Rate:   config.RateLimitConfig{Enabled: true, RequestsPerMinute: 10},
		Output: config.OutputConfig{ProcessedSuffix: "_processed", CleanedSuffix: "_cleaned"},
	}
	srv := NewServer(core.NewService(nil), cfg)

	rl := srv.limiter
	if rl == nil {
		t.Fatal("rate limiter not created despite Rate.Enabled")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	select {
	case <-rl.done:
	default:
		t.Error("cleanup goroutine not signalled to stop")
	}

	// A second Shutdown must not panic on the already-stopped limiter.
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("repeated Shutdown failed: %v", err)
	}
}
