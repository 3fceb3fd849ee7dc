package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	l := newRateLimiter(2, time.Minute)
	h := l.middleware(okHandler())

	for i := 0; i < 2; i++ {
		if rec := doRequest(h, "1.2.3.4"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, rec.Code)
		}
	}

	rec := doRequest(h, "1.2.3.4")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "RATE_LIMIT_EXCEEDED") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	l := newRateLimiter(1, time.Minute)
	h := l.middleware(okHandler())

	doRequest(h, "1.2.3.4")
	if rec := doRequest(h, "5.6.7.8"); rec.Code != http.StatusOK {
		t.Errorf("other client blocked: %d", rec.Code)
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	l := newRateLimiter(1, 20*time.Millisecond)
	h := l.middleware(okHandler())

	doRequest(h, "1.2.3.4")
	if rec := doRequest(h, "1.2.3.4"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request not limited: %d", rec.Code)
	}

	time.Sleep(30 * time.Millisecond)
	if rec := doRequest(h, "1.2.3.4"); rec.Code != http.StatusOK {
		t.Errorf("request after window reset blocked: %d", rec.Code)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	l := newRateLimiter(0, time.Minute)
	h := l.middleware(okHandler())

	for i := 0; i < 50; i++ {
		if rec := doRequest(h, "1.2.3.4"); rec.Code != http.StatusOK {
			t.Fatalf("request %d blocked with limiter disabled", i+1)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*http.Request)
		want   string
	}{
		{"forwarded single", func(r *http.Request) { r.Header.Set("X-Forwarded-For", "9.9.9.9") }, "9.9.9.9"},
		{"forwarded chain", func(r *http.Request) { r.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1") }, "9.9.9.9"},
		{"real ip", func(r *http.Request) { r.Header.Set("X-Real-IP", "8.8.8.8") }, "8.8.8.8"},
		{"remote addr", func(r *http.Request) {}, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.mutate(req)
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
