package observability

import (
	"context"
	"testing"
	"time"
)

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)  { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string) { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(_ context.Context, _ string, size int) {
	r.sets += size
}

type recordingHTTPHooks struct {
	requests, responses, errors int
}

func (r *recordingHTTPHooks) OnRequest(context.Context, string, string) { r.requests++ }
func (r *recordingHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {
	r.responses++
}
func (r *recordingHTTPHooks) OnError(context.Context, string, string, error) { r.errors++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("default cache hooks = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("default HTTP hooks = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "tweet:1")
	Cache().OnCacheMiss(ctx, "tweet:2")
	Cache().OnCacheSet(ctx, "tweet:2", 128)

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 128 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1/1/128", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetHTTPHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHTTPHooks{}
	SetHTTPHooks(rec)

	ctx := context.Background()
	HTTP().OnRequest(ctx, "GET", "https://example.com")
	HTTP().OnResponse(ctx, "GET", "https://example.com", 200, time.Millisecond)
	HTTP().OnError(ctx, "GET", "https://example.com", context.DeadlineExceeded)

	if rec.requests != 1 || rec.responses != 1 || rec.errors != 1 {
		t.Errorf("requests=%d responses=%d errors=%d, want 1/1/1",
			rec.requests, rec.responses, rec.errors)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Cache() == nil {
		t.Error("nil cache hooks registered")
	}
	if HTTP() == nil {
		t.Error("nil HTTP hooks registered")
	}
}

func TestReset(t *testing.T) {
	SetCacheHooks(&recordingCacheHooks{})
	SetHTTPHooks(&recordingHTTPHooks{})
	Reset()

	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("cache hooks after reset = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP hooks after reset = %T, want NoopHTTPHooks", HTTP())
	}
}
