package twitter

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/embedkit/tweetcard/pkg/cache"
	"github.com/embedkit/tweetcard/pkg/errors"
)

type countingFetcher struct {
	calls atomic.Int64
	err   error
}

func (f *countingFetcher) GetTweet(ctx context.Context, tweetURL string) (*Tweet, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &Tweet{
		ID:     ExtractTweetID(tweetURL),
		URL:    tweetURL,
		Text:   "cached me",
		Author: Author{Username: "alice"},
	}, nil
}

// hangingCache blocks every operation until the context is done.
type hangingCache struct{}

func (hangingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	<-ctx.Done()
	return nil, false, ctx.Err()
}

func (hangingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	<-ctx.Done()
	return ctx.Err()
}

func (hangingCache) Delete(ctx context.Context, key string) error { return nil }
func (hangingCache) Close() error                                 { return nil }

// failingCache errors on every operation.
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, fmt.Errorf("backend down")
}

func (failingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return fmt.Errorf("backend down")
}

func (failingCache) Delete(ctx context.Context, key string) error { return nil }
func (failingCache) Close() error                                 { return nil }

func quietLogger() *charmlog.Logger {
	return charmlog.New(io.Discard)
}

func TestCachedServiceRoundTrip(t *testing.T) {
	fetcher := &countingFetcher{}
	store := cache.NewMemoryCache()
	svc := NewCachedService(fetcher, store, CacheOptions{Logger: quietLogger()})

	url := "https://x.com/alice/status/42"

	first, err := svc.GetTweet(context.Background(), url)
	if err != nil {
		t.Fatalf("first GetTweet: %v", err)
	}
	second, err := svc.GetTweet(context.Background(), url)
	if err != nil {
		t.Fatalf("second GetTweet: %v", err)
	}

	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("fetcher calls = %d, want 1", got)
	}
	if first.ID != second.ID || first.Text != second.Text {
		t.Errorf("cached tweet differs: %+v vs %+v", first, second)
	}
}

func TestCachedServiceFetchErrorPropagates(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New(errors.ErrCodeNotFound, "Tweet not found")}
	svc := NewCachedService(fetcher, cache.NewMemoryCache(), CacheOptions{Logger: quietLogger()})

	_, err := svc.GetTweet(context.Background(), "https://x.com/alice/status/42")
	if err == nil {
		t.Fatal("expected error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeNotFound {
		t.Errorf("code = %q, want %q", code, errors.ErrCodeNotFound)
	}
}

func TestCachedServiceErrorsNotCached(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New(errors.ErrCodeNotFound, "Tweet not found")}
	store := cache.NewMemoryCache()
	svc := NewCachedService(fetcher, store, CacheOptions{Logger: quietLogger()})

	url := "https://x.com/alice/status/42"
	svc.GetTweet(context.Background(), url)
	svc.GetTweet(context.Background(), url)

	if got := fetcher.calls.Load(); got != 2 {
		t.Errorf("fetcher calls = %d, want 2 (errors must not be cached)", got)
	}
	if store.Len() != 0 {
		t.Errorf("cache has %d entries, want 0", store.Len())
	}
}

func TestCachedServiceBackendErrorFallsBack(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := NewCachedService(fetcher, failingCache{}, CacheOptions{Logger: quietLogger()})

	tweet, err := svc.GetTweet(context.Background(), "https://x.com/alice/status/42")
	if err != nil {
		t.Fatalf("GetTweet: %v", err)
	}
	if tweet.ID != "42" {
		t.Errorf("ID = %q, want 42", tweet.ID)
	}
}

func TestCachedServiceHangingBackendFallsBack(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := NewCachedService(fetcher, hangingCache{}, CacheOptions{
		OpTimeout: 20 * time.Millisecond,
		Logger:    quietLogger(),
	})

	start := time.Now()
	tweet, err := svc.GetTweet(context.Background(), "https://x.com/alice/status/42")
	if err != nil {
		t.Fatalf("GetTweet: %v", err)
	}
	if tweet.ID != "42" {
		t.Errorf("ID = %q, want 42", tweet.ID)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("fallback took %v, hung backend must not block the request", elapsed)
	}
}

func TestCachedServiceUndecodableEntryRefetches(t *testing.T) {
	fetcher := &countingFetcher{}
	store := cache.NewMemoryCache()
	url := "https://x.com/alice/status/42"

	store.Set(context.Background(), cache.TweetKey(url), []byte("not json"), 0)

	svc := NewCachedService(fetcher, store, CacheOptions{Logger: quietLogger()})
	tweet, err := svc.GetTweet(context.Background(), url)
	if err != nil {
		t.Fatalf("GetTweet: %v", err)
	}
	if tweet.ID != "42" {
		t.Errorf("ID = %q, want 42", tweet.ID)
	}
	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("fetcher calls = %d, want 1", got)
	}
}
