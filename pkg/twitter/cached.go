package twitter

import (
	"context"
	"encoding/json"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/embedkit/tweetcard/pkg/cache"
	"github.com/embedkit/tweetcard/pkg/observability"
)

// Cache-wrapping defaults. Tweet content is near-immutable, so the TTL is
// counted in hours; the cache-operation timeout is much shorter than the
// HTTP client's own timeout and only bounds how long we wait on the store.
const (
	DefaultCacheTTL       = 6 * time.Hour
	DefaultCacheOpTimeout = 3 * time.Second
)

// Fetcher retrieves a normalized tweet for a tweet URL.
// *Service is the production implementation.
type Fetcher interface {
	GetTweet(ctx context.Context, tweetURL string) (*Tweet, error)
}

// CacheOptions configures a CachedService. Zero values fall back to the
// package defaults; a nil Logger falls back to the charm default logger.
type CacheOptions struct {
	TTL       time.Duration
	OpTimeout time.Duration
	Logger    *charmlog.Logger
}

// CachedService wraps a Fetcher with a TTL cache.
//
// The cache is never a source of user-visible failure: backend errors,
// undecodable entries, and lookups slower than the operation timeout all
// degrade to a direct fetch. Fetcher errors (invalid URL, not found,
// timeout, API error) propagate unchanged.
type CachedService struct {
	fetcher   Fetcher
	store     cache.Cache
	ttl       time.Duration
	opTimeout time.Duration
	logger    *charmlog.Logger
}

// NewCachedService wraps fetcher with the given cache backend.
// Pass a cache.NullCache when no backend is configured; every call then
// degrades to the direct path, indistinguishable from a cache miss.
func NewCachedService(fetcher Fetcher, store cache.Cache, opts CacheOptions) *CachedService {
	if opts.TTL <= 0 {
		opts.TTL = DefaultCacheTTL
	}
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = DefaultCacheOpTimeout
	}
	if opts.Logger == nil {
		opts.Logger = charmlog.Default()
	}
	return &CachedService{
		fetcher:   fetcher,
		store:     store,
		ttl:       opts.TTL,
		opTimeout: opts.OpTimeout,
		logger:    opts.Logger,
	}
}

type lookupResult struct {
	data []byte
	hit  bool
	err  error
}

// GetTweet returns the cached tweet for url, or fetches and caches it.
//
// The lookup races the operation timeout: a hung backend merely stops
// being waited on, it is not cancelled, and the request proceeds with a
// fresh direct fetch. An abandoned lookup or write completing later is
// harmless, since every write for a key stores the same normalized value.
func (s *CachedService) GetTweet(ctx context.Context, tweetURL string) (*Tweet, error) {
	key := cache.TweetKey(tweetURL)

	ch := make(chan lookupResult, 1)
	go func() {
		data, hit, err := s.store.Get(ctx, key)
		ch <- lookupResult{data: data, hit: hit, err: err}
	}()

	timer := time.NewTimer(s.opTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			s.logger.Warn("cache lookup failed, falling back to direct fetch", "key", key, "err", res.err)
			break
		}
		if res.hit {
			var tweet Tweet
			if err := json.Unmarshal(res.data, &tweet); err == nil {
				observability.Cache().OnCacheHit(ctx, key)
				return &tweet, nil
			}
			s.logger.Warn("cache entry undecodable, refetching", "key", key)
			_ = s.store.Delete(ctx, key)
		}
	case <-timer.C:
		s.logger.Warn("cache lookup timed out, falling back to direct fetch", "key", key, "timeout", s.opTimeout)
	}

	observability.Cache().OnCacheMiss(ctx, key)

	tweet, err := s.fetcher.GetTweet(ctx, tweetURL)
	if err != nil {
		return nil, err
	}
	s.put(key, tweet)
	return tweet, nil
}

// put stores a normalized tweet. Null fields are pruned first because the
// document stores cannot represent an absent-value marker. Write failures
// are logged and swallowed.
func (s *CachedService) put(key string, tweet *Tweet) {
	data, err := json.Marshal(tweet)
	if err != nil {
		s.logger.Warn("cache encode failed", "key", key, "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	payload := cache.PruneJSON(data)
	if err := s.store.Set(ctx, key, payload, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(payload))
}
