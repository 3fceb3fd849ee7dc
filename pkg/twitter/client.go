package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/embedkit/tweetcard/pkg/errors"
	"github.com/embedkit/tweetcard/pkg/observability"
)

// Defaults for the syndication client. The endpoint is the same one that
// powers embedded tweets and requires no authentication.
const (
	DefaultBaseURL = "https://cdn.syndication.twimg.com"
	DefaultTimeout = 10 * time.Second
	DefaultLang    = "en"

	// Browser-like user agent; the endpoint rejects obvious bot agents.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds the settings for the syndication client. The zero value of
// each field falls back to the corresponding default.
type Config struct {
	BaseURL  string
	Language string
	Timeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Language == "" {
		c.Language = DefaultLang
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Client fetches raw tweet records from the syndication endpoint.
// It performs exactly one GET per call: no retries at any layer, a single
// failed attempt is a failed request.
type Client struct {
	http *http.Client
	cfg  Config
}

// NewClient creates a syndication client with the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		// The per-request deadline comes from context; no transport
		// timeout on top of it.
		http: &http.Client{},
		cfg:  cfg.withDefaults(),
	}
}

// Timeout returns the effective request timeout.
func (c *Client) Timeout() time.Duration {
	return c.cfg.Timeout
}

// FetchTweet issues one GET for the given tweet ID and returns the parsed
// record unchanged. Failures are classified into the structured error
// codes:
//
//	TIMEOUT          the request exceeded the configured deadline
//	TWEET_NOT_FOUND  HTTP 404, an error payload, or a missing id_str
//	API_ERROR        any other status, an empty or malformed body, or a
//	                 transport-level failure
func (c *Client) FetchTweet(ctx context.Context, id string) (*SyndicationTweet, error) {
	apiURL := fmt.Sprintf("%s/tweet-result?id=%s&lang=%s&token=0", c.cfg.BaseURL, id, c.cfg.Language)

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPI, err, "build request for tweet %s", id)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	observability.HTTP().OnRequest(ctx, http.MethodGet, apiURL)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, apiURL, err)
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, errors.New(errors.ErrCodeTimeout, "request exceeded timeout of %dms", c.cfg.Timeout.Milliseconds())
		}
		return nil, errors.Wrap(errors.ErrCodeAPI, err, "syndication request failed")
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, apiURL, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return nil, errors.New(errors.ErrCodeNotFound, "Tweet not found")
		}
		return nil, errors.NewWithStatus(errors.ErrCodeAPI, resp.StatusCode, "HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, errors.New(errors.ErrCodeTimeout, "request exceeded timeout of %dms", c.cfg.Timeout.Milliseconds())
		}
		return nil, errors.Wrap(errors.ErrCodeAPI, err, "read response body")
	}
	if len(body) == 0 {
		return nil, errors.New(errors.ErrCodeAPI, "empty response from API")
	}

	var record SyndicationTweet
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPI, err, "malformed response body")
	}

	// The provider signals "unavailable" with an error payload; that is
	// indistinguishable from true not-found and surfaces identically.
	if record.Error != "" || record.IDStr == "" {
		msg := record.Error
		if msg == "" {
			msg = "Tweet not found"
		}
		return nil, errors.New(errors.ErrCodeNotFound, "%s", msg)
	}

	return &record, nil
}
