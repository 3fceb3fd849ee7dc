// Package twitter retrieves public tweet metadata from the Twitter
// syndication endpoint and normalizes it into a renderer-agnostic model.
//
// The pipeline has four stages:
//
//	URL -> ExtractTweetID -> Client.FetchTweet -> Transform -> *Tweet
//
// Service ties the stages together for direct fetches; CachedService wraps
// a Service with a TTL cache and falls back to a direct fetch whenever the
// cache subsystem misbehaves, so caching is never a source of user-visible
// failure.
package twitter
