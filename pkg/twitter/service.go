package twitter

import (
	"context"

	"github.com/embedkit/tweetcard/pkg/errors"
)

// Service is the direct (uncached) retrieval pipeline: it resolves the
// tweet ID from a URL, fetches the raw record, and normalizes it.
type Service struct {
	client *Client
}

// NewService creates a Service with the given client configuration.
func NewService(cfg Config) *Service {
	return &Service{client: NewClient(cfg)}
}

// Client exposes the underlying syndication client.
func (s *Service) Client() *Client {
	return s.client
}

// GetTweet fetches and normalizes the tweet behind a tweet URL.
// The identifier always comes from ExtractTweetID; NormalizeTweetURL is
// display-only and never used for fetching.
func (s *Service) GetTweet(ctx context.Context, tweetURL string) (*Tweet, error) {
	id := ExtractTweetID(tweetURL)
	if id == "" {
		return nil, errors.New(errors.ErrCodeInvalidURL,
			"invalid tweet URL: %s. Supported formats: twitter.com/username/status/ID, x.com/username/status/ID, or t.co/ID", tweetURL)
	}

	record, err := s.client.FetchTweet(ctx, id)
	if err != nil {
		return nil, err
	}
	return Transform(record), nil
}

// Transform maps a raw syndication record into the normalized model.
// It is total over any record that passed the client's validity check:
// missing counts become 0, negatives are clamped, photos lacking a URL
// are dropped, and photos always precede the single optional video item.
func Transform(record *SyndicationTweet) *Tweet {
	return &Tweet{
		ID:        record.IDStr,
		URL:       "https://twitter.com/" + record.User.ScreenName + "/status/" + record.IDStr,
		Text:      record.Text,
		CreatedAt: record.CreatedAt,
		Author: Author{
			ID:       record.User.IDStr,
			Name:     record.User.Name,
			Username: record.User.ScreenName,
			Avatar:   record.User.ProfileImageURL,
			Verified: record.User.Verified,
		},
		Metrics: Metrics{
			Likes:    clampCount(record.FavoriteCount),
			Retweets: clampCount(record.RetweetCount),
			Replies:  clampCount(record.ReplyCount),
			Quotes:   clampCount(record.QuoteCount),
		},
		Media: parseMedia(record),
		Raw:   record,
	}
}

// clampCount floors counts at zero. JSON decoding already rejects
// non-numeric input, so this only guards against negative values.
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// parseMedia builds the ordered media sequence: photos first (input order
// preserved, url required), then at most one video item.
func parseMedia(record *SyndicationTweet) []MediaItem {
	media := make([]MediaItem, 0, len(record.Photos)+1)

	for _, photo := range record.Photos {
		if photo.URL == "" {
			continue
		}
		media = append(media, MediaItem{
			Type:   MediaPhoto,
			URL:    photo.URL,
			Width:  photo.Width,
			Height: photo.Height,
		})
	}

	if record.Video != nil {
		variants := record.Video.Variants
		if variants == nil {
			variants = []any{}
		}
		media = append(media, MediaItem{
			Type:      MediaVideo,
			Thumbnail: record.Video.Poster,
			Variants:  variants,
		})
	}

	return media
}
