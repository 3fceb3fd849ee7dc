package twitter

// SyndicationUser is the author sub-record of the provider's raw shape.
type SyndicationUser struct {
	IDStr           string `json:"id_str"`
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	ProfileImageURL string `json:"profile_image_url_https"`
	Verified        bool   `json:"verified"`
}

// SyndicationPhoto is a single photo entry in the provider response.
type SyndicationPhoto struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SyndicationVideo is the optional video descriptor. Variants are kept
// opaque; their shape is the provider's business.
type SyndicationVideo struct {
	Poster   string `json:"poster"`
	Variants []any  `json:"variants"`
}

// SyndicationTweet is the provider's raw response shape, kept verbatim.
// A record with a populated Error or a missing IDStr is never valid.
type SyndicationTweet struct {
	IDStr         string             `json:"id_str"`
	Text          string             `json:"text"`
	CreatedAt     string             `json:"created_at"`
	User          SyndicationUser    `json:"user"`
	FavoriteCount int                `json:"favorite_count"`
	RetweetCount  int                `json:"retweet_count"`
	ReplyCount    int                `json:"reply_count"`
	QuoteCount    int                `json:"quote_count"`
	Photos        []SyndicationPhoto `json:"photos,omitempty"`
	Video         *SyndicationVideo  `json:"video,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// Author is the normalized tweet author.
type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

// Metrics holds engagement counts. All values are non-negative.
type Metrics struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
	Quotes   int `json:"quotes"`
}

// Media kinds.
const (
	MediaPhoto = "photo"
	MediaVideo = "video"
)

// MediaItem is one photo or video attached to a tweet. Photos carry URL
// and dimensions; videos carry Thumbnail and the opaque variant list.
type MediaItem struct {
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Variants  []any  `json:"variants,omitempty"`
}

// Tweet is the normalized, renderer-agnostic tweet model. It is
// constructed once per successful fetch and never mutated afterwards.
// Raw retains the provider record verbatim for forward compatibility.
type Tweet struct {
	ID        string            `json:"id"`
	URL       string            `json:"url"`
	Text      string            `json:"text"`
	CreatedAt string            `json:"created_at"`
	Author    Author            `json:"author"`
	Metrics   Metrics           `json:"metrics"`
	Media     []MediaItem       `json:"media"`
	Raw       *SyndicationTweet `json:"raw,omitempty"`
}
