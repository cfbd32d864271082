// Package tweet defines the tweet data model and the corpus reader.
package tweet

import (
	"strings"

	"github.com/tidwall/gjson"
)

// User is the author of a tweet.
type User struct {
	ID         int64  `json:"id"`
	ScreenName string `json:"screen_name"`
}

// Tweet is a single corpus entry with both raw and cleaned text, hashtags
// and engagement metrics. Unknown corpus fields are ignored.
type Tweet struct {
	ID          int64    `json:"id"`
	Text        string   `json:"text"`
	User        User     `json:"user"`
	TimestampMS int64    `json:"timestamp_ms"`
	CleanText   string   `json:"clean_text,omitempty"`
	HashTags    []string `json:"hash_tags,omitempty"`
	Retweets    int      `json:"retweet_count,omitempty"`
}

// FromJSON builds a Tweet from one corpus JSON object, for example:
//
//	{"text": "...", "user": {"screen_name": "KateSpencer1", "id": 21571382},
//	 "id": 290620657560084480, "timestamp_ms": 1358124338000}
func FromJSON(r gjson.Result) Tweet {
	return Tweet{
		ID:   r.Get("id").Int(),
		Text: strings.TrimSpace(r.Get("text").String()),
		User: User{
			ID:         r.Get("user.id").Int(),
			ScreenName: r.Get("user.screen_name").String(),
		},
		TimestampMS: r.Get("timestamp_ms").Int(),
		Retweets:    int(r.Get("retweet_count").Int()),
	}
}

// HasTag reports whether the tweet carries the given hashtag.
func (t *Tweet) HasTag(tag string) bool {
	for _, h := range t.HashTags {
		if h == tag {
			return true
		}
	}
	return false
}
