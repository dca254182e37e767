package models

import "time"

// Post types shown in the feed.
const (
	PostNews       = "News"
	PostAnalysis   = "Analysis"
	PostCommunity  = "Community"
	PostMotivation = "Motivation"
	PostMedia      = "Media"
)

// Post is a feed entry, either editorial seed content or a user submission.
type Post struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Time     time.Time `json:"time"`
	Author   string    `json:"author"`
	Media    string    `json:"media,omitempty"`
	Featured bool      `json:"featured,omitempty"`
	IsUser   bool      `json:"isUser,omitempty"`
}

// FeedItem is a post decorated with the local engagement flags.
type FeedItem struct {
	Post
	Liked      bool `json:"liked"`
	Bookmarked bool `json:"bookmarked"`
}
