package stores

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"liaison-portal/internal/models"
	"liaison-portal/internal/repositories"
	"liaison-portal/internal/seed"
)

// FilterAll disables a type or mode filter.
const FilterAll = "All"

const (
	defaultPostTitle = "Team Note"
	userPostAuthor   = "You"
)

// FeedStore merges editorial posts with user posts and engagement flags.
// Posts, likes and bookmarks are persisted independently.
type FeedStore struct {
	mu        sync.Mutex
	docs      repositories.DocumentRepository
	now       func() time.Time
	starter   []models.Post
	posts     []models.Post
	likes     map[string]bool
	bookmarks map[string]bool
}

// NewFeedStore constructs a FeedStore over the starter feed.
func NewFeedStore(docs repositories.DocumentRepository) *FeedStore {
	return &FeedStore{
		docs:      docs,
		now:       time.Now,
		starter:   seed.Feed(),
		posts:     []models.Post{},
		likes:     map[string]bool{},
		bookmarks: map[string]bool{},
	}
}

// Load reads user posts, likes and bookmarks. Each missing or malformed
// document is treated as empty.
func (s *FeedStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []models.Post
	if _, err := loadDocument(ctx, s.docs, FeedPostsKey, &posts); err != nil {
		slog.Warn("feed posts unreadable, starting empty", "error", err)
		posts = nil
	}
	if posts == nil {
		posts = []models.Post{}
	}
	s.posts = posts
	s.likes = loadFlags(ctx, s.docs, FeedLikesKey)
	s.bookmarks = loadFlags(ctx, s.docs, FeedBookmarksKey)
	slog.Info("feed loaded", "user_posts", len(s.posts), "likes", len(s.likes), "bookmarks", len(s.bookmarks))
}

func loadFlags(ctx context.Context, docs repositories.DocumentRepository, key string) map[string]bool {
	var flags map[string]bool
	if _, err := loadDocument(ctx, docs, key, &flags); err != nil {
		slog.Warn("feed flags unreadable, starting empty", "key", key, "error", err)
		flags = nil
	}
	if flags == nil {
		flags = map[string]bool{}
	}
	return flags
}

// Feed returns starter and user posts newest first, filtered by post type
// and by a case-insensitive query over title, summary and author.
// Posts with identical timestamps have no defined relative order.
func (s *FeedStore) Feed(postType, query string) []models.FeedItem {
	postType = strings.TrimSpace(postType)
	query = strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	combined := make([]models.FeedItem, 0, len(s.posts)+len(s.starter))
	for _, p := range s.posts {
		p.IsUser = true
		combined = append(combined, s.item(p))
	}
	for _, p := range s.starter {
		combined = append(combined, s.item(p))
	}
	s.mu.Unlock()

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Time.After(combined[j].Time)
	})

	out := combined[:0]
	for _, it := range combined {
		if postType != "" && postType != FilterAll && it.Type != postType {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(it.Title + " " + it.Summary + " " + it.Author)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func (s *FeedStore) item(p models.Post) models.FeedItem {
	return models.FeedItem{Post: p, Liked: s.likes[p.ID], Bookmarked: s.bookmarks[p.ID]}
}

// SubmitPost prepends a user post. It is a no-op when both fields trim to empty.
func (s *FeedStore) SubmitPost(ctx context.Context, title, body string) (models.Post, bool) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" && body == "" {
		return models.Post{}, false
	}
	if title == "" {
		title = defaultPostTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	post := models.Post{
		ID:      newID("user-", now),
		Type:    models.PostMotivation,
		Title:   title,
		Summary: body,
		Time:    now,
		Author:  userPostAuthor,
		IsUser:  true,
	}
	s.posts = append([]models.Post{post}, s.posts...)
	saveDocument(ctx, s.docs, FeedPostsKey, s.posts)
	return post, true
}

// ToggleLike flips the like flag for id and returns the new value.
// The id need not belong to an existing post.
func (s *FeedStore) ToggleLike(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[id] = !s.likes[id]
	saveDocument(ctx, s.docs, FeedLikesKey, s.likes)
	return s.likes[id]
}

// ToggleBookmark flips the bookmark flag for id and returns the new value.
func (s *FeedStore) ToggleBookmark(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks[id] = !s.bookmarks[id]
	saveDocument(ctx, s.docs, FeedBookmarksKey, s.bookmarks)
	return s.bookmarks[id]
}

// Likes returns a copy of the like flags.
func (s *FeedStore) Likes() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyFlags(s.likes)
}

// Bookmarks returns a copy of the bookmark flags.
func (s *FeedStore) Bookmarks() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyFlags(s.bookmarks)
}

// ClearLocalData drops user posts, likes and bookmarks.
func (s *FeedStore) ClearLocalData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleteDocument(ctx, s.docs, FeedPostsKey)
	deleteDocument(ctx, s.docs, FeedLikesKey)
	deleteDocument(ctx, s.docs, FeedBookmarksKey)
	s.posts = []models.Post{}
	s.likes = map[string]bool{}
	s.bookmarks = map[string]bool{}
}

func copyFlags(flags map[string]bool) map[string]bool {
	out := make(map[string]bool, len(flags))
	for k, v := range flags {
		out[k] = v
	}
	return out
}
