// Package stores holds the portal's state containers. Each store owns its
// state in memory; the group, feed and meeting stores also write the whole
// document for their key through to a repositories.DocumentRepository after
// every mutation.
package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"liaison-portal/internal/observability"
	"liaison-portal/internal/repositories"
)

// Storage keys, one JSON document each.
const (
	GroupsKey        = "slo_groups_v1"
	FeedPostsKey     = "slo_feed_posts_v1"
	FeedLikesKey     = "slo_feed_likes_v1"
	FeedBookmarksKey = "slo_feed_bookmarks_v1"
	MeetingsKey      = "slo_meetings_v1"
)

const (
	persistTimeout    = 5 * time.Second
	randomSuffixChars = 5
)

// newID returns prefix followed by a base36 timestamp and a short random suffix.
func newID(prefix string, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strconv.FormatInt(now.UnixMilli(), 36) + random[:randomSuffixChars]
}

// loadDocument decodes the document under key into dst.
// found is false when the key has never been written.
func loadDocument(ctx context.Context, docs repositories.DocumentRepository, key string, dst any) (found bool, err error) {
	body, err := docs.GetDocument(ctx, key)
	if errors.Is(err, repositories.ErrDocumentNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// saveDocument overwrites the document under key. Failures are logged and
// counted but never returned: in-memory state stays authoritative.
func saveDocument(ctx context.Context, docs repositories.DocumentRepository, key string, value any) {
	body, err := json.Marshal(value)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		err = docs.PutDocument(ctx, key, body)
		cancel()
	}
	observability.ObserveDocumentWrite(key, err)
	if err != nil {
		slog.Warn("document write failed", "key", key, "error", err)
	}
}

func deleteDocument(ctx context.Context, docs repositories.DocumentRepository, key string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := docs.DeleteDocument(ctx, key); err != nil {
		slog.Warn("document delete failed", "key", key, "error", err)
	}
}
