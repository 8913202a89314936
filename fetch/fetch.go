// Package fetch retrieves and normalizes viewer comments from a video.
package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/youtube/v3"

	"daily-goals-pipeline/types"
)

// ThreadLister is the comment-listing surface of the YouTube API.
// *platform.Client implements it; tests inject fakes.
type ThreadLister interface {
	ListThreads(ctx context.Context, videoID string, maxResults int64, pageToken string) (*youtube.CommentThreadListResponse, error)
}

// Fetcher retrieves comment threads for a video.
type Fetcher struct {
	api ThreadLister
}

// New creates a new Fetcher on top of the given API client.
func New(api ThreadLister) *Fetcher {
	return &Fetcher{api: api}
}

// pageSize is the API maximum per commentThreads.list page.
const pageSize = 100

// Fetch lists up to maxResults top-level comments for a video, ordered by
// time, normalized to canonical records. Comments repeated across pages are
// kept once, keyed by comment id.
func (f *Fetcher) Fetch(ctx context.Context, videoID string, maxResults int) ([]types.CanonicalComment, error) {
	log.Printf("[fetch] Fetching comments for video %s...", videoID)

	comments := make([]types.CanonicalComment, 0, maxResults)
	seen := make(map[string]bool)
	pageToken := ""

	for len(comments) < maxResults {
		want := int64(maxResults - len(comments))
		if want > pageSize {
			want = pageSize
		}

		resp, err := f.api.ListThreads(ctx, videoID, want, pageToken)
		if err != nil {
			return nil, fmt.Errorf("list comment threads for %s: %w", videoID, err)
		}

		for _, item := range resp.Items {
			if seen[item.Id] {
				continue
			}
			seen[item.Id] = true
			comments = append(comments, normalize(item))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	log.Printf("[fetch] Got %d comment(s) for video %s", len(comments), videoID)
	return comments, nil
}

// normalize maps one API comment thread to a canonical comment. Missing
// optional fields default to empty strings; nothing here fails.
func normalize(item *youtube.CommentThread) types.CanonicalComment {
	c := types.CanonicalComment{CommentID: item.Id}

	if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
		return c
	}
	s := item.Snippet.TopLevelComment.Snippet

	c.Username = s.AuthorDisplayName
	c.Content = s.TextDisplay
	c.AvatarURL = s.AuthorProfileImageUrl
	if s.AuthorChannelId != nil {
		c.UserID = s.AuthorChannelId.Value
	}
	if t, err := time.Parse(time.RFC3339, s.PublishedAt); err == nil {
		c.PublishedAt = t
	}
	return c
}
