// Package platform wraps the slice of the YouTube Data API v3 the pipeline
// consumes: comment-thread listing, video upload and comment posting.
package platform

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"daily-goals-pipeline/config"
)

// Client is an authenticated YouTube Data API client.
type Client struct {
	svc *youtube.Service
}

// NewClient builds a client from refresh-token credentials.
func NewClient(ctx context.Context, creds *config.Credentials) (*Client, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{youtube.YoutubeUploadScope, youtube.YoutubeForceSslScope},
	}

	token := &oauth2.Token{
		RefreshToken: creds.RefreshToken,
		Expiry:       time.Now().Add(-time.Hour), // force refresh
	}

	httpClient := oauth2.NewClient(ctx, conf.TokenSource(ctx, token))
	svc, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListThreads fetches one page of top-level comment threads for a video,
// newest first.
func (c *Client) ListThreads(ctx context.Context, videoID string, maxResults int64, pageToken string) (*youtube.CommentThreadListResponse, error) {
	call := c.svc.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(maxResults).
		Order("time").
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	return call.Do()
}

// InsertVideo uploads a video with the given snippet and status.
func (c *Client) InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader, notifySubscribers bool) (*youtube.Video, error) {
	return c.svc.Videos.Insert([]string{"snippet", "status"}, video).
		Media(media).
		NotifySubscribers(notifySubscribers).
		Context(ctx).
		Do()
}

// InsertComment posts a top-level comment on a video.
func (c *Client) InsertComment(ctx context.Context, videoID, text string) error {
	thread := &youtube.CommentThread{
		Snippet: &youtube.CommentThreadSnippet{
			VideoId: videoID,
			TopLevelComment: &youtube.Comment{
				Snippet: &youtube.CommentSnippet{
					TextOriginal: text,
				},
			},
		},
	}
	_, err := c.svc.CommentThreads.Insert([]string{"snippet"}, thread).Context(ctx).Do()
	return err
}
