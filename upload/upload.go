// Package upload publishes rendered videos to YouTube with per-slot
// metadata templates and posts the call-to-action comment.
package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"google.golang.org/api/youtube/v3"

	"daily-goals-pipeline/config"
	"daily-goals-pipeline/types"
)

// VideoInserter is the upload surface of the YouTube API.
// *platform.Client implements it; tests inject fakes.
type VideoInserter interface {
	InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader, notifySubscribers bool) (*youtube.Video, error)
	InsertComment(ctx context.Context, videoID, text string) error
}

// Result describes a completed upload.
type Result struct {
	VideoID string
	Title   string
	URL     string
}

// Uploader publishes one rendered video per invocation.
type Uploader struct {
	cfg *config.Config
	api VideoInserter
}

// New creates a new Uploader.
func New(cfg *config.Config, api VideoInserter) *Uploader {
	return &Uploader{cfg: cfg, api: api}
}

// Run uploads the video file for the slot. The pinned call-to-action
// comment is best effort: its failure is logged, never fatal, because the
// ledger update downstream is keyed on the upload succeeding.
func (u *Uploader) Run(ctx context.Context, slot types.Slot, videoPath, date string) (*Result, error) {
	tmpl, ok := slotTemplates[slot]
	if !ok {
		return nil, fmt.Errorf("no metadata template for slot %q", slot)
	}

	f, err := os.Open(videoPath)
	if err != nil {
		return nil, fmt.Errorf("open video file: %w", err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil {
		log.Printf("[upload] File size: %.1f MB", float64(fi.Size())/1024/1024)
	}

	title := tmpl.title(FormatDateJa(date))
	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:                title,
			Description:          tmpl.description,
			Tags:                 tmpl.tags,
			CategoryId:           tmpl.categoryID,
			DefaultLanguage:      u.cfg.Upload.Language,
			DefaultAudioLanguage: u.cfg.Upload.Language,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           u.cfg.Upload.Privacy,
			SelfDeclaredMadeForKids: u.cfg.Upload.MadeForKids,
			// A false declaration must still reach the API.
			ForceSendFields: []string{"SelfDeclaredMadeForKids"},
		},
	}

	log.Printf("[upload] Uploading: %q", title)

	uploaded, err := u.api.InsertVideo(ctx, video, f, u.cfg.Upload.NotifySubscribers)
	if err != nil {
		return nil, fmt.Errorf("youtube upload: %w", err)
	}

	result := &Result{
		VideoID: uploaded.Id,
		Title:   title,
		URL:     fmt.Sprintf("https://www.youtube.com/watch?v=%s", uploaded.Id),
	}

	log.Printf("[upload] ✅ Uploaded successfully!")
	log.Printf("[upload] Video ID: %s", result.VideoID)
	log.Printf("[upload] Video URL: %s", result.URL)

	if tmpl.pinnedComment != "" {
		if err := u.api.InsertComment(ctx, result.VideoID, tmpl.pinnedComment); err != nil {
			log.Printf("[upload] ⚠️ Could not post call-to-action comment: %v", err)
		} else {
			log.Println("[upload] Posted call-to-action comment")
		}
	}

	return result, nil
}

// FormatDateJa renders a YYYY-MM-DD civil date as a Japanese long date for
// video titles, e.g. 2026年8月30日.
func FormatDateJa(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}
