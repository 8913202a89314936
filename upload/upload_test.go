package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"

	"daily-goals-pipeline/config"
	"daily-goals-pipeline/types"
)

type fakeInserter struct {
	gotVideo   *youtube.Video
	gotNotify  bool
	commentErr error

	commentVideoID string
	commentText    string
}

func (f *fakeInserter) InsertVideo(_ context.Context, video *youtube.Video, media io.Reader, notifySubscribers bool) (*youtube.Video, error) {
	f.gotVideo = video
	f.gotNotify = notifySubscribers
	if _, err := io.ReadAll(media); err != nil {
		return nil, err
	}
	return &youtube.Video{Id: "uploaded-id", Snippet: video.Snippet}, nil
}

func (f *fakeInserter) InsertComment(_ context.Context, videoID, text string) error {
	f.commentVideoID = videoID
	f.commentText = text
	return f.commentErr
}

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{Privacy: "public", Language: "ja"},
	}
}

func testVideoFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "morning_2026-08-30.mp4")
	require.NoError(t, os.WriteFile(path, []byte("not really a video"), 0644))
	return path
}

func TestRunBuildsSlotMetadata(t *testing.T) {
	api := &fakeInserter{}
	u := New(testConfig(), api)

	result, err := u.Run(context.Background(), types.SlotMorning, testVideoFile(t), "2026-08-30")
	require.NoError(t, err)

	assert.Equal(t, "uploaded-id", result.VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=uploaded-id", result.URL)
	assert.Equal(t, "【2026年8月30日】おはよう！今日の目標は？🌅", result.Title)

	require.NotNil(t, api.gotVideo)
	assert.Equal(t, result.Title, api.gotVideo.Snippet.Title)
	assert.Equal(t, "22", api.gotVideo.Snippet.CategoryId)
	assert.Equal(t, "ja", api.gotVideo.Snippet.DefaultLanguage)
	assert.Contains(t, api.gotVideo.Snippet.Tags, "モチベーション")
	assert.Equal(t, "public", api.gotVideo.Status.PrivacyStatus)
	assert.False(t, api.gotNotify)
	assert.False(t, api.gotVideo.Status.SelfDeclaredMadeForKids)
	assert.Contains(t, api.gotVideo.Status.ForceSendFields, "SelfDeclaredMadeForKids",
		"a false kids declaration still serializes")
}

func TestRunPostsCallToActionComment(t *testing.T) {
	api := &fakeInserter{}
	u := New(testConfig(), api)

	_, err := u.Run(context.Background(), types.SlotNight, testVideoFile(t), "2026-08-30")
	require.NoError(t, err)

	assert.Equal(t, "uploaded-id", api.commentVideoID)
	assert.NotEmpty(t, api.commentText)
}

func TestRunCommentFailureIsNotFatal(t *testing.T) {
	api := &fakeInserter{commentErr: errors.New("comments disabled")}
	u := New(testConfig(), api)

	result, err := u.Run(context.Background(), types.SlotSummary, testVideoFile(t), "2026-08-30")
	require.NoError(t, err, "pinned comment failure must not fail the upload run")
	assert.Equal(t, "uploaded-id", result.VideoID)
}

func TestRunMissingFileFailsBeforeUpload(t *testing.T) {
	api := &fakeInserter{}
	u := New(testConfig(), api)

	_, err := u.Run(context.Background(), types.SlotMorning, "/nope/missing.mp4", "2026-08-30")
	require.Error(t, err)
	assert.Nil(t, api.gotVideo, "no network call for a missing file")
}

func TestFormatDateJa(t *testing.T) {
	assert.Equal(t, "2026年8月30日", FormatDateJa("2026-08-30"))
	assert.Equal(t, "2026年12月1日", FormatDateJa("2026-12-01"))
	assert.Equal(t, "garbage", FormatDateJa("garbage"), "unparseable dates pass through")
}

func TestSlotTemplatesCoverAllSlots(t *testing.T) {
	for _, slot := range []types.Slot{types.SlotMorning, types.SlotNight, types.SlotSummary} {
		tmpl, ok := slotTemplates[slot]
		require.True(t, ok, "missing template for %s", slot)
		assert.NotEmpty(t, tmpl.title("2026年8月30日"))
		assert.NotEmpty(t, tmpl.description)
		assert.NotEmpty(t, tmpl.tags)
		assert.Equal(t, categoryPeopleBlogs, tmpl.categoryID)
	}
}
