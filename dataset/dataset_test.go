package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-goals-pipeline/types"
)

func ptr(s string) *string { return &s }

func TestBuildStats(t *testing.T) {
	comments := []types.UserComment{
		{UserID: "u1", MorningGoal: ptr("g"), NightAchievement: ptr("a")},
		{UserID: "u2", MorningGoal: ptr("g")},
		{UserID: "u3", NightAchievement: ptr("a")},
		{UserID: "u4", NightAchievement: ptr("a")},
	}

	ds := Build("2026-08-30", "vid-m", "vid-n", comments)

	assert.Equal(t, "2026-08-30", ds.Date)
	assert.Equal(t, "vid-m", ds.MorningVideoID)
	assert.Equal(t, "vid-n", ds.NightVideoID)
	assert.Equal(t, types.Stats{TotalUsers: 4, BothCommented: 1, MorningOnly: 1, NightOnly: 2}, ds.Stats)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "comments_2026-08-30.json"), Path("out", "2026-08-30"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := Path(t.TempDir(), "2026-08-30")

	ds := Build("2026-08-30", "vid-m", "vid-n", []types.UserComment{
		{Username: "Alice", UserID: "u1", MorningGoal: ptr("走る"), NightAchievement: ptr("走った"), AvatarColor: "#FF6B6B"},
	})
	require.NoError(t, Save(path, ds))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
	require.NotNil(t, got.Comments[0].MorningGoal)
	assert.Equal(t, "走る", *got.Comments[0].MorningGoal)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(Path(t.TempDir(), "2026-08-30"))
	assert.Error(t, err)
}
