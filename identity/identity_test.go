package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededIndexKnownValues(t *testing.T) {
	tests := []struct {
		seed string
		n    int
		want int
	}{
		{"", 15, 0}, // empty seed hashes to 0
		{"a", 15, 7},
		{"u1", 15, 1},
		{"u2", 15, 2},
		{"あ", 15, 9}, // non-ASCII folds over UTF-16 code units
		{"UCxxxxyyyy", 15, 11},
		{"2026-08-30", 5, 4},
		{"2026-08-31", 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeededIndex(tt.seed, tt.n), "seed %q", tt.seed)
	}
}

func TestSeededIndexDeterministic(t *testing.T) {
	seeds := []string{"", "u1", "UC_abcDEF123", "ユーザー", "2026-08-30"}
	for _, s := range seeds {
		first := SeededIndex(s, 15)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, SeededIndex(s, 15), "seed %q call %d", s, i)
		}
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 15)
	}
}

func TestColorForStable(t *testing.T) {
	assert.Equal(t, AvatarColors[0], ColorFor(""))
	assert.Equal(t, "#85C1E9", ColorFor("a"))
	assert.Equal(t, "#4ECDC4", ColorFor("u1"))
	assert.Equal(t, ColorFor("UCxxxxyyyy"), ColorFor("UCxxxxyyyy"))
}

func TestPraiseForStable(t *testing.T) {
	assert.Equal(t, PraiseMessages[0], PraiseFor(""))
	assert.Equal(t, "やったね！", PraiseFor("a"))
	// Color and praise share the hash, so their indices agree.
	assert.Equal(t, "えらい！", PraiseFor("u1"))
}

func TestBGMPathsSameDaySameTrack(t *testing.T) {
	date := "2026-08-30"
	assert.Equal(t, MorningBGMPath(date), MorningBGMPath(date))
	assert.Equal(t, NightBGMPath(date), NightBGMPath(date))

	assert.Equal(t, "sounds/bgm/pop/"+PopBGM[4], MorningBGMPath(date))
	assert.Equal(t, "sounds/bgm/chill/"+ChillBGM[4], NightBGMPath(date))
}

func TestManifestSizes(t *testing.T) {
	assert.Len(t, AvatarColors, 15)
	assert.Len(t, PraiseMessages, 15)
	assert.Len(t, PopBGM, 5)
	assert.Len(t, ChillBGM, 5)
}
