// Package identity derives stable per-user visual attributes from opaque
// user ids, so the same commenter looks the same across the morning, night
// and summary videos even though those are rendered by separate runs.
package identity

import "unicode/utf16"

// AvatarColors is the fixed 15-color palette for user characters.
var AvatarColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96E6A1", "#DDA0DD",
	"#F7DC6F", "#BB8FCE", "#85C1E9", "#F8B500", "#58D68D",
	"#EC7063", "#5DADE2", "#AF7AC5", "#48C9B0", "#F4D03F",
}

// PraiseMessages is the fixed praise phrase list shown when a user reports
// an achievement.
var PraiseMessages = []string{
	"すごい！",
	"えらい！",
	"さすが！",
	"最高！",
	"完璧！",
	"天才！",
	"素晴らしい！",
	"やったね！",
	"お見事！",
	"グッジョブ！",
	"ナイス！",
	"神！",
	"がんばった！",
	"カッコいい！",
	"輝いてる！",
}

// PopBGM and ChillBGM are the background track manifests. Pop tracks back
// the morning video, chill tracks the night and summary videos.
var PopBGM = []string{
	"SUMMER_TRIANGLE.mp3",
	"さみしいおばけと東京の月.mp3",
	"サンタは中央線でやってくる.mp3",
	"ステラと塔の物語.mp3",
	"ヒダマリトロニカ.mp3",
}

var ChillBGM = []string{
	"カエルの勇者.mp3",
	"ローファイ少女は今日も寝不足.mp3",
	"宇宙飛行士が最後に見たもの.mp3",
	"神隠しの真相.mp3",
	"週末京都現実逃避.mp3",
}

// fold is the classic multiplicative string hash over UTF-16 code units,
// wrapping at 32 bits each step. Code units, not bytes or runes: existing
// assignments were produced by JavaScript charCodeAt folding and must be
// reproduced bit for bit.
func fold(s string) int32 {
	var h int32
	for _, cu := range utf16.Encode([]rune(s)) {
		h = int32(cu) + ((h << 5) - h)
	}
	return h
}

// SeededIndex maps a seed string to a stable index in [0, n).
// The empty seed always maps to 0.
func SeededIndex(seed string, n int) int {
	// Widen before negating: -MinInt32 does not fit in int32.
	v := int64(fold(seed))
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}

// ColorFor returns the avatar color for a user id.
func ColorFor(userID string) string {
	return AvatarColors[SeededIndex(userID, len(AvatarColors))]
}

// PraiseFor returns the praise phrase for a user id.
func PraiseFor(userID string) string {
	return PraiseMessages[SeededIndex(userID, len(PraiseMessages))]
}

// MorningBGMPath picks the morning track for a date seed. Every render of
// the same civil day picks the same track without coordination.
func MorningBGMPath(seed string) string {
	return "sounds/bgm/pop/" + PopBGM[SeededIndex(seed, len(PopBGM))]
}

// NightBGMPath picks the night/summary track for a date seed.
func NightBGMPath(seed string) string {
	return "sounds/bgm/chill/" + ChillBGM[SeededIndex(seed, len(ChillBGM))]
}
