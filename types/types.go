package types

import (
	"fmt"
	"time"
)

// Slot is one of the three daily video roles.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotNight   Slot = "night"
	SlotSummary Slot = "summary"
)

// ParseSlot validates a --type argument.
func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotMorning, SlotNight, SlotSummary:
		return Slot(s), nil
	}
	return "", fmt.Errorf("unknown video type %q (want morning, night or summary)", s)
}

// CanonicalComment is one top-level comment normalized from the
// YouTube commentThreads response.
type CanonicalComment struct {
	CommentID   string    `json:"commentId"`
	UserID      string    `json:"userId"` // empty when the API withholds authorChannelId
	Username    string    `json:"username"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
}

// UserComment is one merged per-user row: the morning goal and the night
// achievement of a single commenter, plus their derived visual identity.
// MorningGoal/NightAchievement are nil when the user did not comment on
// that video.
type UserComment struct {
	Username         string  `json:"username"`
	UserID           string  `json:"userId"`
	MorningGoal      *string `json:"morningGoal,omitempty"`
	NightAchievement *string `json:"nightAchievement,omitempty"`
	AvatarColor      string  `json:"avatarColor"`
	AvatarURL        *string `json:"avatarUrl,omitempty"`
}

// HasBoth reports whether the user commented on both videos.
func (u UserComment) HasBoth() bool {
	return u.MorningGoal != nil && u.NightAchievement != nil
}

// Stats summarizes one day's participation.
type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	BothCommented int `json:"bothCommented"`
	MorningOnly   int `json:"morningOnly"`
	NightOnly     int `json:"nightOnly"`
}

// Dataset is the per-day output artifact consumed by the summary renderer.
type Dataset struct {
	Date           string        `json:"date"`
	MorningVideoID string        `json:"morningVideoId"`
	NightVideoID   string        `json:"nightVideoId"`
	Comments       []UserComment `json:"comments"`
	Stats          Stats         `json:"stats"`
}
