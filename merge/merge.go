// Package merge reconciles the morning and night comment collections into
// one per-user dataset.
package merge

import (
	"github.com/google/uuid"

	"daily-goals-pipeline/identity"
	"daily-goals-pipeline/types"
)

// Merge pairs morning and night comments by author identity.
//
// A non-empty user id appears exactly once in the result: the latest morning
// comment provides the goal, the night comment the achievement. A night
// avatar overwrites a morning avatar when both are present (most recent
// profile picture wins). Comments with an empty user id never merge with
// each other; each anonymous comment stays its own row.
//
// Users who commented on both videos sort before everyone else; within each
// tier the fetch order is preserved.
func Merge(morning, night []types.CanonicalComment) []types.UserComment {
	entries := make(map[string]*types.UserComment)
	order := make([]string, 0, len(morning)+len(night))

	for _, c := range morning {
		k := mergeKey(c.UserID)
		if _, ok := entries[k]; !ok {
			order = append(order, k)
		}
		// Same author twice on the morning video: the later comment wins.
		entries[k] = &types.UserComment{
			Username:    c.Username,
			UserID:      c.UserID,
			MorningGoal: ptr(c.Content),
			AvatarColor: identity.ColorFor(c.UserID),
			AvatarURL:   optional(c.AvatarURL),
		}
	}

	for _, c := range night {
		if existing, ok := entries[c.UserID]; ok && c.UserID != "" {
			existing.NightAchievement = ptr(c.Content)
			if c.AvatarURL != "" {
				existing.AvatarURL = ptr(c.AvatarURL)
			}
			continue
		}
		k := mergeKey(c.UserID)
		order = append(order, k)
		entries[k] = &types.UserComment{
			Username:         c.Username,
			UserID:           c.UserID,
			NightAchievement: ptr(c.Content),
			AvatarColor:      identity.ColorFor(c.UserID),
			AvatarURL:        optional(c.AvatarURL),
		}
	}

	// Stable partition: both-video users first, everyone else after, each
	// tier in insertion order.
	both := make([]types.UserComment, 0, len(order))
	rest := make([]types.UserComment, 0, len(order))
	for _, k := range order {
		e := entries[k]
		if e.HasBoth() {
			both = append(both, *e)
		} else {
			rest = append(rest, *e)
		}
	}
	return append(both, rest...)
}

// mergeKey returns the map key for an author. Anonymous comments get a
// synthetic unique key so two different anonymous commenters never collapse
// into one row; the literal empty id is still what ends up in the output.
func mergeKey(userID string) string {
	if userID == "" {
		return "anon:" + uuid.NewString()
	}
	return userID
}

func ptr(s string) *string {
	return &s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
